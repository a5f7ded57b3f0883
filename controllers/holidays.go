package controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/probook/booking-app/holidays"
	"github.com/probook/booking-app/redis"
)

// GetHolidays returns the national holidays of a year, date ascending.
// Results are immutable per year, so they are served from the cache when
// one is configured.
func GetHolidays(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "year must be a number",
		})
	}

	cacheKey := fmt.Sprintf("holidays:%d", year)
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Bytes(); err == nil {
			var list []holidays.Holiday
			if json.Unmarshal(cached, &list) == nil {
				return c.JSON(fiber.Map{"holidays": list})
			}
		}
	}

	list := holidays.ForYear(year)
	if redis.Client != nil {
		if payload, err := json.Marshal(list); err == nil {
			redis.Client.Set(redis.Ctx, cacheKey, payload, 24*time.Hour)
		}
	}
	return c.JSON(fiber.Map{"holidays": list})
}
