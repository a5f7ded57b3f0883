package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/calendar/v3"
	"gorm.io/gorm"

	"github.com/probook/booking-app/gcal"
	"github.com/probook/booking-app/models"
)

type CalendarController struct {
	DB   *gorm.DB
	Gcal *gcal.Client
}

func NewCalendarController(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db, Gcal: gcal.New(db)}
}

// TokensExchange trades the authorization code posted by the consent
// redirect for tokens and stores them on the pro. Provider rejections pass
// through with their original status and body.
func (ctl *CalendarController) TokensExchange(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("proid")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "pro not found",
		})
	}
	code := c.FormValue("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code is required",
		})
	}

	tok, err := ctl.Gcal.Exchange(c.UserContext(), &pro, code)
	if err != nil {
		if status, body, ok := gcal.ProviderError(err); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(status).Send(body)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to reach token endpoint",
		})
	}

	tokens := fiber.Map{
		"access_token":  tok.AccessToken,
		"refresh_token": tok.RefreshToken,
		"token_type":    tok.TokenType,
	}
	if expiresIn := tok.Extra("expires_in"); expiresIn != nil {
		tokens["expires_in"] = expiresIn
	}
	return c.JSON(fiber.Map{
		"message": "Tokens stored successfully",
		"tokens":  tokens,
	})
}

// GetTokens projects the stored Google credentials of a pro. Requires a
// valid session token.
func (ctl *CalendarController) GetTokens(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("proid")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "pro not found",
		})
	}
	return c.JSON(fiber.Map{
		"access_token":  pro.GoogleAccessToken,
		"refresh_token": pro.GoogleRefreshToken,
		"expires_in":    pro.GoogleAccessExpires,
	})
}

// CreateEvent inserts the submitted event into the pro's primary calendar
// and returns the provider-assigned event id.
func (ctl *CalendarController) CreateEvent(c *fiber.Ctx) error {
	var pro models.Pro
	if err := ctl.DB.First(&pro, c.Params("proid")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "pro not found",
		})
	}

	var body struct {
		GoogleEvent json.RawMessage `json:"googleEvent"`
	}
	if err := c.BodyParser(&body); err != nil || len(body.GoogleEvent) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "googleEvent is required",
		})
	}
	event := new(calendar.Event)
	if err := json.Unmarshal(body.GoogleEvent, event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid googleEvent payload",
		})
	}

	eventID, err := ctl.Gcal.CreateEvent(c.UserContext(), &pro, event)
	if err != nil {
		if status, body, ok := gcal.ProviderError(err); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(status).Send(body)
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}
	return c.JSON(fiber.Map{"event_id": eventID})
}
