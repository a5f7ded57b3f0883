package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/probook/booking-app/models"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// JWTSecret returns the signing key shared with the auth middleware.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// Login checks a pro's credentials and issues a signed access token carrying
// the pro id. A mismatch answers 404, which is what the booking frontend
// expects.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var pro models.Pro
	if ctl.DB.Where("email = ?", input.Email).First(&pro).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Wrong email or password",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(pro.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Wrong email or password",
		})
	}

	claims := jwt.MapClaims{
		"id":  pro.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JWTSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{"access_token": tokenString})
}

// Dashboard echoes the identity encoded in the session token.
func (ctl *AuthController) Dashboard(c *fiber.Ctx) error {
	proID := c.Locals("proID").(uint)
	return c.JSON(fiber.Map{"logged_in_as": proID})
}
