// Package auth implements registration and credential login. Tokens are
// HS256 JWTs carrying the user id and role; passwords are bcrypt hashes.
package auth

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ssaiyajin/Bottle-Crate-Store/models"
	"github.com/Ssaiyajin/Bottle-Crate-Store/store"
)

const bcryptCost = 11

type AddressInput struct {
	Street      string `json:"street" binding:"required"`
	HouseNumber string `json:"house_number" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required,len=5,numeric"`
}

type RegisterInput struct {
	Username          string         `json:"username" binding:"required"`
	Password          string         `json:"password" binding:"required,min=8"`
	Email             string         `json:"email" binding:"required,email"`
	Birthday          string         `json:"birthday" binding:"required"`
	BillingAddresses  []AddressInput `json:"billing_addresses" binding:"dive"`
	DeliveryAddresses []AddressInput `json:"delivery_addresses" binding:"dive"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// minBirthDate reads the configurable birth date floor, default 1900-01-01.
func minBirthDate() time.Time {
	if v := os.Getenv("MIN_BIRTH_DATE"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t
		}
		log.Printf("⚠️ Invalid MIN_BIRTH_DATE %q, using default", v)
	}
	return time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
}

func toAddresses(in []AddressInput) []models.Address {
	out := make([]models.Address, 0, len(in))
	for _, a := range in {
		out = append(out, models.Address{
			Street:      a.Street,
			HouseNumber: a.HouseNumber,
			PostalCode:  a.PostalCode,
		})
	}
	return out
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Birthday must be formatted as YYYY-MM-DD"})
			return
		}
		if !birthday.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Birth date should be less than current date"})
			return
		}
		if birthday.Before(minBirthDate()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Birth date is too far in the past"})
			return
		}

		exists, err := users.Exists(input.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "This username already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		// First registrant becomes the admin.
		count, err := users.Count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		role := models.RoleCustomer
		if count == 0 {
			role = models.RoleAdmin
		}

		user := models.User{
			Username:          input.Username,
			Password:          string(hash),
			Role:              role,
			Email:             input.Email,
			Birthday:          birthday,
			BillingAddresses:  toAddresses(input.BillingAddresses),
			DeliveryAddresses: toAddresses(input.DeliveryAddresses),
		}
		if err := users.Create(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		log.Printf("✅ New user created: %s (%s)", user.Username, user.Role)

		// Log the fresh user straight in, like the store always did.
		token, err := IssueToken(user.AuthPrincipal())
		if err != nil {
			c.JSON(http.StatusCreated, gin.H{
				"username": user.Username,
				"message":  "Registration succeeded but automatic login failed. Please log in manually.",
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"username": user.Username, "role": user.Role, "token": token})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	users := store.NewUserStore(db)
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := users.Find(input.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := IssueToken(user.AuthPrincipal())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role, "token": token})
	}
}

// IssueToken signs a 24h JWT for the principal.
func IssueToken(p models.AuthPrincipal) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.ID,
		"role":    p.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
