package api

import (
	"time"

	"github.com/calrank/calrank/internal/db"
	"github.com/calrank/calrank/internal/services"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authCookieName = "calrank_token"
	contextUserKey = "currentUser"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	repos        *db.Repositories
	feed         *services.LeaderboardFeed
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(repos *db.Repositories, feed *services.LeaderboardFeed, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		repos:        repos,
		feed:         feed,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type profilePayload struct {
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	Sex              string  `json:"sex"`
	Height           float64 `json:"height"`
	CurrentWeight    float64 `json:"current_weight"`
	TargetWeight     float64 `json:"target_weight"`
	ActivityLevel    float64 `json:"activity_level"`
	Deficit          int     `json:"deficit"`
	MotivationReason string  `json:"motivation_reason"`
}

type registerInput struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Profile  profilePayload `json:"profile"`
}

type mealPayload struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Category string `json:"category"`
}

type stepsPayload struct {
	Steps int `json:"steps"`
}

type weightPayload struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type supplementPayload struct {
	Enabled bool `json:"enabled"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}
