package api

import (
	"net/mail"
	"strings"
	"time"

	"github.com/calrank/calrank/internal/models"
	"github.com/calrank/calrank/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the account and its initial state document in one
// step: derived targets computed, start weight pinned, today's weight
// entry seeded and the setup flag raised, so the ranking engine starts
// from a complete profile.
func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "valid email is required")
	}
	if len(input.Password) < 6 {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	state := models.NewUserState()
	applyProfilePayload(&state.Profile, input.Profile)
	state.Profile.CurrentWeight = input.Profile.CurrentWeight
	if err := services.ValidateProfile(&state.Profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	services.ApplyDerivedTargets(&state.Profile)

	exists, err := handler.repos.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	now := handler.now()
	state.Profile.StartWeight = state.Profile.CurrentWeight
	state.Profile.StartDate = now.Format(time.RFC3339)
	state.WeightEntries = append(state.WeightEntries, models.WeightEntry{
		Date:   services.DateString(now, handler.location),
		Weight: state.Profile.CurrentWeight,
	})
	state.SetupComplete = true

	if err := handler.repos.States.Save(user.ID, &state); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to persist state")
	}
	handler.feed.Broadcast()

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := normalizeEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := handler.repos.Users.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Session(c *fiber.Ctx) error {
	user := currentUser(c)
	state, found, err := handler.repos.States.Load(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load state")
	}

	return c.JSON(fiber.Map{
		"email":         user.Email,
		"name":          state.Profile.Name,
		"setupComplete": found && state.SetupComplete,
	})
}

// DeleteAccount destroys the state document and the account itself.
// There is no soft delete; the whole per-user state lives in the one
// document and goes with it.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.repos.States.Delete(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	if err := handler.repos.Users.Delete(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.feed.Broadcast()

	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func applyProfilePayload(profile *models.Profile, payload profilePayload) {
	profile.Name = strings.TrimSpace(payload.Name)
	profile.Age = payload.Age
	profile.Sex = payload.Sex
	profile.Height = payload.Height
	profile.TargetWeight = payload.TargetWeight
	profile.ActivityLevel = payload.ActivityLevel
	profile.Deficit = payload.Deficit
	profile.MotivationReason = strings.TrimSpace(payload.MotivationReason)
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}
