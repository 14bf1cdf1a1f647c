package services

import (
	"errors"
	"math"
	"strings"

	"github.com/calrank/calrank/internal/models"
)

var (
	ErrProfileNameRequired    = errors.New("name is required")
	ErrProfileAgeOutOfRange   = errors.New("age must be between 10 and 120")
	ErrProfileSexInvalid      = errors.New("sex must be male or female")
	ErrProfileHeightInvalid   = errors.New("height must be positive")
	ErrProfileWeightInvalid   = errors.New("weight must be positive")
	ErrProfileActivityInvalid = errors.New("activity level must be between 1.2 and 1.9")
	ErrProfileDeficitInvalid  = errors.New("deficit must be between 0 and 1500")
)

// ValidateProfile rejects malformed setup input before any of it enters
// the state document; a failing profile is never partially applied.
func ValidateProfile(profile *models.Profile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return ErrProfileNameRequired
	}
	if profile.Age < 10 || profile.Age > 120 {
		return ErrProfileAgeOutOfRange
	}
	if profile.Sex != models.SexMale && profile.Sex != models.SexFemale {
		return ErrProfileSexInvalid
	}
	if profile.Height <= 0 {
		return ErrProfileHeightInvalid
	}
	if profile.CurrentWeight <= 0 || profile.TargetWeight <= 0 {
		return ErrProfileWeightInvalid
	}
	if profile.ActivityLevel < 1.2 || profile.ActivityLevel > 1.9 {
		return ErrProfileActivityInvalid
	}
	if profile.Deficit < 0 || profile.Deficit > 1500 {
		return ErrProfileDeficitInvalid
	}
	return nil
}

// ApplyDerivedTargets recomputes BMR (Mifflin-St Jeor), TDEE, target
// calories and the 2 g/kg protein target from the profile inputs.
func ApplyDerivedTargets(profile *models.Profile) {
	base := 10*profile.CurrentWeight + 6.25*profile.Height - 5*float64(profile.Age)
	if profile.Sex == models.SexFemale {
		profile.BMR = int(math.Round(base - 161))
	} else {
		profile.BMR = int(math.Round(base + 5))
	}

	profile.TDEE = int(math.Round(float64(profile.BMR) * profile.ActivityLevel))
	profile.TargetCalories = profile.TDEE - profile.Deficit
	profile.TargetProtein = int(math.Round(profile.CurrentWeight * 2))
}

// BMI reports body mass index from the profile's current weight and
// height in centimeters.
func BMI(profile *models.Profile) float64 {
	if profile.Height <= 0 {
		return 0
	}
	meters := profile.Height / 100
	return profile.CurrentWeight / (meters * meters)
}
