package services

import (
	"errors"
	"testing"

	"github.com/calrank/calrank/internal/models"
)

func validProfile() models.Profile {
	return models.Profile{
		Name:          "Alex",
		Age:           30,
		Sex:           models.SexMale,
		Height:        180,
		CurrentWeight: 80,
		TargetWeight:  75,
		ActivityLevel: 1.55,
		Deficit:       500,
	}
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	mutate := func(change func(*models.Profile)) models.Profile {
		profile := validProfile()
		change(&profile)
		return profile
	}

	cases := []struct {
		name    string
		profile models.Profile
		wantErr error
	}{
		{name: "valid", profile: validProfile(), wantErr: nil},
		{name: "blank name", profile: mutate(func(p *models.Profile) { p.Name = "  " }), wantErr: ErrProfileNameRequired},
		{name: "too young", profile: mutate(func(p *models.Profile) { p.Age = 9 }), wantErr: ErrProfileAgeOutOfRange},
		{name: "too old", profile: mutate(func(p *models.Profile) { p.Age = 121 }), wantErr: ErrProfileAgeOutOfRange},
		{name: "bad sex", profile: mutate(func(p *models.Profile) { p.Sex = "other" }), wantErr: ErrProfileSexInvalid},
		{name: "zero height", profile: mutate(func(p *models.Profile) { p.Height = 0 }), wantErr: ErrProfileHeightInvalid},
		{name: "zero weight", profile: mutate(func(p *models.Profile) { p.CurrentWeight = 0 }), wantErr: ErrProfileWeightInvalid},
		{name: "zero target weight", profile: mutate(func(p *models.Profile) { p.TargetWeight = 0 }), wantErr: ErrProfileWeightInvalid},
		{name: "activity too low", profile: mutate(func(p *models.Profile) { p.ActivityLevel = 1.1 }), wantErr: ErrProfileActivityInvalid},
		{name: "activity too high", profile: mutate(func(p *models.Profile) { p.ActivityLevel = 2.0 }), wantErr: ErrProfileActivityInvalid},
		{name: "negative deficit", profile: mutate(func(p *models.Profile) { p.Deficit = -1 }), wantErr: ErrProfileDeficitInvalid},
		{name: "deficit too large", profile: mutate(func(p *models.Profile) { p.Deficit = 1501 }), wantErr: ErrProfileDeficitInvalid},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateProfile(&testCase.profile)
			if testCase.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid profile, got %v", err)
				}
				return
			}
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestApplyDerivedTargetsMale(t *testing.T) {
	t.Parallel()

	profile := validProfile()
	ApplyDerivedTargets(&profile)

	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if profile.BMR != 1780 {
		t.Fatalf("expected BMR 1780, got %d", profile.BMR)
	}
	// 1780 * 1.55 = 2759
	if profile.TDEE != 2759 {
		t.Fatalf("expected TDEE 2759, got %d", profile.TDEE)
	}
	if profile.TargetCalories != 2259 {
		t.Fatalf("expected target calories 2259, got %d", profile.TargetCalories)
	}
	if profile.TargetProtein != 160 {
		t.Fatalf("expected target protein 160, got %d", profile.TargetProtein)
	}
}

func TestApplyDerivedTargetsFemale(t *testing.T) {
	t.Parallel()

	profile := validProfile()
	profile.Sex = models.SexFemale
	profile.Age = 28
	profile.Height = 165
	profile.CurrentWeight = 62
	profile.ActivityLevel = 1.375
	profile.Deficit = 400
	ApplyDerivedTargets(&profile)

	// 10*62 + 6.25*165 - 5*28 - 161 = 1350.25 -> 1350
	if profile.BMR != 1350 {
		t.Fatalf("expected BMR 1350, got %d", profile.BMR)
	}
	// 1350 * 1.375 = 1856.25 -> 1856
	if profile.TDEE != 1856 {
		t.Fatalf("expected TDEE 1856, got %d", profile.TDEE)
	}
	if profile.TargetCalories != 1456 {
		t.Fatalf("expected target calories 1456, got %d", profile.TargetCalories)
	}
	if profile.TargetProtein != 124 {
		t.Fatalf("expected target protein 124, got %d", profile.TargetProtein)
	}
}

func TestBMI(t *testing.T) {
	t.Parallel()

	profile := validProfile()
	got := BMI(&profile)
	// 80 / 1.8^2 = 24.69...
	if got < 24.69 || got > 24.70 {
		t.Fatalf("expected BMI near 24.69, got %v", got)
	}

	profile.Height = 0
	if BMI(&profile) != 0 {
		t.Fatal("expected zero BMI for zero height")
	}
}
