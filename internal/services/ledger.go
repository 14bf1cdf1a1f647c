package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/calrank/calrank/internal/models"
)

// Calories burned per step, the usual walking average.
const caloriesPerStep = 0.04

var (
	ErrMealNameRequired    = errors.New("meal name is required")
	ErrMealCaloriesInvalid = errors.New("meal calories must be positive")
	ErrMealProteinInvalid  = errors.New("meal protein must not be negative")
	ErrMealCategoryInvalid = errors.New("meal category must be breakfast, lunch, dinner or snack")
	ErrMealNotFound        = errors.New("meal not found")
	ErrStepsInvalid        = errors.New("steps must not be negative")
	ErrWeightInvalid       = errors.New("weight must be positive")
	ErrDayInvalid          = errors.New("date must be formatted YYYY-MM-DD")
	ErrNoEntryForDay       = errors.New("no entry for that day")
)

type MealInput struct {
	Name     string
	Calories int
	Protein  int
	Category string
}

// EnsureDailyEntry upserts the default-shaped entry for a day. Ledger
// entries are created explicitly by the first write, never as a side
// effect of a read.
func EnsureDailyEntry(state *models.UserState, day string) *models.DailyEntry {
	if state.DailyEntries == nil {
		state.DailyEntries = map[string]*models.DailyEntry{}
	}
	entry, exists := state.DailyEntries[day]
	if !exists || entry == nil {
		entry = models.NewDailyEntry()
		state.DailyEntries[day] = entry
	}
	return entry
}

// AddMeal validates and appends a meal to the day, keeping the entry's
// calorie and protein aggregates equal to the sum over its meals. Meal
// ids are monotonic by creation time.
func AddMeal(state *models.UserState, day string, input MealInput, now time.Time) (models.Meal, error) {
	if !IsValidDay(day) {
		return models.Meal{}, ErrDayInvalid
	}
	if strings.TrimSpace(input.Name) == "" {
		return models.Meal{}, ErrMealNameRequired
	}
	if input.Calories <= 0 {
		return models.Meal{}, ErrMealCaloriesInvalid
	}
	if input.Protein < 0 {
		return models.Meal{}, ErrMealProteinInvalid
	}
	if !models.IsMealCategory(input.Category) {
		return models.Meal{}, ErrMealCategoryInvalid
	}

	entry := EnsureDailyEntry(state, day)
	meal := models.Meal{
		ID:       nextMealID(entry, now),
		Name:     strings.TrimSpace(input.Name),
		Calories: input.Calories,
		Protein:  input.Protein,
		Category: input.Category,
		Time:     now.Format("15:04"),
	}

	entry.Meals = append(entry.Meals, meal)
	entry.Calories += meal.Calories
	entry.Protein += meal.Protein
	return meal, nil
}

// DeleteMeal removes a meal and rolls its calories and protein back out
// of the day's aggregates, an exact round-trip of AddMeal.
func DeleteMeal(state *models.UserState, day string, mealID int64) error {
	entry := state.DailyEntries[day]
	if entry == nil {
		return ErrNoEntryForDay
	}

	for index, meal := range entry.Meals {
		if meal.ID != mealID {
			continue
		}
		entry.Calories -= meal.Calories
		entry.Protein -= meal.Protein
		entry.Meals = append(entry.Meals[:index], entry.Meals[index+1:]...)
		return nil
	}
	return ErrMealNotFound
}

// SetSteps records the day's step count, last write wins. The calorie
// estimate is derived, not user input.
func SetSteps(state *models.UserState, day string, steps int) error {
	if !IsValidDay(day) {
		return ErrDayInvalid
	}
	if steps < 0 {
		return ErrStepsInvalid
	}

	entry := EnsureDailyEntry(state, day)
	entry.Steps = steps
	entry.StepsCalories = int(math.Round(float64(steps) * caloriesPerStep))
	return nil
}

// UpsertWeight writes the weight for a date, overwriting any existing
// entry for that date, and refreshes the profile's current weight from
// the latest dated entry.
func UpsertWeight(state *models.UserState, day string, weight float64) (bool, error) {
	if !IsValidDay(day) {
		return false, ErrDayInvalid
	}
	if weight <= 0 {
		return false, ErrWeightInvalid
	}

	created := true
	for index := range state.WeightEntries {
		if state.WeightEntries[index].Date == day {
			state.WeightEntries[index].Weight = weight
			created = false
			break
		}
	}
	if created {
		state.WeightEntries = append(state.WeightEntries, models.WeightEntry{Date: day, Weight: weight})
	}

	state.Profile.CurrentWeight = LatestWeight(state)
	return created, nil
}

func nextMealID(entry *models.DailyEntry, now time.Time) int64 {
	id := now.UnixMilli()
	for _, meal := range entry.Meals {
		if meal.ID >= id {
			id = meal.ID + 1
		}
	}
	return id
}
