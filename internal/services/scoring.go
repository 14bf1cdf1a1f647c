package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/calrank/calrank/internal/models"
)

// Rule identifiers used in breakdown records, in evaluation order.
const (
	RuleWeightChange     = "weight_change"
	RuleWeightLogged     = "weight_logged"
	RuleCalorieAdherence = "calorie_adherence"
	RuleProtein          = "protein"
	RuleSteps            = "steps"
	RuleMealStructure    = "meal_structure"
	RuleTracking         = "tracking"
	RuleCalorieOverage   = "calorie_overage"
)

// DayScore is the outcome of scoring one completed calendar day.
type DayScore struct {
	Earned    int                  `json:"earned"`
	Lost      int                  `json:"lost"`
	Net       int                  `json:"net"`
	Breakdown []models.RuleOutcome `json:"breakdown"`
}

// ScoreDay evaluates all scoring rules for one day against a snapshot of
// the user state. It is pure: the state is only read, and it is total
// over well-formed input. Rules with unmet preconditions contribute
// nothing, and the breakdown lists fired rules in evaluation order. The
// day's cached aggregates are trusted as-is; reconciling them with the
// meal list is the ledger commands' job, not the scorer's.
func ScoreDay(day string, state *models.UserState) DayScore {
	score := DayScore{Breakdown: []models.RuleOutcome{}}

	entry := state.DailyEntries[day]
	if entry == nil {
		entry = &models.DailyEntry{}
	}

	scoreWeightRules(day, state, &score)
	scoreCalorieAdherenceRule(entry, &state.Profile, &score)
	scoreProteinRule(entry, &state.Profile, &score)
	scoreStepsRule(entry, &score)
	scoreMealStructureRule(entry, &score)
	scoreTrackingRule(entry, &score)
	scoreCalorieOverageRule(entry, &state.Profile, &score)

	score.Net = score.Earned - score.Lost
	return score
}

func (score *DayScore) earn(rule string, points int, reason string) {
	score.Earned += points
	score.Breakdown = append(score.Breakdown, models.RuleOutcome{Rule: rule, Delta: points, Reason: reason})
}

func (score *DayScore) lose(rule string, points int, reason string) {
	score.Lost += points
	score.Breakdown = append(score.Breakdown, models.RuleOutcome{Rule: rule, Delta: -points, Reason: reason})
}

func scoreWeightRules(day string, state *models.UserState, score *DayScore) {
	weightOnDay, hasWeight := WeightForDate(state.WeightEntries, day)
	previousWeight, hasPrevious := PreviousWeight(state.WeightEntries, day)

	// Rule 1: weight change between the nearest prior entry and today's
	// entry. Gains up to 0.3 kg are tolerated penalty-free.
	if hasWeight && hasPrevious {
		loss := previousWeight - weightOnDay
		if loss > 0 {
			points := int(math.Round(loss * 150))
			score.earn(RuleWeightChange, points, fmt.Sprintf("Lost %.2f kg", loss))
		} else if loss < -0.3 {
			points := int(math.Round(math.Abs(loss) * 50))
			score.lose(RuleWeightChange, points, fmt.Sprintf("Gained %.2f kg", -loss))
		}
	}

	// Rule 2: flat bonus for weighing in at all.
	if hasWeight {
		score.earn(RuleWeightLogged, 30, "Weight logged")
	}
}

// Rule 3: calorie adherence, only once anything was tracked. An
// excessive deficit still earns a little instead of costing points so
// unhealthy extremes are flagged without punishing.
func scoreCalorieAdherenceRule(entry *models.DailyEntry, profile *models.Profile, score *DayScore) {
	if entry.Calories <= 0 {
		return
	}

	target := float64(profile.TargetCalories)
	deficit := float64(profile.TargetCalories - entry.Calories)
	switch {
	case deficit >= 0 && deficit <= target*0.15:
		score.earn(RuleCalorieAdherence, 40, "Calorie target hit")
	case deficit > target*0.15 && deficit <= target*0.3:
		score.earn(RuleCalorieAdherence, 30, "Good deficit")
	case deficit > target*0.3:
		score.earn(RuleCalorieAdherence, 15, "Deficit too aggressive")
	}
}

func scoreProteinRule(entry *models.DailyEntry, profile *models.Profile, score *DayScore) {
	target := float64(profile.TargetProtein)
	consumed := float64(entry.Protein)

	switch {
	case consumed >= target*0.9:
		score.earn(RuleProtein, 35, "Protein target hit")
	case consumed >= target*0.7:
		score.earn(RuleProtein, 20, "Protein nearly there")
	case consumed > 0 && consumed < target*0.5:
		score.lose(RuleProtein, 15, "Too little protein")
	}
}

// Rule 5: step activity, highest matching tier only. 1,000 to 2,499
// steps earn and cost nothing.
func scoreStepsRule(entry *models.DailyEntry, score *DayScore) {
	steps := entry.Steps
	switch {
	case steps >= 10000:
		score.earn(RuleSteps, 25, "10,000+ steps")
	case steps >= 7500:
		score.earn(RuleSteps, 20, "7,500+ steps")
	case steps >= 5000:
		score.earn(RuleSteps, 15, "5,000+ steps")
	case steps >= 2500:
		score.earn(RuleSteps, 10, "2,500+ steps")
	case steps > 0 && steps < 1000:
		score.lose(RuleSteps, 10, "Under 1,000 steps")
	}
}

// Rule 6: meal structure over the main categories; snacks never count
// as a main meal, and a snacks-only day costs points.
func scoreMealStructureRule(entry *models.DailyEntry, score *DayScore) {
	categories := map[string]bool{}
	for _, meal := range entry.Meals {
		if models.IsMainMealCategory(meal.Category) {
			categories[meal.Category] = true
		}
	}

	switch {
	case len(categories) == 3:
		score.earn(RuleMealStructure, 20, "All three main meals")
	case len(categories) == 2:
		score.earn(RuleMealStructure, 10, "Two main meals")
	case len(categories) == 0 && len(entry.Meals) > 0:
		score.lose(RuleMealStructure, 10, "Snacks only, no main meals")
	}
}

// Rule 7: tracking presence, independent of and additive with rule 3.
func scoreTrackingRule(entry *models.DailyEntry, score *DayScore) {
	if entry.Calories > 0 {
		score.earn(RuleTracking, 15, "Calories tracked")
	} else {
		score.lose(RuleTracking, 20, "Nothing tracked")
	}
}

// Rule 8: overage penalty, additive with rule 3. Escalates linearly
// past 500 kcal over target.
func scoreCalorieOverageRule(entry *models.DailyEntry, profile *models.Profile, score *DayScore) {
	deficit := profile.TargetCalories - entry.Calories
	if deficit >= 0 {
		return
	}

	overage := -deficit
	switch {
	case overage <= 200:
		score.lose(RuleCalorieOverage, 10, fmt.Sprintf("Slightly over target (%d kcal)", overage))
	case overage <= 500:
		score.lose(RuleCalorieOverage, 25, fmt.Sprintf("Over target (%d kcal)", overage))
	default:
		points := int(math.Round(25 + float64(overage-500)/100*5))
		score.lose(RuleCalorieOverage, points, fmt.Sprintf("Far over target (%d kcal)", overage))
	}
}

// WeightForDate returns the weight logged exactly on the given day.
func WeightForDate(entries []models.WeightEntry, day string) (float64, bool) {
	for _, entry := range entries {
		if entry.Date == day {
			return entry.Weight, true
		}
	}
	return 0, false
}

// PreviousWeight returns the weight of the nearest dated entry strictly
// before the given day.
func PreviousWeight(entries []models.WeightEntry, day string) (float64, bool) {
	best := ""
	weight := 0.0
	for _, entry := range entries {
		if entry.Date < day && entry.Date > best {
			best = entry.Date
			weight = entry.Weight
		}
	}
	return weight, best != ""
}

// SortedWeightEntries returns the entries ordered ascending by date.
// Stored order is unspecified; consumers always sort.
func SortedWeightEntries(entries []models.WeightEntry) []models.WeightEntry {
	sorted := make([]models.WeightEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	return sorted
}
