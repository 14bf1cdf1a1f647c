package models

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Profile holds the physiological and goal parameters collected during
// setup. The derived fields (BMR, TDEE, targets) are recomputed whenever
// the inputs change and are read-only for the scoring engine.
type Profile struct {
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	Sex              string  `json:"sex"`
	Height           float64 `json:"height"`
	CurrentWeight    float64 `json:"currentWeight"`
	TargetWeight     float64 `json:"targetWeight"`
	StartWeight      float64 `json:"startWeight"`
	StartDate        string  `json:"startDate"`
	ActivityLevel    float64 `json:"activityLevel"`
	Deficit          int     `json:"deficit"`
	BMR              int     `json:"bmr"`
	TDEE             int     `json:"tdee"`
	TargetCalories   int     `json:"targetCalories"`
	TargetProtein    int     `json:"targetProtein"`
	MotivationReason string  `json:"motivationReason"`
}

// Meal is immutable once created except for deletion. IDs are monotonic
// by creation time within a day.
type Meal struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Category string `json:"category"`
	Time     string `json:"time"`
}

// DailyEntry is the date-keyed behavioral record for one calendar day.
// Calories and Protein must always equal the sums over Meals; the ledger
// commands maintain that invariant, the scorer only reads the aggregates.
type DailyEntry struct {
	Calories      int    `json:"calories"`
	Protein       int    `json:"protein"`
	Meals         []Meal `json:"meals"`
	Steps         int    `json:"steps"`
	StepsCalories int    `json:"stepsCalories"`
}

// WeightEntry stores at most one weight per date; writing an existing
// date overwrites.
type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// RuleOutcome is one line of a day's scoring audit trail. Delta is
// positive for earned points and negative for lost points.
type RuleOutcome struct {
	Rule   string `json:"rule"`
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// RankHistoryEntry records one scored day. Entries are append-only and
// never mutated afterwards.
type RankHistoryEntry struct {
	Date         string        `json:"date"`
	PointsEarned int           `json:"pointsEarned"`
	PointsLost   int           `json:"pointsLost"`
	NetPoints    int           `json:"netPoints"`
	TotalPoints  int           `json:"totalPoints"`
	Rank         int           `json:"rank"`
	Breakdown    []RuleOutcome `json:"breakdown"`
}

// RankingState carries the running point total and its audit trail.
// RankPoints never goes below zero; the lifetime counters only grow.
// LastCalculated is the high-water mark: a day is eligible for scoring
// iff it is before today and after LastCalculated.
type RankingState struct {
	CurrentRank       int                `json:"currentRank"`
	RankPoints        int                `json:"rankPoints"`
	TotalPointsEarned int                `json:"totalPointsEarned"`
	TotalPointsLost   int                `json:"totalPointsLost"`
	RankHistory       []RankHistoryEntry `json:"rankHistory"`
	LastCalculated    string             `json:"lastCalculated"`
}

type Settings struct {
	SupplementReminder  bool   `json:"supplementReminder"`
	SupplementTakenDate string `json:"supplementTakenDate"`
}

// UserState is the full per-user document persisted as one overwrite.
type UserState struct {
	Profile       Profile                `json:"profile"`
	DailyEntries  map[string]*DailyEntry `json:"dailyEntries"`
	WeightEntries []WeightEntry          `json:"weightEntries"`
	Settings      Settings               `json:"settings"`
	Ranking       RankingState           `json:"ranking"`
	SetupComplete bool                   `json:"setupComplete"`
}

// RankedUserState pairs a state document with its owner for leaderboard
// projections.
type RankedUserState struct {
	UserID uint
	State  UserState
}

func NewUserState() UserState {
	return UserState{
		Profile: Profile{
			Sex:           SexMale,
			ActivityLevel: 1.55,
			Deficit:       500,
		},
		DailyEntries:  map[string]*DailyEntry{},
		WeightEntries: []WeightEntry{},
		Ranking: RankingState{
			RankHistory: []RankHistoryEntry{},
		},
	}
}

func NewDailyEntry() *DailyEntry {
	return &DailyEntry{Meals: []Meal{}}
}

func IsMainMealCategory(category string) bool {
	switch category {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

func IsMealCategory(category string) bool {
	return IsMainMealCategory(category) || category == MealSnack
}
