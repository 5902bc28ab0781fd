package stats

import "time"

type VolumeTrendEntry struct {
	// Week is the ISO year-week, e.g. "2024-09".
	Week   string  `json:"week"`
	Volume float64 `json:"volume"`
}

type ProgressionEntry struct {
	Date        time.Time `json:"date"`
	MaxWeight   float64   `json:"maxWeight"`
	TotalVolume float64   `json:"totalVolume"`
}

// Progression is the per-date max weight series for one exercise,
// plus the all-time personal record.
type Progression struct {
	ExerciseName  string             `json:"exerciseName"`
	Entries       []ProgressionEntry `json:"entries"`
	PRWeight      float64            `json:"prWeight"`
	PRDate        *time.Time         `json:"prDate"`
	TotalSessions int                `json:"totalSessions"`
}

type RecentPR struct {
	ExerciseName string    `json:"exerciseName"`
	Date         time.Time `json:"date"`
	Weight       float64   `json:"weight"`
}

type BodyPartDays struct {
	BodyPart    string `json:"bodyPart"`
	DaysTrained int    `json:"daysTrained"`
}

type Recommendation struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// BalanceReport buckets every body part by distinct training days
// in the trailing week.
type BalanceReport struct {
	Overworked      []BodyPartDays   `json:"overworked"`
	Balanced        []BodyPartDays   `json:"balanced"`
	Underworked     []BodyPartDays   `json:"underworked"`
	Neglected       []BodyPartDays   `json:"neglected"`
	Recommendations []Recommendation `json:"recommendations"`
}

type Consistency struct {
	WorkoutCount int `json:"workoutCount"`
	Streak       int `json:"streak"`
}

type BodyPartDistribution struct {
	// Percentages holds the share of total volume per body part,
	// 0 for parts with no activity in the window.
	Percentages map[string]float64 `json:"percentages"`
	TotalVolume float64            `json:"totalVolume"`
	From        time.Time          `json:"from"`
	To          time.Time          `json:"to"`
}

type WorkoutDiversity struct {
	UniqueExercises int `json:"uniqueExercises"`
}

type ExerciseGroup struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Sets         int     `json:"sets"`
}

type DashboardSummary struct {
	Date             string                     `json:"date"`
	TotalWeight      float64                    `json:"totalWeight"`
	TotalReps        int                        `json:"totalReps"`
	WorkoutsThisWeek int                        `json:"workoutsThisWeek"`
	Exercises        map[string][]ExerciseGroup `json:"exercises"`
}
