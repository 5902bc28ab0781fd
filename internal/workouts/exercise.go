package workouts

import "time"

type BodyPart struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type StandardExercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	BodyPartID  int    `json:"bodyPartId"`
	Description string `json:"description,omitempty"`
	IsCompound  bool   `json:"isCompound"`
}

type CustomExercise struct {
	ID         int    `json:"id"`
	UserID     int    `json:"userId"`
	Name       string `json:"name"`
	BodyPartID int    `json:"bodyPartId"`
}

type Workout struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Date   time.Time `json:"date"`
}

// ExerciseSet is a single performed set. Logging N sets of an exercise
// expands into N rows, one per set.
type ExerciseSet struct {
	ID           int       `json:"id"`
	WorkoutID    int       `json:"workoutId"`
	ExerciseName string    `json:"exerciseName"`
	BodyPart     string    `json:"bodyPart"`
	Weight       float64   `json:"weight"` // pounds
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

type LogExerciseParams struct {
	UserID       int
	Date         time.Time
	BodyPart     string
	ExerciseName string
	Weight       float64
	Reps         int
	SetsCount    int
}
