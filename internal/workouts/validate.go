package workouts

import "fmt"

const (
	// weights are tracked in pounds, 0 allowed for bodyweight exercises
	weightMin = 0.0
	weightMax = 10000.0
	repsMin   = 1
	repsMax   = 1000
	setsMin   = 1
	setsMax   = 100
)

// ValidationError carries the first field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateLogExercise(params LogExerciseParams) error {
	if params.ExerciseName == "" {
		return &ValidationError{Field: "exerciseName", Message: "must not be empty"}
	}
	if params.BodyPart == "" {
		return &ValidationError{Field: "bodyPart", Message: "must not be empty"}
	}
	if params.Weight < weightMin || params.Weight > weightMax {
		return &ValidationError{
			Field:   "weight",
			Message: fmt.Sprintf("must be between %g and %g", weightMin, weightMax),
		}
	}
	if params.Reps < repsMin || params.Reps > repsMax {
		return &ValidationError{
			Field:   "reps",
			Message: fmt.Sprintf("must be between %d and %d", repsMin, repsMax),
		}
	}
	if params.SetsCount < setsMin || params.SetsCount > setsMax {
		return &ValidationError{
			Field:   "sets",
			Message: fmt.Sprintf("must be between %d and %d", setsMin, setsMax),
		}
	}
	if params.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "must be a valid date"}
	}
	return nil
}
