package workouts

import (
	"context"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/metrics"
	"github.com/fitdiary/backend/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts

type workoutsRepo interface {
	AddSets(ctx context.Context, userID int, date time.Time, sets []ExerciseSet) ([]ExerciseSet, error)
	SetsForDate(ctx context.Context, userID int, date time.Time) ([]ExerciseSet, error)
	DeleteSet(ctx context.Context, userID, setID int) error
	GetBodyPartByName(ctx context.Context, name string) (*BodyPart, error)
	AddCustomExercise(ctx context.Context, exercise *CustomExercise) (*CustomExercise, error)
}

// Service is the "rep logger": it validates a log-exercise request and
// expands it into individual set rows, stored all-or-nothing.
type Service struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewService(repo workoutsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (s *Service) LogExercise(ctx context.Context, params LogExerciseParams) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.logExercise")
	span.SetAttributes(attribute.String("exercise", params.ExerciseName))
	span.SetAttributes(attribute.Int("sets", params.SetsCount))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateLogExercise(params); err != nil {
		return nil, err
	}

	bodyPart, err := s.repo.GetBodyPartByName(ctx, params.BodyPart)
	if err != nil {
		return nil, err
	}

	sets := make([]ExerciseSet, 0, params.SetsCount)
	for i := 0; i < params.SetsCount; i++ {
		sets = append(sets, ExerciseSet{
			ExerciseName: params.ExerciseName,
			BodyPart:     bodyPart.Name,
			Weight:       params.Weight,
			Reps:         params.Reps,
		})
	}

	added, err := s.repo.AddSets(ctx, params.UserID, params.Date, sets)
	if err != nil {
		return nil, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterLoggedSets.Add(float64(len(added)))
	}

	log.Debugf(
		"user %d logged %d sets of [%s] on %s",
		params.UserID, len(added), params.ExerciseName, params.Date.Format("2006-01-02"),
	)

	return added, nil
}

func (s *Service) LoggedSets(ctx context.Context, userID int, date time.Time) ([]ExerciseSet, error) {
	return s.repo.SetsForDate(ctx, userID, date)
}

func (s *Service) DeleteLoggedSet(ctx context.Context, userID, setID int) error {
	return s.repo.DeleteSet(ctx, userID, setID)
}

func (s *Service) AddCustomExercise(ctx context.Context, userID int, name, bodyPartName string) (*CustomExercise, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}

	bodyPart, err := s.repo.GetBodyPartByName(ctx, bodyPartName)
	if err != nil {
		return nil, err
	}

	return s.repo.AddCustomExercise(ctx, &CustomExercise{
		UserID:     userID,
		Name:       name,
		BodyPartID: bodyPart.ID,
	})
}
