package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSetNotFound            = errors.New("exercise set not found")
	ErrBodyPartNotFound       = errors.New("body part not found")
	ErrCustomExerciseConflict = errors.New("custom exercise already exists")
)

type ListSetsParams struct {
	UserID       int
	From         *time.Time
	To           *time.Time
	BodyPart     *string
	ExerciseName *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreateWorkout returns the workout for the given user and date,
// creating it first if it does not exist yet.
func (r *Repo) GetOrCreateWorkout(ctx context.Context, userID int, date time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getOrCreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	workout, err := getOrCreateWorkoutTx(ctx, tx, userID, date)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return workout, nil
}

func getOrCreateWorkoutTx(ctx context.Context, tx pgx.Tx, userID int, date time.Time) (*Workout, error) {
	workout := &Workout{UserID: userID}
	err := tx.QueryRow(
		ctx,
		`SELECT id, workout_date FROM workout WHERE user_id = $1 AND workout_date = $2;`,
		userID, date,
	).Scan(&workout.ID, &workout.Date)
	if err == nil {
		return workout, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, workout_date) VALUES ($1, $2) RETURNING id, workout_date;`,
		userID, date,
	).Scan(&workout.ID, &workout.Date)
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// AddSets persists all given sets for the user and date in a single
// transaction, creating the workout if needed. Either all sets are
// stored or none.
func (r *Repo) AddSets(ctx context.Context, userID int, date time.Time, sets []ExerciseSet) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSets")
	span.SetAttributes(attribute.Int("sets", len(sets)))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	workout, err := getOrCreateWorkoutTx(ctx, tx, userID, date)
	if err != nil {
		return nil, err
	}

	added := make([]ExerciseSet, 0, len(sets))
	for _, set := range sets {
		set.WorkoutID = workout.ID
		set.Date = workout.Date
		if set.CreatedAt.IsZero() {
			set.CreatedAt = time.Now()
		}
		err = tx.QueryRow(
			ctx,
			`INSERT INTO exercise_set
					(workout_id, exercise_name, body_part, weight, reps, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id;`,
			set.WorkoutID, set.ExerciseName, set.BodyPart, set.Weight, set.Reps, set.CreatedAt,
		).Scan(&set.ID)
		if err != nil {
			return nil, err
		}
		added = append(added, set)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return added, nil
}

func (r *Repo) ListSets(ctx context.Context, params ListSetsParams) (_ []ExerciseSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				es.id, es.workout_id, es.exercise_name, es.body_part,
				es.weight, es.reps, w.workout_date, es.created_at
			FROM exercise_set es
				JOIN workout w ON w.id = es.workout_id
			WHERE w.user_id = $1
				AND ($2::date IS NULL OR w.workout_date >= $2)
				AND ($3::date IS NULL OR w.workout_date <= $3)
				AND ($4::text IS NULL OR es.body_part = $4)
				AND ($5::text IS NULL OR es.exercise_name = $5)
			ORDER BY w.workout_date ASC, es.created_at ASC;`,
		params.UserID, params.From, params.To, params.BodyPart, params.ExerciseName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sets(rows)
}

func (r *Repo) SetsForDate(ctx context.Context, userID int, date time.Time) ([]ExerciseSet, error) {
	return r.ListSets(ctx, ListSetsParams{
		UserID: userID,
		From:   &date,
		To:     &date,
	})
}

// DistinctWorkoutDates returns all dates the user trained on, most recent first.
func (r *Repo) DistinctWorkoutDates(ctx context.Context, userID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.distinctDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT w.workout_date
			FROM workout w
				JOIN exercise_set es ON es.workout_id = w.id
			WHERE w.user_id = $1
			ORDER BY w.workout_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

// DeleteSet removes a single set, checking it belongs to the given user.
func (r *Repo) DeleteSet(ctx context.Context, userID, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSet")
	span.SetAttributes(attribute.Int("setID", setID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM exercise_set es
			USING workout w
			WHERE es.id = $1 AND es.workout_id = w.id AND w.user_id = $2;`,
		setID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) BodyParts(ctx context.Context) (_ []BodyPart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.bodyParts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name FROM body_part ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bodyParts := make([]BodyPart, 0)
	for rows.Next() {
		var bp BodyPart
		if err := rows.Scan(&bp.ID, &bp.Name); err != nil {
			return nil, err
		}
		bodyParts = append(bodyParts, bp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bodyParts, nil
}

func (r *Repo) GetBodyPartByName(ctx context.Context, name string) (_ *BodyPart, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getBodyPart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var bp BodyPart
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name FROM body_part WHERE name = $1;`,
		name,
	).Scan(&bp.ID, &bp.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBodyPartNotFound
		}
		return nil, err
	}
	return &bp, nil
}

// StandardExercises lists the exercise catalog for one body part.
func (r *Repo) StandardExercises(ctx context.Context, bodyPartID int) (_ []StandardExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.standardExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, body_part_id, description, is_compound
			FROM standard_exercise
			WHERE body_part_id = $1
			ORDER BY name;`,
		bodyPartID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]StandardExercise, 0)
	for rows.Next() {
		var e StandardExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.BodyPartID, &e.Description, &e.IsCompound); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) CustomExercises(ctx context.Context, userID, bodyPartID int) (_ []CustomExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.customExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, name, body_part_id
			FROM custom_exercise
			WHERE user_id = $1 AND body_part_id = $2
			ORDER BY name;`,
		userID, bodyPartID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]CustomExercise, 0)
	for rows.Next() {
		var e CustomExercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.BodyPartID); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *Repo) AddCustomExercise(ctx context.Context, exercise *CustomExercise) (_ *CustomExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addCustomExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO custom_exercise (user_id, name, body_part_id)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		exercise.UserID, exercise.Name, exercise.BodyPartID,
	).Scan(&exercise.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrCustomExerciseConflict
		}
		return nil, err
	}

	return exercise, nil
}

func rows2sets(rows pgx.Rows) ([]ExerciseSet, error) {
	sets := make([]ExerciseSet, 0)
	for rows.Next() {
		var s ExerciseSet
		if err := rows.Scan(
			&s.ID, &s.WorkoutID, &s.ExerciseName, &s.BodyPart,
			&s.Weight, &s.Reps, &s.Date, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}
