package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddUser(ctx context.Context, user *User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(username, email, password_hash, height_cm, weight_kg, fitness_goal, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		user.Username, user.Email, user.PasswordHash,
		user.HeightCm, user.WeightKg, user.FitnessGoal, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			if strings.Contains(err.Error(), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanUser(r.db.QueryRow(
		ctx,
		`SELECT
				id, username, email, password_hash, height_cm, weight_kg, fitness_goal, created_at
			FROM users
			WHERE username = $1;`,
		username,
	))
}

func (r *Repo) GetUserByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.scanUser(r.db.QueryRow(
		ctx,
		`SELECT
				id, username, email, password_hash, height_cm, weight_kg, fitness_goal, created_at
			FROM users
			WHERE id = $1;`,
		id,
	))
}

type UpdateProfileParams struct {
	UserID      int
	HeightCm    *float64
	WeightKg    *float64
	FitnessGoal *string
}

// UpdateProfile updates only the provided (non-nil) profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, params UpdateProfileParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET
				height_cm = COALESCE($1, height_cm),
				weight_kg = COALESCE($2, weight_kg),
				fitness_goal = COALESCE($3, fitness_goal)
			WHERE id = $4;`,
		params.HeightCm, params.WeightKg, params.FitnessGoal, params.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *Repo) scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.HeightCm, &u.WeightKg, &u.FitnessGoal, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
