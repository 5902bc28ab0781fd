package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrWrongPassword = errors.New("wrong password")
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	HeightCm     *float64  `json:"heightCm,omitempty"`
	WeightKg     *float64  `json:"weightKg,omitempty"`
	FitnessGoal  *string   `json:"fitnessGoal,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ctxKey int

const userIDCtxKey ctxKey = 0

func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext returns the user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int)
	return userID, ok
}
