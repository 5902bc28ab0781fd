package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	log "github.com/sirupsen/logrus"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	height_cm REAL,
	weight_kg REAL,
	fitness_goal TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS body_part (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS standard_exercise (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	body_part_id INTEGER NOT NULL REFERENCES body_part(id),
	description TEXT NOT NULL DEFAULT '',
	is_compound BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS custom_exercise (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	body_part_id INTEGER NOT NULL REFERENCES body_part(id),
	UNIQUE (user_id, name)
);

CREATE TABLE IF NOT EXISTS workout (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	workout_date DATE NOT NULL,
	UNIQUE (user_id, workout_date)
);

CREATE TABLE IF NOT EXISTS exercise_set (
	id SERIAL PRIMARY KEY,
	workout_id INTEGER NOT NULL REFERENCES workout(id) ON DELETE CASCADE,
	exercise_name TEXT NOT NULL,
	body_part TEXT NOT NULL,
	weight REAL NOT NULL,
	reps INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_workout_user_date ON workout (user_id, workout_date);
CREATE INDEX IF NOT EXISTS idx_exercise_set_workout ON exercise_set (workout_id);
CREATE INDEX IF NOT EXISTS idx_exercise_set_name ON exercise_set (exercise_name);
`

const seedBodyPartsSQL = `
INSERT INTO body_part (name) VALUES
	('Chest'), ('Back'), ('Legs'), ('Shoulders'), ('Arms'), ('Core')
ON CONFLICT (name) DO NOTHING;
`

const seedStandardExercisesSQL = `
INSERT INTO standard_exercise (name, body_part_id, is_compound) VALUES
	('Bench Press', (SELECT id FROM body_part WHERE name = 'Chest'), TRUE),
	('Incline Bench Press', (SELECT id FROM body_part WHERE name = 'Chest'), TRUE),
	('Dumbbell Fly', (SELECT id FROM body_part WHERE name = 'Chest'), FALSE),
	('Cable Crossover', (SELECT id FROM body_part WHERE name = 'Chest'), FALSE),
	('Push Up', (SELECT id FROM body_part WHERE name = 'Chest'), TRUE),
	('Deadlift', (SELECT id FROM body_part WHERE name = 'Back'), TRUE),
	('Pull Up', (SELECT id FROM body_part WHERE name = 'Back'), TRUE),
	('Barbell Row', (SELECT id FROM body_part WHERE name = 'Back'), TRUE),
	('Lat Pulldown', (SELECT id FROM body_part WHERE name = 'Back'), FALSE),
	('Seated Cable Row', (SELECT id FROM body_part WHERE name = 'Back'), FALSE),
	('Squat', (SELECT id FROM body_part WHERE name = 'Legs'), TRUE),
	('Leg Press', (SELECT id FROM body_part WHERE name = 'Legs'), TRUE),
	('Lunge', (SELECT id FROM body_part WHERE name = 'Legs'), TRUE),
	('Leg Extension', (SELECT id FROM body_part WHERE name = 'Legs'), FALSE),
	('Leg Curl', (SELECT id FROM body_part WHERE name = 'Legs'), FALSE),
	('Calf Raise', (SELECT id FROM body_part WHERE name = 'Legs'), FALSE),
	('Overhead Press', (SELECT id FROM body_part WHERE name = 'Shoulders'), TRUE),
	('Lateral Raise', (SELECT id FROM body_part WHERE name = 'Shoulders'), FALSE),
	('Front Raise', (SELECT id FROM body_part WHERE name = 'Shoulders'), FALSE),
	('Face Pull', (SELECT id FROM body_part WHERE name = 'Shoulders'), FALSE),
	('Barbell Curl', (SELECT id FROM body_part WHERE name = 'Arms'), FALSE),
	('Hammer Curl', (SELECT id FROM body_part WHERE name = 'Arms'), FALSE),
	('Tricep Pushdown', (SELECT id FROM body_part WHERE name = 'Arms'), FALSE),
	('Skull Crusher', (SELECT id FROM body_part WHERE name = 'Arms'), FALSE),
	('Dip', (SELECT id FROM body_part WHERE name = 'Arms'), TRUE),
	('Plank', (SELECT id FROM body_part WHERE name = 'Core'), FALSE),
	('Crunch', (SELECT id FROM body_part WHERE name = 'Core'), FALSE),
	('Russian Twist', (SELECT id FROM body_part WHERE name = 'Core'), FALSE),
	('Hanging Leg Raise', (SELECT id FROM body_part WHERE name = 'Core'), FALSE)
ON CONFLICT (name) DO NOTHING;
`

// Migrate creates the schema and seeds the body part and standard
// exercise catalogs. All statements are idempotent, safe to run on
// every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := pool.Exec(ctx, seedBodyPartsSQL); err != nil {
		return fmt.Errorf("seed body parts: %w", err)
	}
	if _, err := pool.Exec(ctx, seedStandardExercisesSQL); err != nil {
		return fmt.Errorf("seed standard exercises: %w", err)
	}
	log.Debugln("db migration done")
	return nil
}
