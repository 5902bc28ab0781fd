package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fitdiary/backend/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dateLayout = "2006-01-02"

func (s *IntegrationTestSuite) logExercise(
	ctx context.Context,
	token string,
	logReq workouts.LogExerciseRequest,
) []workouts.ExerciseSet {
	t := s.T()

	logReqJson, err := json.Marshal(logReq)
	require.NoError(t, err)

	req, err := s.authedRequest(ctx, token, "POST", fmt.Sprintf("%s/exercise", serverEndpoint), logReqJson)
	require.NoError(t, err)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var addedSets []workouts.ExerciseSet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&addedSets))
	return addedSets
}

func (s *IntegrationTestSuite) getLoggedSets(ctx context.Context, token, date string) workouts.LoggedSetsResponse {
	t := s.T()

	req, err := s.authedRequest(ctx, token, "GET", fmt.Sprintf("%s/exercise?date=%s", serverEndpoint, date), nil)
	require.NoError(t, err)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loggedSets workouts.LoggedSetsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loggedSets))
	return loggedSets
}

func (s *IntegrationTestSuite) userSetsCount(userID int) int {
	var count int
	err := s.DB.QueryRow(`
		SELECT COUNT(*)
		FROM exercise_set es
		JOIN workout w ON es.workout_id = w.id
		WHERE w.user_id = $1`,
		userID,
	).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

func (s *IntegrationTestSuite) TestWorkouts_LogAndGet() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx, "lifter", "lifter@fitdiary.test", "Lifter-pass1")
	token := s.doLoginAs(ctx, "lifter", "Lifter-pass1")

	// monday of the current week, so the weekly volume stats pick it up too
	now := time.Now()
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := now.AddDate(0, 0, -(weekday - 1)).Format(dateLayout)

	addedSets := s.logExercise(ctx, token, workouts.LogExerciseRequest{
		Date:         monday,
		BodyPart:     "Chest",
		ExerciseName: "Bench Press",
		Weight:       135,
		Reps:         8,
		Sets:         3,
	})
	require.Len(t, addedSets, 3)
	for _, set := range addedSets {
		assert.True(t, set.ID > 0)
		assert.Equal(t, "Bench Press", set.ExerciseName)
		assert.Equal(t, "Chest", set.BodyPart)
		assert.InDelta(t, 135.0, set.Weight, 0.001)
		assert.Equal(t, 8, set.Reps)
	}

	loggedSets := s.getLoggedSets(ctx, token, monday)
	assert.Equal(t, monday, loggedSets.Date)
	require.Len(t, loggedSets.Sets, 3)
	for _, set := range loggedSets.Sets {
		assert.Equal(t, "Bench Press", set.ExerciseName)
		assert.InDelta(t, 135.0, set.Weight, 0.001)
		assert.Equal(t, 8, set.Reps)
	}

	assert.Equal(t, 3, s.userSetsCount(user.ID))

	t.Run("delete one set", func(t *testing.T) {
		req, err := s.authedRequest(ctx, token, "DELETE", fmt.Sprintf("%s/exercise/%d", serverEndpoint, addedSets[0].ID), nil)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var deleteResp workouts.DeleteSetResponse
		require.NoError(t, json.Unmarshal(respBytes, &deleteResp))
		assert.Equal(t, addedSets[0].ID, deleteResp.DeletedID)

		loggedSets := s.getLoggedSets(ctx, token, monday)
		assert.Len(t, loggedSets.Sets, 2)
		assert.Equal(t, 2, s.userSetsCount(user.ID))
	})

	t.Run("delete unknown set", func(t *testing.T) {
		req, err := s.authedRequest(ctx, token, "DELETE", fmt.Sprintf("%s/exercise/%d", serverEndpoint, 987654), nil)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("no token", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/exercise", serverEndpoint), nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func (s *IntegrationTestSuite) TestWorkouts_ValidationPersistsNothing() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx, "sloppylifter", "sloppy@fitdiary.test", "Sloppy-pass1")
	token := s.doLoginAs(ctx, "sloppylifter", "Sloppy-pass1")

	today := time.Now().Format(dateLayout)

	cases := map[string]struct {
		logReq             workouts.LogExerciseRequest
		expectedStatusCode int
	}{
		"negative weight": {
			logReq: workouts.LogExerciseRequest{
				Date: today, BodyPart: "Chest", ExerciseName: "Bench Press",
				Weight: -5, Reps: 8, Sets: 3,
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"zero reps": {
			logReq: workouts.LogExerciseRequest{
				Date: today, BodyPart: "Chest", ExerciseName: "Bench Press",
				Weight: 135, Reps: 0, Sets: 3,
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"empty exercise name": {
			logReq: workouts.LogExerciseRequest{
				Date: today, BodyPart: "Chest", ExerciseName: "",
				Weight: 135, Reps: 8, Sets: 3,
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"bad date": {
			logReq: workouts.LogExerciseRequest{
				Date: "03/02/2024", BodyPart: "Chest", ExerciseName: "Bench Press",
				Weight: 135, Reps: 8, Sets: 3,
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		"unknown body part": {
			logReq: workouts.LogExerciseRequest{
				Date: today, BodyPart: "Wings", ExerciseName: "Fly",
				Weight: 135, Reps: 8, Sets: 3,
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			logReqJson, err := json.Marshal(tc.logReq)
			require.NoError(t, err)

			req, err := s.authedRequest(ctx, token, "POST", fmt.Sprintf("%s/exercise", serverEndpoint), logReqJson)
			require.NoError(t, err)

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)
		})
	}

	// a rejected log request writes nothing
	assert.Equal(t, 0, s.userSetsCount(user.ID))
}

func (s *IntegrationTestSuite) TestWorkouts_ExerciseCatalog() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.registerUser(ctx, "cataloguser", "catalog@fitdiary.test", "Catalog-pass1")
	token := s.doLoginAs(ctx, "cataloguser", "Catalog-pass1")

	t.Run("body parts", func(t *testing.T) {
		req, err := s.authedRequest(ctx, token, "GET", fmt.Sprintf("%s/bodyparts", serverEndpoint), nil)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var bodyParts []workouts.BodyPart
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&bodyParts))
		require.Len(t, bodyParts, 6)

		names := make([]string, 0, len(bodyParts))
		for _, bp := range bodyParts {
			names = append(names, bp.Name)
		}
		for _, expected := range []string{"Chest", "Back", "Legs", "Shoulders", "Arms", "Core"} {
			assert.Contains(t, names, expected)
		}
	})

	t.Run("custom exercise", func(t *testing.T) {
		customReqJson, err := json.Marshal(workouts.AddCustomExerciseRequest{
			Name:     "Svend Press",
			BodyPart: "Chest",
		})
		require.NoError(t, err)

		req, err := s.authedRequest(ctx, token, "POST", fmt.Sprintf("%s/exercises/custom", serverEndpoint), customReqJson)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var customExercise workouts.CustomExercise
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&customExercise))
		assert.True(t, customExercise.ID > 0)
		assert.Equal(t, "Svend Press", customExercise.Name)

		// the new custom exercise shows up in the catalog for its body part
		listReq, err := s.authedRequest(ctx, token, "GET", fmt.Sprintf("%s/exercises/Chest", serverEndpoint), nil)
		require.NoError(t, err)

		listResp, err := s.httpClient.Do(listReq)
		require.NoError(t, err)
		defer listResp.Body.Close()
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var exercises workouts.ExercisesResponse
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&exercises))
		assert.Equal(t, "Chest", exercises.BodyPart)
		assert.NotEmpty(t, exercises.Standard)

		customNames := make([]string, 0, len(exercises.Custom))
		for _, ce := range exercises.Custom {
			customNames = append(customNames, ce.Name)
		}
		assert.Contains(t, customNames, "Svend Press")
	})

	t.Run("unknown body part", func(t *testing.T) {
		req, err := s.authedRequest(ctx, token, "GET", fmt.Sprintf("%s/exercises/Wings", serverEndpoint), nil)
		require.NoError(t, err)

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		respBytes, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "body part not found", strings.TrimSpace(string(respBytes)))
	})
}
