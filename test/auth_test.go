package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/fitdiary/backend/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestAuth_Login() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		loginReq           loginRequest
		expectedStatusCode int
		assertFunc         func(resp *http.Response)
	}{
		"good creds": {
			loginReq: loginRequest{
				Username: testUsername,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var loginResp loginResponse
				require.NoError(t, json.Unmarshal(respBytes, &loginResp))
				assert.NotEmpty(t, loginResp.Token)
			},
		},
		"good creds, then logout": {
			loginReq: loginRequest{
				Username: testUsername,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)

				var loginResp loginResponse
				require.NoError(t, json.Unmarshal(respBytes, &loginResp))
				assert.NotEmpty(t, loginResp.Token)

				req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/a/logout", serverEndpoint), nil)
				require.NoError(t, err)
				req.Header.Set("User-Agent", "test-agent")
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("X-FITDIARY-TOKEN", loginResp.Token)

				logoutResp, err := s.httpClient.Do(req)
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, logoutResp.StatusCode)
				resp.Body.Close()
			},
		},
		"bad password": {
			loginReq: loginRequest{
				Username: testUsername,
				Password: "bad-password",
			},
			expectedStatusCode: http.StatusBadRequest,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				respString := strings.TrimSpace(string(respBytes))
				assert.Equal(t, "error, wrong credentials", respString)
			},
		},
		"bad username": {
			loginReq: loginRequest{
				Username: "bad-username",
				Password: testPassword,
			},
			expectedStatusCode: http.StatusBadRequest,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				respString := strings.TrimSpace(string(respBytes))
				assert.Equal(t, "error, wrong credentials", respString)
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			loginReqJson, err := json.Marshal(tc.loginReq)
			require.NoError(t, err)

			req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
			require.NoError(t, err)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			defer resp.Body.Close()

			tc.assertFunc(resp)
		})
	}

	t.Run("rate limiting", func(t *testing.T) {
		// simulate login requests brute force attack
		loginReqJson, err := json.Marshal(loginRequest{
			Username: "brute-force-user",
			Password: "brute-force-pass",
		})
		require.NoError(t, err)

		// the previous subtests already spent a few attempts, so reset the counter first
		require.NoError(t, s.redisDataCleanup(ctx))

		for i := 1; i <= loginAttemptsMax+5; i++ {
			req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
			require.NoError(t, err)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)

			respBytes, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if i <= loginAttemptsMax {
				require.Equal(t, http.StatusBadRequest, resp.StatusCode, "iteration: %d", i)
			} else {
				require.Equal(t, http.StatusTooEarly, resp.StatusCode, "iteration: %d", i)
				assert.True(t, strings.HasPrefix(string(respBytes), "retry after"), "iteration: %d", i)
			}

			assert.NoError(t, resp.Body.Close())
		}

		require.NoError(t, s.redisDataCleanup(ctx))
	})
}

func (s *IntegrationTestSuite) TestAuth_Register() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// keep the username within the allowed length, gofakeit surnames can get long
	freshUsername := fmt.Sprintf("user_%d", gofakeit.Number(10000, 99999))
	freshEmail := gofakeit.Email()
	freshPassword := gofakeit.Password(true, true, true, false, false, 16)

	newUser := s.registerUser(ctx, freshUsername, freshEmail, freshPassword)
	assert.True(t, newUser.ID > 0)
	assert.Equal(t, freshUsername, newUser.Username)
	assert.Equal(t, freshEmail, newUser.Email)

	// the fresh account can log in right away
	token := s.doLoginAs(ctx, freshUsername, freshPassword)
	assert.NotEmpty(t, token)

	t.Run("username taken", func(t *testing.T) {
		registerReqJson, err := json.Marshal(auth.RegisterParams{
			Username: freshUsername,
			Email:    gofakeit.Email(),
			Password: "Whatever-pass1",
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/register", serverEndpoint), bytes.NewBuffer(registerReqJson))
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid params", func(t *testing.T) {
		registerReqJson, err := json.Marshal(auth.RegisterParams{
			Username: "x",
			Email:    "not-an-email",
			Password: "short",
		})
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/register", serverEndpoint), bytes.NewBuffer(registerReqJson))
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *IntegrationTestSuite) TestAuth_Account() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx, "accountuser", "account@fitdiary.test", "Account-pass1")
	token := s.doLoginAs(ctx, "accountuser", "Account-pass1")

	getAccount := func() auth.User {
		req, err := s.authedRequest(ctx, token, "GET", fmt.Sprintf("%s/account", serverEndpoint), nil)
		require.NoError(t, err)
		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var gotUser auth.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&gotUser))
		return gotUser
	}

	gotUser := getAccount()
	assert.Equal(t, user.ID, gotUser.ID)
	assert.Equal(t, "accountuser", gotUser.Username)
	assert.Nil(t, gotUser.HeightCm)
	assert.Nil(t, gotUser.WeightKg)

	heightCm := 185.5
	fitnessGoal := "strength"
	updateReqJson, err := json.Marshal(auth.UpdateAccountRequest{
		HeightCm:    &heightCm,
		FitnessGoal: &fitnessGoal,
	})
	require.NoError(t, err)

	req, err := s.authedRequest(ctx, token, "PUT", fmt.Sprintf("%s/account", serverEndpoint), updateReqJson)
	require.NoError(t, err)
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf(`{"updatedId": %d}`, user.ID), string(respBytes))

	updatedUser := getAccount()
	require.NotNil(t, updatedUser.HeightCm)
	assert.InDelta(t, heightCm, *updatedUser.HeightCm, 0.01)
	require.NotNil(t, updatedUser.FitnessGoal)
	assert.Equal(t, fitnessGoal, *updatedUser.FitnessGoal)
	assert.Nil(t, updatedUser.WeightKg)

	t.Run("no token", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/account", serverEndpoint), nil)
		require.NoError(t, err)
		req.Header.Set("User-Agent", "test-agent")

		resp, err := s.httpClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
