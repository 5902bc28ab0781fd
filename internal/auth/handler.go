package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fitdiary/backend/internal/telemetry/metrics"
	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	authService    *Service
	usersRepo      usersRepo
	metricsManager *metrics.Manager
}

func NewHandler(
	authService *Service,
	usersRepo usersRepo,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		authService:    authService,
		usersRepo:      usersRepo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimitMiddleware mux.MiddlewareFunc,
) {
	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	authSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the auth endpoints to prevent abuse
	authSubrouter.Use(rateLimitMiddleware)

	mainRouter.HandleFunc("/account", handler.handleGetAccount).Methods("GET", "OPTIONS").Name("get-account")
	mainRouter.HandleFunc("/account", handler.handleUpdateAccount).Methods("PUT", "OPTIONS").Name("update-account")
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var registerParams RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&registerParams); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.Register(ctx, registerParams)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			log.Errorf("register user [%s]: %s", registerParams.Username, err)
			http.Error(w, "register failed", http.StatusInternalServerError)
		}
		return
	}

	handler.metricsManager.CounterRegisteredUsers.Inc()
	log.Debugf("new user registered: [%s] [%d]", user.Username, user.ID)

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal registered user: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var credentials Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		credentials = Credentials{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if credentials.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if credentials.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			handler.metricsManager.CounterFailedLogins.Inc()
			http.Error(w, "error, wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.Inc()
	log.Trace("new login success")
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get("X-FITDIARY-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Tracef("logout for [%s] success", authToken)
	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.getAccount")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.usersRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.Errorf("get account for user %d: %s", userID, err)
		http.Error(w, "account not found", http.StatusNotFound)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal account: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

type UpdateAccountRequest struct {
	HeightCm    *float64 `json:"heightCm"`
	WeightKg    *float64 `json:"weightKg"`
	FitnessGoal *string  `json:"fitnessGoal"`
}

func (handler *Handler) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.updateAccount")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var updateReq UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		log.Errorf("update account, unmarshal json params: %s", err)
		http.Error(w, "update account failed", http.StatusBadRequest)
		return
	}

	err := handler.usersRepo.UpdateProfile(ctx, UpdateProfileParams{
		UserID:      userID,
		HeightCm:    updateReq.HeightCm,
		WeightKg:    updateReq.WeightKg,
		FitnessGoal: updateReq.FitnessGoal,
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}
		log.Errorf("update account for user %d: %s", userID, err)
		http.Error(w, "update account failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("account updated for user: %d", userID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"updatedId": %d}`, userID))
}
