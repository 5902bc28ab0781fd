package workouts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/fitdiary/backend/internal/auth"
	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type LoggedSetsResponse struct {
	Date string        `json:"date"`
	Sets []ExerciseSet `json:"sets"`
}

type ExercisesResponse struct {
	BodyPart string             `json:"bodyPart"`
	Standard []StandardExercise `json:"standard"`
	Custom   []CustomExercise   `json:"custom"`
}

type Handler struct {
	service *Service
	catalog *Catalog
}

func NewHandler(service *Service, catalog *Catalog) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/exercise", handler.HandleLogExercise).Methods("POST", "OPTIONS").Name("log-exercise")
	mainRouter.HandleFunc("/exercise", handler.HandleLoggedSets).Methods("GET", "OPTIONS").Name("logged-sets")
	mainRouter.HandleFunc("/exercise/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")
	mainRouter.HandleFunc("/bodyparts", handler.HandleBodyParts).Methods("GET", "OPTIONS").Name("body-parts")
	mainRouter.HandleFunc("/exercises/{bodyPart}", handler.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")
	mainRouter.HandleFunc("/exercises/custom", handler.HandleAddCustomExercise).Methods("POST", "OPTIONS").Name("new-custom-exercise")
}

type LogExerciseRequest struct {
	Date         string  `json:"date"`
	BodyPart     string  `json:"bodyPart"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Sets         int     `json:"sets"`
}

func (handler *Handler) HandleLogExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.logExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var logReq LogExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&logReq); err != nil {
		log.Errorf("log exercise, unmarshal json params: %s", err)
		http.Error(w, "log exercise failed", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(dateLayout, logReq.Date)
	if err != nil {
		http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	addedSets, err := handler.service.LogExercise(ctx, LogExerciseParams{
		UserID:       userID,
		Date:         date,
		BodyPart:     logReq.BodyPart,
		ExerciseName: logReq.ExerciseName,
		Weight:       logReq.Weight,
		Reps:         logReq.Reps,
		SetsCount:    logReq.Sets,
	})
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrBodyPartNotFound):
			http.Error(w, "body part not found", http.StatusNotFound)
		default:
			log.Errorf("failed to log exercise [%s] for user %d: %s", logReq.ExerciseName, userID, err)
			http.Error(w, "error, failed to log exercise", http.StatusInternalServerError)
		}
		return
	}

	addedSetsJson, err := json.Marshal(addedSets)
	if err != nil {
		log.Errorf("failed to marshal logged sets: %s", err)
		http.Error(w, "error, failed to log exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetsJson, http.StatusCreated)
}

func (handler *Handler) HandleLoggedSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.loggedSets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().Format(dateLayout)
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	sets, err := handler.service.LoggedSets(ctx, userID, date)
	if err != nil {
		log.Errorf("get logged sets for user %d: %s", userID, err)
		http.Error(w, "failed to get logged sets", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoggedSetsResponse{
		Date: dateStr,
		Sets: sets,
	})
	if err != nil {
		log.Errorf("marshal logged sets error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSet")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteLoggedSet(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete set %d for user %d: %s", id, userID, err)
		http.Error(w, "set not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSetResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleBodyParts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.bodyParts")
	defer span.End()

	bodyParts, err := handler.catalog.BodyParts(ctx)
	if err != nil {
		log.Errorf("get body parts: %s", err)
		http.Error(w, "failed to get body parts", http.StatusInternalServerError)
		return
	}

	bodyPartsJson, err := json.Marshal(bodyParts)
	if err != nil {
		log.Errorf("marshal body parts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bodyPartsJson, http.StatusOK)
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	bodyPart := mux.Vars(r)["bodyPart"]
	if bodyPart == "" {
		http.Error(w, "error, body part empty", http.StatusBadRequest)
		return
	}

	standard, err := handler.catalog.StandardExercises(ctx, bodyPart)
	if err != nil {
		if errors.Is(err, ErrBodyPartNotFound) {
			http.Error(w, "body part not found", http.StatusNotFound)
			return
		}
		log.Errorf("get standard exercises for [%s]: %s", bodyPart, err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	custom, err := handler.catalog.CustomExercises(ctx, userID, bodyPart)
	if err != nil {
		log.Errorf("get custom exercises for [%s], user %d: %s", bodyPart, userID, err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ExercisesResponse{
		BodyPart: bodyPart,
		Standard: standard,
		Custom:   custom,
	})
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

type AddCustomExerciseRequest struct {
	Name     string `json:"name"`
	BodyPart string `json:"bodyPart"`
}

func (handler *Handler) HandleAddCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addCustomExercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var addReq AddCustomExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Errorf("add custom exercise, unmarshal json params: %s", err)
		http.Error(w, "add custom exercise failed", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddCustomExercise(ctx, userID, addReq.Name, addReq.BodyPart)
	if err != nil {
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrBodyPartNotFound):
			http.Error(w, "body part not found", http.StatusNotFound)
		case errors.Is(err, ErrCustomExerciseConflict):
			http.Error(w, "custom exercise already exists", http.StatusConflict)
		default:
			log.Errorf("failed to add custom exercise [%s] for user %d: %s", addReq.Name, userID, err)
			http.Error(w, "error, failed to add custom exercise", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new custom exercise added: [%s] for user %d: %d", added.Name, userID, added.ID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal custom exercise: %s", err)
		http.Error(w, "error, failed to add custom exercise", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}
