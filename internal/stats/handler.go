package stats

import (
	"encoding/json"
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

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	statsRouter := mainRouter.PathPrefix("/stats").Subrouter()
	statsRouter.HandleFunc("/streak", handler.HandleStreak).Methods("GET", "OPTIONS").Name("streak")
	statsRouter.HandleFunc("/volume/weekly", handler.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("weekly-volume")
	statsRouter.HandleFunc("/volume/trend", handler.HandleVolumeTrend).Methods("GET", "OPTIONS").Name("volume-trend")
	statsRouter.HandleFunc("/progression/{exercise}", handler.HandleProgression).Methods("GET", "OPTIONS").Name("progression")
	statsRouter.HandleFunc("/prs/recent", handler.HandleRecentPRs).Methods("GET", "OPTIONS").Name("recent-prs")
	statsRouter.HandleFunc("/balance", handler.HandleBalance).Methods("GET", "OPTIONS").Name("balance")
	statsRouter.HandleFunc("/consistency", handler.HandleConsistency).Methods("GET", "OPTIONS").Name("consistency")
	statsRouter.HandleFunc("/distribution", handler.HandleDistribution).Methods("GET", "OPTIONS").Name("distribution")
	statsRouter.HandleFunc("/diversity", handler.HandleDiversity).Methods("GET", "OPTIONS").Name("diversity")
	statsRouter.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.streak")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// aggregation reads degrade to zero values instead of failing
	streak, err := handler.analyzer.Streak(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get streak for user %d: %s", userID, err)
		streak = 0
	}

	writeJSON(w, StreakResponse{Streak: streak})
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weeklyVolume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	volume, err := handler.analyzer.WeeklyVolume(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get weekly volume for user %d: %s", userID, err)
		volume = map[string]float64{}
	}

	writeJSON(w, volume)
}

func (handler *Handler) HandleVolumeTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.volumeTrend")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weeksBack := DefaultTrendWeeks
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		weeks, err := strconv.Atoi(weeksParam)
		if err != nil {
			http.Error(w, "error, weeks NaN", http.StatusBadRequest)
			return
		}
		weeksBack = weeks
	}

	trend, err := handler.analyzer.VolumeTrend(ctx, userID, time.Now(), weeksBack)
	if err != nil {
		log.Errorf("stats: get volume trend for user %d: %s", userID, err)
		trend = []VolumeTrendEntry{}
	}
	if trend == nil {
		trend = []VolumeTrendEntry{}
	}

	writeJSON(w, trend)
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progression")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseName := mux.Vars(r)["exercise"]
	if exerciseName == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	progression, err := handler.analyzer.Progression(ctx, userID, exerciseName)
	if err != nil {
		log.Errorf("stats: get progression of [%s] for user %d: %s", exerciseName, userID, err)
		progression = &Progression{ExerciseName: exerciseName}
	}

	writeJSON(w, progression)
}

func (handler *Handler) HandleRecentPRs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.recentPRs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	prs, err := handler.analyzer.RecentPRs(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get recent PRs for user %d: %s", userID, err)
	}
	if prs == nil {
		prs = []RecentPR{}
	}

	writeJSON(w, prs)
}

func (handler *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.balance")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	report, err := handler.analyzer.Balance(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get balance for user %d: %s", userID, err)
		report = &BalanceReport{}
	}

	writeJSON(w, report)
}

func (handler *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.consistency")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	consistency, err := handler.analyzer.Consistency(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get consistency for user %d: %s", userID, err)
		consistency = &Consistency{}
	}

	writeJSON(w, consistency)
}

func (handler *Handler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.distribution")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	distribution, err := handler.analyzer.BodyPartDistribution(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get body part distribution for user %d: %s", userID, err)
		distribution = &BodyPartDistribution{Percentages: map[string]float64{}}
	}

	writeJSON(w, distribution)
}

func (handler *Handler) HandleDiversity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.diversity")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	diversity, err := handler.analyzer.Diversity(ctx, userID, time.Now())
	if err != nil {
		log.Errorf("stats: get workout diversity for user %d: %s", userID, err)
		diversity = &WorkoutDiversity{}
	}

	writeJSON(w, diversity)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
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

	summary, err := handler.analyzer.Dashboard(ctx, userID, date)
	if err != nil {
		log.Errorf("stats: get dashboard for user %d: %s", userID, err)
		summary = &DashboardSummary{
			Date:      dateStr,
			Exercises: map[string][]ExerciseGroup{},
		}
	}

	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, payload any) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("stats: marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}
