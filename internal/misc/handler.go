package misc

import (
	"encoding/json"
	"net/http"

	"github.com/fitdiary/backend/internal/telemetry/tracing"
	"github.com/fitdiary/backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	quotesManager *QuotesManager
	versionInfo   string
}

func NewHandler(quotesManager *QuotesManager, versionInfo string) *Handler {
	return &Handler{
		quotesManager: quotesManager,
		versionInfo:   versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/quote/random", handler.handleGetRandomQuote).Methods("GET").Name("quote")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetRandomQuote(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.quote")
	defer span.End()

	genre := r.URL.Query().Get("genre")

	var q *Quote
	if genre != "" {
		q = handler.quotesManager.RandomQuoteForGenre(genre)
	} else {
		q = handler.quotesManager.RandomQuote()
	}

	qBytes, err := json.Marshal(q)
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
		log.Errorf("marshal quote error: %s", err)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, qBytes)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.versionInfo")
	defer span.End()

	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
