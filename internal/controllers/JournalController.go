package controllers

import (
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"github.com/spf13/cast"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/services"
)

type JournalController struct {
	logger  providers.Logger
	journal services.JournalServiceInterface
	match   services.MatchServiceInterface
	cache   providers.CacheProviderInterface
}

func NewJournalController(logger providers.Logger, journal services.JournalServiceInterface, match services.MatchServiceInterface, cache providers.CacheProviderInterface) *JournalController {
	return &JournalController{
		logger:  logger,
		journal: journal,
		match:   match,
		cache:   cache,
	}
}

func getUser(r *http.Request) string {
	return r.URL.Query().Get("u")
}

func getLimit(r *http.Request) int {
	return cast.ToInt(r.URL.Query().Get("limit"))
}

func (jc *JournalController) AddEntry(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.JournalEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	v := validate.Struct(payload)
	if !v.Validate() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": v.Errors.One()})
		return
	}

	entry, err := jc.journal.AddEntry(payload)
	if err != nil {
		jc.logger.Debugf(providers.TypePost, "Rejected journal entry for %s: %s", payload.UserID, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (jc *JournalController) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID := getUser(r)
	if userID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	serveFromCacheOrCompute(w, jc.cache, "streak:"+userID, func() (any, error) {
		return jc.journal.Streak(userID, time.Now())
	})
}

func (jc *JournalController) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID := getUser(r)
	if userID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	limit := getLimit(r)
	serveFromCacheOrCompute(w, jc.cache, "entries:"+userID+":"+strconv.Itoa(limit), func() (any, error) {
		return jc.journal.Entries(userID, limit), nil
	})
}

func (jc *JournalController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := getUser(r)
	if userID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	serveFromCacheOrCompute(w, jc.cache, "connect:"+userID, func() (any, error) {
		return jc.match.Suggestions(userID), nil
	})
}
