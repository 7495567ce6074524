package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// statusForError maps service errors onto HTTP status codes. Malformed
// timestamps are the caller's data-quality problem, not ours, hence 422.
func statusForError(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrConversationNotFound),
		errors.Is(err, services.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidTier),
		errors.Is(err, services.ErrInvalidEmotion),
		errors.Is(err, services.ErrNoParticipants):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func serveFromCacheOrCompute(w http.ResponseWriter, cache providers.CacheProviderInterface, cacheKey string, compute func() (any, error)) {
	if data, ok := cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
