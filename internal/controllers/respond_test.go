package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"solaced/internal/models"
	"solaced/internal/services"
	"solaced/internal/testutil"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&models.ValidationError{Reason: "bad instant"}, http.StatusUnprocessableEntity},
		{services.ErrConversationNotFound, http.StatusNotFound},
		{services.ErrPostNotFound, http.StatusNotFound},
		{services.ErrInvalidMood, http.StatusBadRequest},
		{services.ErrInvalidTier, http.StatusBadRequest},
		{services.ErrInvalidEmotion, http.StatusBadRequest},
		{services.ErrNoParticipants, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, statusForError(c.err), c.err.Error())
	}
}

func TestServeFromCacheOrCompute(t *testing.T) {
	cache := testutil.NewMockCache()

	rec := httptest.NewRecorder()
	calls := 0
	serveFromCacheOrCompute(rec, cache, "k", func() (any, error) {
		calls++
		return map[string]int{"n": 1}, nil
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
	assert.Equal(t, 1, calls)

	// second hit comes from the cache, compute is not called again
	rec = httptest.NewRecorder()
	serveFromCacheOrCompute(rec, cache, "k", func() (any, error) {
		calls++
		return nil, nil
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
	assert.Equal(t, 1, calls)
}

func TestServeFromCacheOrCompute_Error(t *testing.T) {
	cache := testutil.NewMockCache()
	rec := httptest.NewRecorder()
	serveFromCacheOrCompute(rec, cache, "k", func() (any, error) {
		return nil, services.ErrPostNotFound
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// errors are never cached
	_, ok := cache.Get("k")
	assert.False(t, ok)
}
