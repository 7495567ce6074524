package controllers

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/services"
)

type FeedController struct {
	logger providers.Logger
	feed   services.FeedServiceInterface
	cache  providers.CacheProviderInterface
}

func NewFeedController(logger providers.Logger, feed services.FeedServiceInterface, cache providers.CacheProviderInterface) *FeedController {
	return &FeedController{
		logger: logger,
		feed:   feed,
		cache:  cache,
	}
}

func (fc *FeedController) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.Post
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	v := validate.Struct(payload)
	if !v.Validate() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": v.Errors.One()})
		return
	}

	post, err := fc.feed.CreatePost(payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func (fc *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := getLimit(r)
	serveFromCacheOrCompute(w, fc.cache, "feed:"+strconv.Itoa(limit), func() (any, error) {
		return fc.feed.Posts(limit), nil
	})
}

type likeRequest struct {
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}

func (fc *FeedController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload likeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	liked, err := fc.feed.ToggleLike(payload.PostID, payload.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

type reactionRequest struct {
	PostID  string             `json:"postId"`
	UserID  string             `json:"userId"`
	Emotion models.EmotionType `json:"emotion"`
}

func (fc *FeedController) ToggleReaction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload reactionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	reacted, err := fc.feed.ToggleReaction(payload.PostID, payload.UserID, payload.Emotion)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reacted": reacted})
}
