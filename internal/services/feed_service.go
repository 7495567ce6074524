package services

import (
	"errors"

	"github.com/google/uuid"

	"solaced/internal/models"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrInvalidEmotion = errors.New("unknown emotion")
)

type FeedServiceInterface interface {
	CreatePost(p models.Post) (models.Post, error)
	Posts(limit int) []models.Post
	ToggleLike(postID, userID string) (bool, error)
	ToggleReaction(postID, userID string, emotion models.EmotionType) (bool, error)
	PostCount() int
	Snapshot() map[string]*models.Post
	Restore(data map[string]*models.Post)
}

type FeedService struct {
	store *models.PostStore
}

func NewFeedService() FeedServiceInterface {
	return &FeedService{store: models.NewPostStore()}
}

func (fs *FeedService) CreatePost(p models.Post) (models.Post, error) {
	if p.CreatedAt <= 0 {
		return models.Post{}, &models.ValidationError{Reason: "createdAt is not a valid instant"}
	}
	if p.Mood != "" && !p.Mood.Valid() {
		return models.Post{}, ErrInvalidMood
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	fs.store.Add(p)
	return p, nil
}

func (fs *FeedService) Posts(limit int) []models.Post {
	return fs.store.List(limit)
}

func (fs *FeedService) ToggleLike(postID, userID string) (bool, error) {
	liked, ok := fs.store.ToggleLike(postID, userID)
	if !ok {
		return false, ErrPostNotFound
	}
	return liked, nil
}

func (fs *FeedService) ToggleReaction(postID, userID string, emotion models.EmotionType) (bool, error) {
	if !emotion.Valid() {
		return false, ErrInvalidEmotion
	}
	reacted, ok := fs.store.ToggleReaction(postID, userID, emotion)
	if !ok {
		return false, ErrPostNotFound
	}
	return reacted, nil
}

func (fs *FeedService) PostCount() int {
	return fs.store.Len()
}

func (fs *FeedService) Snapshot() map[string]*models.Post {
	return fs.store.GetData()
}

func (fs *FeedService) Restore(data map[string]*models.Post) {
	fs.store.PutData(data)
}
