package models

import (
	"sort"
	"sync"
)

type PostStore struct {
	mu   sync.RWMutex
	data map[string]*Post
}

func NewPostStore() *PostStore {
	return &PostStore{data: make(map[string]*Post)}
}

func (s *PostStore) Add(p Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[p.ID]; exists {
		return false
	}
	if p.Reactions == nil {
		p.Reactions = make(map[EmotionType][]string)
	}
	s.data[p.ID] = &p
	return true
}

func (s *PostStore) Get(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[id]
	if !ok {
		return Post{}, false
	}
	return copyPost(p), true
}

// List returns posts newest first.
func (s *PostStore) List(limit int) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]Post, 0, len(s.data))
	for _, p := range s.data {
		posts = append(posts, copyPost(p))
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts
}

// ToggleLike flips the user's like on a post. Returns whether the post
// is now liked by the user and whether the post exists.
func (s *PostStore) ToggleLike(postID, userID string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data[postID]
	if !ok {
		return false, false
	}
	for i, uid := range p.LikedBy {
		if uid == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			return false, true
		}
	}
	p.LikedBy = append(p.LikedBy, userID)
	return true, true
}

// ToggleReaction flips the user's emotion reaction. Picking the emotion
// already held removes it; picking another one moves the user there, so
// at most one emotion per (user, post) is ever active.
func (s *PostStore) ToggleReaction(postID, userID string, emotion EmotionType) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.data[postID]
	if !ok {
		return false, false
	}

	had := removeReaction(p, userID, emotion)
	if had {
		return false, true
	}
	for _, em := range Emotions {
		removeReaction(p, userID, em)
	}
	p.Reactions[emotion] = append(p.Reactions[emotion], userID)
	return true, true
}

func removeReaction(p *Post, userID string, emotion EmotionType) bool {
	users := p.Reactions[emotion]
	for i, uid := range users {
		if uid == userID {
			p.Reactions[emotion] = append(users[:i], users[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *PostStore) GetData() map[string]*Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]*Post, len(s.data))
	for id, p := range s.data {
		cp := copyPost(p)
		result[id] = &cp
	}
	return result
}

func (s *PostStore) PutData(data map[string]*Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]*Post, len(data))
	for id, p := range data {
		if id == "" || p == nil {
			continue
		}
		if p.Reactions == nil {
			p.Reactions = make(map[EmotionType][]string)
		}
		s.data[id] = p
	}
}

func copyPost(p *Post) Post {
	cp := *p
	cp.LikedBy = append([]string(nil), p.LikedBy...)
	cp.Reactions = make(map[EmotionType][]string, len(p.Reactions))
	for em, users := range p.Reactions {
		cp.Reactions[em] = append([]string(nil), users...)
	}
	return cp
}
