package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"solaced/internal/models"
	"solaced/internal/providers"
	"solaced/internal/retention"
	"solaced/internal/services"
)

type ChatController struct {
	logger providers.Logger
	chat   services.ChatServiceInterface
	cache  providers.CacheProviderInterface
}

func NewChatController(logger providers.Logger, chat services.ChatServiceInterface, cache providers.CacheProviderInterface) *ChatController {
	return &ChatController{
		logger: logger,
		chat:   chat,
		cache:  cache,
	}
}

func getConversation(r *http.Request) string {
	return r.URL.Query().Get("c")
}

type createConversationRequest struct {
	Participants []string `json:"participants"`
	CreatedAt    int64    `json:"createdAt"`
}

func (cc *ChatController) CreateConversation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	conv, err := cc.chat.CreateConversation(payload.Participants, payload.CreatedAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conv)
}

type postMessageRequest struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Text           string `json:"text"`
	CreatedAt      int64  `json:"createdAt"`
}

func (cc *ChatController) PostMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	msg, err := cc.chat.AppendMessage(payload.ConversationID, models.Message{
		SenderID:  payload.SenderID,
		Text:      payload.Text,
		CreatedAt: payload.CreatedAt,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	convID := getConversation(r)
	if convID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	msgs, err := cc.chat.Messages(convID, getLimit(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

type retentionResponse struct {
	ConversationID string             `json:"conversationId"`
	Retention      retention.TierInfo `json:"retention"`
}

func (cc *ChatController) GetRetention(w http.ResponseWriter, r *http.Request) {
	convID := getConversation(r)
	if convID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	tier, err := cc.chat.Retention(convID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, retentionResponse{
		ConversationID: convID,
		Retention:      retention.Describe(tier),
	})
}

type setRetentionRequest struct {
	ConversationID string               `json:"conversationId"`
	Retention      models.RetentionTier `json:"retention"`
}

// SetRetention changes a conversation's tier. The new tier applies to
// future sweeps only; messages already purged stay purged.
func (cc *ChatController) SetRetention(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload setRetentionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := cc.chat.SetRetention(payload.ConversationID, payload.Retention); err != nil {
		writeError(w, err)
		return
	}
	cc.logger.Infof(providers.TypePost, "Conversation %s retention set to %s", payload.ConversationID, payload.Retention)
	writeJSON(w, http.StatusOK, retentionResponse{
		ConversationID: payload.ConversationID,
		Retention:      retention.Describe(payload.Retention),
	})
}

func (cc *ChatController) GetRetentionOptions(w http.ResponseWriter, r *http.Request) {
	serveFromCacheOrCompute(w, cc.cache, "retention:options", func() (any, error) {
		return retention.Tiers(), nil
	})
}
