package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"solaced/internal/services"
)

type HealthController struct {
	journal   services.JournalServiceInterface
	chat      services.ChatServiceInterface
	feed      services.FeedServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	JournalUsers  int     `json:"journal_users"`
	Entries       int     `json:"journal_entries"`
	Conversations int     `json:"conversations"`
	Messages      int     `json:"messages"`
	Posts         int     `json:"posts"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		JournalUsers:  hc.journal.UserCount(),
		Entries:       hc.journal.EntryCount(),
		Conversations: hc.chat.ConversationCount(),
		Messages:      hc.chat.MessageCount(),
		Posts:         hc.feed.PostCount(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(journal services.JournalServiceInterface, chat services.ChatServiceInterface, feed services.FeedServiceInterface) *HealthController {
	return &HealthController{
		journal:   journal,
		chat:      chat,
		feed:      feed,
		startTime: time.Now(),
	}
}
