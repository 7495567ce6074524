package internal

import (
	"net/http"

	"solaced/internal/controllers"
	"solaced/internal/providers"
)

func InitRoutes(journal *controllers.JournalController, chat *controllers.ChatController, feed *controllers.FeedController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/journal", http.HandlerFunc(journal.AddEntry))
	routers.Get("/journal/streak", http.HandlerFunc(journal.GetStreak))
	routers.Get("/journal/entries", http.HandlerFunc(journal.GetEntries))
	routers.Get("/connect", http.HandlerFunc(journal.GetSuggestions))

	routers.Post("/chat", http.HandlerFunc(chat.CreateConversation))
	routers.Post("/chat/message", http.HandlerFunc(chat.PostMessage))
	routers.Get("/chat/messages", http.HandlerFunc(chat.GetMessages))
	routers.Get("/chat/retention", http.HandlerFunc(chat.GetRetention))
	routers.Post("/chat/retention", http.HandlerFunc(chat.SetRetention))
	routers.Get("/chat/retention/options", http.HandlerFunc(chat.GetRetentionOptions))

	routers.Post("/feed", http.HandlerFunc(feed.CreatePost))
	routers.Get("/feed", http.HandlerFunc(feed.GetFeed))
	routers.Post("/feed/like", http.HandlerFunc(feed.ToggleLike))
	routers.Post("/feed/react", http.HandlerFunc(feed.ToggleReaction))

	return routers
}
