package main

import (
	"log"

	"channa-relay/config"
	"channa-relay/internal/completion"
	"channa-relay/internal/handler"
	"channa-relay/internal/identity"
	"channa-relay/internal/server"
	"channa-relay/internal/services"
	"channa-relay/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	l := logger.New(cfg.LogMode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	authService := services.NewAuthService(identity.NewClient(cfg.Auth), l)
	chatService := services.NewChatService(completion.NewClient(cfg.Completion), cfg.Completion, l)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Chat: handler.NewChatHandler(chatService),
	})

	l.Infof("Relaying chat to %s using model %s", cfg.Completion.BaseURL, cfg.Completion.Model)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %s", err)
	}
}
