package handler

import (
	"parttimepro/internal/config"
	"parttimepro/internal/service"
	"parttimepro/pkg/logger"
)

type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	User    *UserHandler
	Profile *ProfileHandler
	Message *MessageHandler
}

func NewHandlers(services *service.Services, cfg *config.Config, log logger.Logger) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(cfg),
		Auth:    NewAuthHandler(services.Auth, log),
		User:    NewUserHandler(services.Profile, log),
		Profile: NewProfileHandler(services.Profile, cfg.Uploads, log),
		Message: NewMessageHandler(services.Message, log),
	}
}
