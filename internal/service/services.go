package service

import (
	"parttimepro/internal/config"
	"parttimepro/internal/repository"
	"parttimepro/pkg/logger"
)

type Services struct {
	Auth      AuthService
	Profile   ProfileService
	Message   MessageService
	RateLimit RateLimitService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, cfg.JWT, log),
		Profile:   NewProfileService(repos.Profile, log),
		Message:   NewMessageService(repos.Message, repos.User, repos.Profile, log),
		RateLimit: NewRateLimitService(repos.RateLimit, log),
	}
}
