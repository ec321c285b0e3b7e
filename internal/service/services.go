package service

import (
	"github.com/inotebook/server/internal/config"
	"github.com/inotebook/server/internal/repository"
)

type Services struct {
	Token *TokenService
	Auth  *AuthService
	Note  *NoteService
}

func NewServices(repos *repository.Repositories, mailer Mailer, cfg *config.Config) *Services {
	tokens := NewTokenService(cfg)
	return &Services{
		Token: tokens,
		Auth:  NewAuthService(repos.User, tokens, mailer, cfg),
		Note:  NewNoteService(repos.Note),
	}
}
