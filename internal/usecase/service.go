package usecase

import (
	"filmorate/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Film FilmService
	User UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Film: NewFilmService(repo, log),
		User: NewUserService(repo, log),
	}
}
