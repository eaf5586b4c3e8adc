// Package memory implements the storage layer with in-process maps. It is the
// default backend: state lives for the lifetime of the process only.
package memory

import (
	"filmorate/internal/data/repository"

	"go.uber.org/zap"
)

func NewRepository(log *zap.Logger) *repository.Repository {
	return &repository.Repository{
		Film:       newFilmRepository(log),
		User:       newUserRepository(log),
		Like:       newLikeRepository(log),
		Friendship: newFriendshipRepository(log),
	}
}
