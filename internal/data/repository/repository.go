package repository

import (
	"context"
	"errors"

	"filmorate/internal/data/entity"
)

var (
	// ErrNotFound is returned by Update when the entity id is not present in
	// the store. FindByID reports absence with a (nil, nil) pair instead, the
	// way the lookup is consumed by the services.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyFriends is returned by FriendshipRepository.Add when the pair
	// is already linked.
	ErrAlreadyFriends = errors.New("already friends")
)

// FilmRepository is the film entity store: primary id map plus a uniqueness
// index on the film name. Uniqueness conflicts are checked by the service
// layer before any mutating call; the store only keeps the index in sync.
type FilmRepository interface {
	FindAll(ctx context.Context) ([]*entity.Film, error)
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	Create(ctx context.Context, film *entity.Film) (*entity.Film, error)
	Update(ctx context.Context, film *entity.Film) (*entity.Film, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// UserRepository is the user entity store with a uniqueness index on email.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// LikeRepository owns the film -> liked-user-id relation.
// Add and Remove are idempotent.
type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) error
	Remove(ctx context.Context, filmID, userID int64) error
	FilmLikes(ctx context.Context, filmID int64) ([]int64, error)
	Counts(ctx context.Context) (map[int64]int, error)
}

// FriendshipRepository owns the symmetric user <-> user relation. Both
// directions of a link are mutated as a single atomic step; the one-sided
// mutations are never exposed.
type FriendshipRepository interface {
	Add(ctx context.Context, userID, friendID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	Friends(ctx context.Context, userID int64) ([]int64, error)
	Common(ctx context.Context, userID, otherID int64) ([]int64, error)
}

type Repository struct {
	Film       FilmRepository
	User       UserRepository
	Like       LikeRepository
	Friendship FriendshipRepository
}
