package memory

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/data/repository"

	"go.uber.org/zap"
)

type friendshipRepository struct {
	mu      sync.RWMutex
	friends map[int64]map[int64]struct{} // user id -> set of friend ids
	log     *zap.Logger
}

func newFriendshipRepository(log *zap.Logger) *friendshipRepository {
	return &friendshipRepository{
		friends: make(map[int64]map[int64]struct{}),
		log:     log.With(zap.String("repository", "friendship")),
	}
}

// Add links both directions under one lock, so the symmetric pair is observed
// as a single step. Either both inserts happen or, on ErrAlreadyFriends,
// neither.
func (r *friendshipRepository) Add(_ context.Context, userID, friendID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.friends[userID][friendID]; ok {
		return repository.ErrAlreadyFriends
	}

	r.linkLocked(userID, friendID)
	r.linkLocked(friendID, userID)

	r.log.Debug("Friendship added",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

// Remove unlinks both directions. Removing an absent friendship is a no-op.
func (r *friendshipRepository) Remove(_ context.Context, userID, friendID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.friends[userID], friendID)
	delete(r.friends[friendID], userID)
	return nil
}

// Friends returns the friend ids of a user sorted ascending.
func (r *friendshipRepository) Friends(_ context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.friends[userID]))
	for id := range r.friends[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Common returns the sorted intersection of two friend sets.
func (r *friendshipRepository) Common(_ context.Context, userID, otherID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []int64
	for id := range r.friends[userID] {
		if _, ok := r.friends[otherID][id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *friendshipRepository) linkLocked(from, to int64) {
	set, ok := r.friends[from]
	if !ok {
		set = make(map[int64]struct{})
		r.friends[from] = set
	}
	set[to] = struct{}{}
}
