package memory

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type likeRepository struct {
	mu    sync.RWMutex
	likes map[int64]map[int64]struct{} // film id -> set of user ids
	log   *zap.Logger
}

func newLikeRepository(log *zap.Logger) *likeRepository {
	return &likeRepository{
		likes: make(map[int64]map[int64]struct{}),
		log:   log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Add(_ context.Context, filmID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likes[filmID]
	if !ok {
		set = make(map[int64]struct{})
		r.likes[filmID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *likeRepository) Remove(_ context.Context, filmID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes[filmID], userID)
	return nil
}

// FilmLikes returns the liking user ids sorted ascending.
func (r *likeRepository) FilmLikes(_ context.Context, filmID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.likes[filmID]))
	for id := range r.likes[filmID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *likeRepository) Counts(_ context.Context) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[int64]int, len(r.likes))
	for filmID, set := range r.likes {
		counts[filmID] = len(set)
	}
	return counts, nil
}
