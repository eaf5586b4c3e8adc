package postgres

import (
	"context"
	"fmt"

	"filmorate/internal/data/repository"
	"filmorate/pkg/database"

	"go.uber.org/zap"
)

type friendshipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func newFriendshipRepository(db database.PgxIface, log *zap.Logger) *friendshipRepository {
	return &friendshipRepository{
		db:  db,
		log: log.With(zap.String("repository", "friendship")),
	}
}

// Add inserts both directions of the link in one transaction so the pair is
// never observed half-linked.
func (r *friendshipRepository) Add(ctx context.Context, userID, friendID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM friendships WHERE user_id = $1 AND friend_id = $2)`
	if err := tx.QueryRow(ctx, checkQuery, userID, friendID).Scan(&exists); err != nil {
		return fmt.Errorf("check friendship: %w", err)
	}
	if exists {
		return repository.ErrAlreadyFriends
	}

	insertQuery := `INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2), ($2, $1)`
	if _, err := tx.Exec(ctx, insertQuery, userID, friendID); err != nil {
		r.log.Error("Failed to add friendship",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("add friendship: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *friendshipRepository) Remove(ctx context.Context, userID, friendID int64) error {
	query := `
		DELETE FROM friendships
		WHERE (user_id = $1 AND friend_id = $2)
		   OR (user_id = $2 AND friend_id = $1)
	`

	if _, err := r.db.Exec(ctx, query, userID, friendID); err != nil {
		r.log.Error("Failed to remove friendship",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("friend_id", friendID),
		)
		return fmt.Errorf("remove friendship: %w", err)
	}
	return nil
}

func (r *friendshipRepository) Friends(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT friend_id FROM friendships WHERE user_id = $1 ORDER BY friend_id`
	return r.queryIDs(ctx, query, userID)
}

func (r *friendshipRepository) Common(ctx context.Context, userID, otherID int64) ([]int64, error) {
	query := `
		SELECT a.friend_id
		FROM friendships a
		JOIN friendships b ON a.friend_id = b.friend_id
		WHERE a.user_id = $1 AND b.user_id = $2
		ORDER BY a.friend_id
	`
	return r.queryIDs(ctx, query, userID, otherID)
}

func (r *friendshipRepository) queryIDs(ctx context.Context, query string, args ...any) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find friendships: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan friendship: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate friendships: %w", err)
	}
	return ids, nil
}
