package postgres

import (
	"context"
	"fmt"

	"filmorate/pkg/database"

	"go.uber.org/zap"
)

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func newLikeRepository(db database.PgxIface, log *zap.Logger) *likeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := `
		INSERT INTO film_likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to add like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("add like: %w", err)
	}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.Int64("film_id", filmID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("remove like: %w", err)
	}
	return nil
}

func (r *likeRepository) FilmLikes(ctx context.Context, filmID int64) ([]int64, error) {
	query := `SELECT user_id FROM film_likes WHERE film_id = $1 ORDER BY user_id`

	rows, err := r.db.Query(ctx, query, filmID)
	if err != nil {
		return nil, fmt.Errorf("find likes: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return ids, nil
}

func (r *likeRepository) Counts(ctx context.Context) (map[int64]int, error) {
	query := `SELECT film_id, COUNT(*) FROM film_likes GROUP BY film_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var filmID int64
		var count int
		if err := rows.Scan(&filmID, &count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[filmID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate like counts: %w", err)
	}
	return counts, nil
}
