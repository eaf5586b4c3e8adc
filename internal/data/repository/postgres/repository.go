// Package postgres implements the storage layer on top of a pgx connection
// pool. It is the opt-in persistent backend (STORAGE_DRIVER=postgres).
package postgres

import (
	"context"
	"fmt"

	"filmorate/internal/data/repository"
	"filmorate/pkg/database"

	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS films (
	id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name         TEXT    NOT NULL UNIQUE,
	description  TEXT,
	release_date DATE    NOT NULL,
	duration     INT     NOT NULL,
	genres       TEXT[]  NOT NULL DEFAULT '{}',
	mpa          TEXT
);

CREATE TABLE IF NOT EXISTS users (
	id       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	email    TEXT NOT NULL UNIQUE,
	login    TEXT NOT NULL,
	name     TEXT NOT NULL,
	birthday DATE
);

CREATE TABLE IF NOT EXISTS film_likes (
	film_id BIGINT NOT NULL REFERENCES films (id),
	user_id BIGINT NOT NULL REFERENCES users (id),
	PRIMARY KEY (film_id, user_id)
);

CREATE TABLE IF NOT EXISTS friendships (
	user_id   BIGINT NOT NULL REFERENCES users (id),
	friend_id BIGINT NOT NULL REFERENCES users (id),
	PRIMARY KEY (user_id, friend_id)
);
`

func NewRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (*repository.Repository, error) {
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &repository.Repository{
		Film:       newFilmRepository(db, log),
		User:       newUserRepository(db, log),
		Like:       newLikeRepository(db, log),
		Friendship: newFriendshipRepository(db, log),
	}, nil
}
