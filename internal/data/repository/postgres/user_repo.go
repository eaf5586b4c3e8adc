package postgres

import (
	"context"
	"fmt"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func newUserRepository(db database.PgxIface, log *zap.Logger) *userRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, email, login, name, birthday`

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, login, name, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := *user
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Login,
		user.Name,
		nullableDate(user.Birthday),
	).Scan(&created.ID)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &created, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users
		SET email = $2, login = $3, name = $4, birthday = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Login,
		user.Name,
		nullableDate(user.Birthday),
	)

	if err != nil {
		r.log.Error("Failed to update user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return nil, fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		r.log.Error("Failed to check user email", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	var birthday *time.Time

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Login,
		&user.Name,
		&birthday,
	)
	if err != nil {
		return nil, err
	}

	if birthday != nil {
		user.Birthday = *birthday
	}
	return &user, nil
}

func nullableDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
