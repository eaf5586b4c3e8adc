package postgres

import (
	"context"
	"fmt"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func newFilmRepository(db database.PgxIface, log *zap.Logger) *filmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

const filmColumns = `id, name, description, release_date, duration, genres, mpa`

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all films", zap.Error(err))
		return nil, fmt.Errorf("find films: %w", err)
	}
	defer rows.Close()

	var films []*entity.Film
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			r.log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("scan film: %w", err)
		}
		films = append(films, film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}
	return films, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = $1`

	film, err := scanFilm(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("find film: %w", err)
	}
	return film, nil
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) (*entity.Film, error) {
	query := `
		INSERT INTO films (name, description, release_date, duration, genres, mpa)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	created := *film
	err := r.db.QueryRow(ctx, query,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		genresOrEmpty(film.Genres),
		film.MPA,
	).Scan(&created.ID)

	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("name", film.Name),
		)
		return nil, fmt.Errorf("create film: %w", err)
	}

	return &created, nil
}

func (r *filmRepository) Update(ctx context.Context, film *entity.Film) (*entity.Film, error) {
	query := `
		UPDATE films
		SET name = $2, description = $3, release_date = $4, duration = $5,
		    genres = $6, mpa = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		film.ID,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		genresOrEmpty(film.Genres),
		film.MPA,
	)

	if err != nil {
		r.log.Error("Failed to update film",
			zap.Error(err),
			zap.Int64("film_id", film.ID),
		)
		return nil, fmt.Errorf("update film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return film, nil
}

func (r *filmRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM films WHERE name = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		r.log.Error("Failed to check film name", zap.Error(err), zap.String("name", name))
		return false, fmt.Errorf("check film name: %w", err)
	}
	return exists, nil
}

// genres column is NOT NULL, a nil slice must go in as an empty array
func genresOrEmpty(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}

func scanFilm(row pgx.Row) (*entity.Film, error) {
	var film entity.Film
	var mpa *string

	err := row.Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.Genres,
		&mpa,
	)
	if err != nil {
		return nil, err
	}

	if mpa != nil {
		rating := entity.MPARating(*mpa)
		film.MPA = &rating
	}
	return &film, nil
}
