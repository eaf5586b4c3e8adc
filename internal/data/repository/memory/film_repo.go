package memory

import (
	"context"

	"filmorate/internal/data/entity"

	"go.uber.org/zap"
)

type filmRepository struct {
	films *table[entity.Film]
	log   *zap.Logger
}

func newFilmRepository(log *zap.Logger) *filmRepository {
	return &filmRepository{
		films: newTable(
			func(f entity.Film) string { return f.Name },
			func(f entity.Film) int64 { return f.ID },
			func(f entity.Film, id int64) entity.Film { f.ID = id; return f },
		),
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) FindAll(_ context.Context) ([]*entity.Film, error) {
	rows := r.films.all()

	films := make([]*entity.Film, len(rows))
	for i := range rows {
		films[i] = &rows[i]
	}
	return films, nil
}

func (r *filmRepository) FindByID(_ context.Context, id int64) (*entity.Film, error) {
	film, ok := r.films.get(id)
	if !ok {
		return nil, nil
	}
	return &film, nil
}

func (r *filmRepository) Create(_ context.Context, film *entity.Film) (*entity.Film, error) {
	created := r.films.create(*film)

	r.log.Debug("Film stored",
		zap.Int64("film_id", created.ID),
		zap.String("name", created.Name),
	)
	return &created, nil
}

func (r *filmRepository) Update(_ context.Context, film *entity.Film) (*entity.Film, error) {
	updated, err := r.films.update(*film)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Film updated", zap.Int64("film_id", updated.ID))
	return &updated, nil
}

func (r *filmRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	return r.films.existsByKey(name), nil
}
