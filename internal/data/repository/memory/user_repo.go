package memory

import (
	"context"

	"filmorate/internal/data/entity"

	"go.uber.org/zap"
)

type userRepository struct {
	users *table[entity.User]
	log   *zap.Logger
}

func newUserRepository(log *zap.Logger) *userRepository {
	return &userRepository{
		users: newTable(
			func(u entity.User) string { return u.Email },
			func(u entity.User) int64 { return u.ID },
			func(u entity.User, id int64) entity.User { u.ID = id; return u },
		),
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	rows := r.users.all()

	users := make([]*entity.User, len(rows))
	for i := range rows {
		users[i] = &rows[i]
	}
	return users, nil
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	created := r.users.create(*user)

	r.log.Debug("User stored",
		zap.Int64("user_id", created.ID),
		zap.String("email", created.Email),
	)
	return &created, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	updated, err := r.users.update(*user)
	if err != nil {
		return nil, err
	}

	r.log.Debug("User updated", zap.Int64("user_id", updated.ID))
	return &updated, nil
}

func (r *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.users.existsByKey(email), nil
}
