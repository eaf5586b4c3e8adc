package usecase

import (
	"context"
	"sort"
	"time"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type FilmService interface {
	GetFilms(ctx context.Context) ([]response.FilmResponse, error)
	GetFilmByID(ctx context.Context, id int64) (*response.FilmResponse, error)
	GetPopularFilms(ctx context.Context, count int) ([]response.FilmResponse, error)
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, req *request.FilmUpdateRequest) (*response.FilmResponse, error)
	PatchFilm(ctx context.Context, req *request.FilmPatchRequest) (*response.FilmResponse, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
}

type filmService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFilmService(repo *repository.Repository, log *zap.Logger) FilmService {
	return &filmService{
		repo: repo,
		log:  log.With(zap.String("service", "film")),
	}
}

func (s *filmService) GetFilms(ctx context.Context) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, films)
}

func (s *filmService) GetFilmByID(ctx context.Context, id int64) (*response.FilmResponse, error) {
	film, err := s.findFilm(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, film)
}

// GetPopularFilms ranks films by like count descending. Ties are broken by
// ascending film id, which keeps the ordering deterministic.
func (s *filmService) GetPopularFilms(ctx context.Context, count int) ([]response.FilmResponse, error) {
	if count <= 0 {
		return nil, validationf("count parameter must be a positive number")
	}

	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Like.Counts(ctx)
	if err != nil {
		return nil, err
	}

	// FindAll returns films by ascending id; the stable sort preserves that
	// order among equal like counts.
	sort.SliceStable(films, func(i, j int) bool {
		return counts[films[i].ID] > counts[films[j].ID]
	})

	if count < len(films) {
		films = films[:count]
	}
	return s.toResponses(ctx, films)
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create film validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := s.parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Film.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		s.log.Warn("Duplicate film name", zap.String("name", req.Name))
		return nil, validationf("film %q already exists", req.Name)
	}

	film := &entity.Film{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
		Genres:      normalizeGenres(req.Genres),
		MPA:         toMPA(req.MPA),
	}

	created, err := s.repo.Film.Create(ctx, film)
	if err != nil {
		return nil, err
	}

	s.log.Info("Film created",
		zap.Int64("film_id", created.ID),
		zap.String("name", created.Name),
	)
	return s.toResponse(ctx, created)
}

// UpdateFilm is a full replace by the id embedded in the request body.
func (s *filmService) UpdateFilm(ctx context.Context, req *request.FilmUpdateRequest) (*response.FilmResponse, error) {
	if req.ID == 0 {
		return nil, validationf("id must be specified")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update film validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	old, err := s.findFilm(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	releaseDate, err := s.parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	if err := s.checkRename(ctx, old.Name, req.Name); err != nil {
		return nil, err
	}

	film := &entity.Film{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
		Genres:      normalizeGenres(req.Genres),
		MPA:         toMPA(req.MPA),
	}

	updated, err := s.repo.Film.Update(ctx, film)
	if err != nil {
		return nil, err
	}

	s.log.Info("Film updated", zap.Int64("film_id", updated.ID))
	return s.toResponse(ctx, updated)
}

// PatchFilm overwrites only the fields supplied in the request. Name
// uniqueness is re-checked only when the name actually changes, the release
// date floor only when a new date is supplied.
func (s *filmService) PatchFilm(ctx context.Context, req *request.FilmPatchRequest) (*response.FilmResponse, error) {
	if req.ID == 0 {
		return nil, validationf("id must be specified")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patch film validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	film, err := s.findFilm(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" && *req.Name != film.Name {
		if err := s.checkRename(ctx, film.Name, *req.Name); err != nil {
			return nil, err
		}
		film.Name = *req.Name
	}

	if req.ReleaseDate != nil {
		releaseDate, err := s.parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		film.ReleaseDate = releaseDate
	}

	if req.Description != nil && *req.Description != "" {
		film.Description = req.Description
	}

	if req.Duration != nil && *req.Duration > 0 {
		film.Duration = *req.Duration
	}

	if req.Genres != nil {
		film.Genres = normalizeGenres(req.Genres)
	}

	if req.MPA != nil {
		film.MPA = toMPA(req.MPA)
	}

	updated, err := s.repo.Film.Update(ctx, film)
	if err != nil {
		return nil, err
	}

	s.log.Info("Film patched", zap.Int64("film_id", updated.ID))
	return s.toResponse(ctx, updated)
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.resolveLikeEndpoints(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Add(ctx, filmID, userID); err != nil {
		return err
	}

	s.log.Info("Like added",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.resolveLikeEndpoints(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Remove(ctx, filmID, userID); err != nil {
		return err
	}

	s.log.Info("Like removed",
		zap.Int64("film_id", filmID),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *filmService) findFilm(ctx context.Context, id int64) (*entity.Film, error) {
	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if film == nil {
		return nil, notFoundf("film with id = %d not found", id)
	}
	return film, nil
}

// resolveLikeEndpoints confirms both the film and the user exist before the
// like relation is touched.
func (s *filmService) resolveLikeEndpoints(ctx context.Context, filmID, userID int64) error {
	if _, err := s.findFilm(ctx, filmID); err != nil {
		return err
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return notFoundf("user with id = %d not found", userID)
	}
	return nil
}

func (s *filmService) checkRename(ctx context.Context, oldName, newName string) error {
	if newName == oldName {
		return nil
	}

	exists, err := s.repo.Film.ExistsByName(ctx, newName)
	if err != nil {
		return err
	}
	if exists {
		s.log.Warn("Duplicate film name on rename", zap.String("name", newName))
		return validationf("film with name %q already exists", newName)
	}
	return nil
}

func (s *filmService) toResponse(ctx context.Context, film *entity.Film) (*response.FilmResponse, error) {
	likes, err := s.repo.Like.FilmLikes(ctx, film.ID)
	if err != nil {
		return nil, err
	}

	resp := response.FilmToResponse(film, likes)
	return &resp, nil
}

func (s *filmService) toResponses(ctx context.Context, films []*entity.Film) ([]response.FilmResponse, error) {
	responses := make([]response.FilmResponse, 0, len(films))
	for _, film := range films {
		resp, err := s.toResponse(ctx, film)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *filmService) parseReleaseDate(value string) (time.Time, error) {
	releaseDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, validationf("invalid release date: %s", value)
	}
	if releaseDate.Before(entity.EarliestReleaseDate) {
		s.log.Warn("Release date before the first film screening",
			zap.String("release_date", value),
		)
		return time.Time{}, validationf("release date cannot be earlier than 28 December 1895")
	}
	return releaseDate, nil
}

func normalizeGenres(genres []string) []string {
	if genres == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(genres))
	unique := make([]string, 0, len(genres))
	for _, genre := range genres {
		if _, ok := seen[genre]; ok {
			continue
		}
		seen[genre] = struct{}{}
		unique = append(unique, genre)
	}
	sort.Strings(unique)
	return unique
}

func toMPA(value *string) *entity.MPARating {
	if value == nil {
		return nil
	}
	rating := entity.MPARating(*value)
	return &rating
}
