package usecase

import (
	"context"
	"testing"

	"filmorate/internal/data/repository"
	"filmorate/internal/data/repository/memory"
	"filmorate/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixture() (*repository.Repository, FilmService, UserService) {
	repo := memory.NewRepository(zap.NewNop())
	return repo, NewFilmService(repo, zap.NewNop()), NewUserService(repo, zap.NewNop())
}

func filmReq(name string) *request.FilmRequest {
	return &request.FilmRequest{
		Name:        name,
		ReleaseDate: "2000-01-01",
		Duration:    120,
	}
}

func TestCreateFilm_ReleaseDateBoundary(t *testing.T) {
	tests := []struct {
		name        string
		releaseDate string
		wantErr     bool
	}{
		{name: "day before the first screening", releaseDate: "1895-12-27", wantErr: true},
		{name: "day of the first screening", releaseDate: "1895-12-28", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc, _ := newFixture()

			req := filmReq("Arrival of a Train")
			req.ReleaseDate = tt.releaseDate

			_, err := svc.CreateFilm(context.Background(), req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateFilm_DuplicateName(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	_, err := svc.CreateFilm(ctx, filmReq("Alien"))
	require.NoError(t, err)
	_, err = svc.CreateFilm(ctx, filmReq("Aliens"))
	require.NoError(t, err)

	_, err = svc.CreateFilm(ctx, filmReq("Alien"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFilm_InvalidRequest(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	req := filmReq("")
	_, err := svc.CreateFilm(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	req = filmReq("Negative Duration")
	req.Duration = -5
	_, err = svc.CreateFilm(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateFilm_DeduplicatesGenres(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	req := filmReq("Heat")
	req.Genres = []string{"crime", "drama", "crime"}

	created, err := svc.CreateFilm(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"crime", "drama"}, created.Genres)
}

func TestUpdateFilm_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	_, err := svc.CreateFilm(ctx, filmReq("Solaris"))
	require.NoError(t, err)

	req := &request.FilmUpdateRequest{
		ID:          99,
		Name:        "Stalker",
		ReleaseDate: "1979-05-25",
		Duration:    162,
	}
	_, err = svc.UpdateFilm(ctx, req)
	assert.ErrorIs(t, err, ErrNotFound)

	films, err := svc.GetFilms(ctx)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "Solaris", films[0].Name)
}

func TestUpdateFilm_MissingID(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	req := &request.FilmUpdateRequest{
		Name:        "No ID",
		ReleaseDate: "2000-01-01",
		Duration:    90,
	}
	_, err := svc.UpdateFilm(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateFilm_RenameFreesName(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	created, err := svc.CreateFilm(ctx, filmReq("X"))
	require.NoError(t, err)

	_, err = svc.UpdateFilm(ctx, &request.FilmUpdateRequest{
		ID:          created.ID,
		Name:        "Y",
		ReleaseDate: "2000-01-01",
		Duration:    120,
	})
	require.NoError(t, err)

	// the old name must be reusable after the rename
	_, err = svc.CreateFilm(ctx, filmReq("X"))
	require.NoError(t, err)
}

func TestUpdateFilm_RenameToTakenName(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	_, err := svc.CreateFilm(ctx, filmReq("Taken"))
	require.NoError(t, err)
	created, err := svc.CreateFilm(ctx, filmReq("Renamable"))
	require.NoError(t, err)

	_, err = svc.UpdateFilm(ctx, &request.FilmUpdateRequest{
		ID:          created.ID,
		Name:        "Taken",
		ReleaseDate: "2000-01-01",
		Duration:    120,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPatchFilm_PartialOverwrite(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	created, err := svc.CreateFilm(ctx, filmReq("Original"))
	require.NoError(t, err)

	newName := "Patched"
	patched, err := svc.PatchFilm(ctx, &request.FilmPatchRequest{
		ID:   created.ID,
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Patched", patched.Name)
	assert.Equal(t, created.ReleaseDate, patched.ReleaseDate)
	assert.Equal(t, created.Duration, patched.Duration)
}

func TestPatchFilm_ReleaseDateRevalidatedOnlyWhenSupplied(t *testing.T) {
	ctx := context.Background()
	_, svc, _ := newFixture()

	created, err := svc.CreateFilm(ctx, filmReq("Metropolis"))
	require.NoError(t, err)

	tooEarly := "1890-01-01"
	_, err = svc.PatchFilm(ctx, &request.FilmPatchRequest{
		ID:          created.ID,
		ReleaseDate: &tooEarly,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// patch without a date does not re-validate it
	newDuration := 153
	_, err = svc.PatchFilm(ctx, &request.FilmPatchRequest{
		ID:       created.ID,
		Duration: &newDuration,
	})
	require.NoError(t, err)
}

func TestAddLike_Idempotent(t *testing.T) {
	ctx := context.Background()
	_, films, users := newFixture()

	film, err := films.CreateFilm(ctx, filmReq("Liked"))
	require.NoError(t, err)
	user, err := users.CreateUser(ctx, userReq("fan@example.com", "fan"))
	require.NoError(t, err)

	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))

	got, err := films.GetFilmByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{user.ID}, got.LikedUserIDs)
}

func TestAddLike_MissingEndpoints(t *testing.T) {
	ctx := context.Background()
	_, films, users := newFixture()

	film, err := films.CreateFilm(ctx, filmReq("Lonely"))
	require.NoError(t, err)
	user, err := users.CreateUser(ctx, userReq("u@example.com", "u"))
	require.NoError(t, err)

	assert.ErrorIs(t, films.AddLike(ctx, 99, user.ID), ErrNotFound)
	assert.ErrorIs(t, films.AddLike(ctx, film.ID, 99), ErrNotFound)
}

func TestRemoveLike(t *testing.T) {
	ctx := context.Background()
	_, films, users := newFixture()

	film, err := films.CreateFilm(ctx, filmReq("Unliked"))
	require.NoError(t, err)
	user, err := users.CreateUser(ctx, userReq("u@example.com", "u"))
	require.NoError(t, err)

	require.NoError(t, films.AddLike(ctx, film.ID, user.ID))
	require.NoError(t, films.RemoveLike(ctx, film.ID, user.ID))

	// removing an absent like stays a no-op
	require.NoError(t, films.RemoveLike(ctx, film.ID, user.ID))

	got, err := films.GetFilmByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LikedUserIDs)
}

func TestGetPopularFilms(t *testing.T) {
	ctx := context.Background()
	_, films, users := newFixture()

	filmA, err := films.CreateFilm(ctx, filmReq("A"))
	require.NoError(t, err)
	filmB, err := films.CreateFilm(ctx, filmReq("B"))
	require.NoError(t, err)
	filmC, err := films.CreateFilm(ctx, filmReq("C"))
	require.NoError(t, err)

	u1, err := users.CreateUser(ctx, userReq("one@example.com", "one"))
	require.NoError(t, err)
	u2, err := users.CreateUser(ctx, userReq("two@example.com", "two"))
	require.NoError(t, err)

	// A: 0 likes, B: 1 like, C: 2 likes
	require.NoError(t, films.AddLike(ctx, filmB.ID, u1.ID))
	require.NoError(t, films.AddLike(ctx, filmC.ID, u1.ID))
	require.NoError(t, films.AddLike(ctx, filmC.ID, u2.ID))

	popular, err := films.GetPopularFilms(ctx, 2)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, filmC.ID, popular[0].ID)
	assert.Equal(t, filmB.ID, popular[1].ID)

	// count larger than the catalog returns everything, zero-like films last
	popular, err = films.GetPopularFilms(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, filmA.ID, popular[2].ID)
}

func TestGetPopularFilms_TieBreakByAscendingID(t *testing.T) {
	ctx := context.Background()
	_, films, _ := newFixture()

	first, err := films.CreateFilm(ctx, filmReq("First"))
	require.NoError(t, err)
	second, err := films.CreateFilm(ctx, filmReq("Second"))
	require.NoError(t, err)

	popular, err := films.GetPopularFilms(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, first.ID, popular[0].ID)
	assert.Equal(t, second.ID, popular[1].ID)
}

func TestGetPopularFilms_NonPositiveCount(t *testing.T) {
	ctx := context.Background()
	_, films, _ := newFixture()

	_, err := films.GetPopularFilms(ctx, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = films.GetPopularFilms(ctx, -3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetFilmByID_NotFound(t *testing.T) {
	ctx := context.Background()
	_, films, _ := newFixture()

	_, err := films.GetFilmByID(ctx, 12)
	assert.ErrorIs(t, err, ErrNotFound)
}
