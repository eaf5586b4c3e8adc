package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultPopularCount = 10

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// GetFilms handles GET /films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetFilms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get films")
		return
	}

	utils.ResponseSuccess(w, films)
}

// GetFilmByID handles GET /films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid film id: "+err.Error())
		return
	}

	film, err := h.service.GetFilmByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get film by ID")
		return
	}

	utils.ResponseSuccess(w, film)
}

// GetPopularFilms handles GET /films/popular?count=N
func (h *FilmHandler) GetPopularFilms(w http.ResponseWriter, r *http.Request) {
	count := defaultPopularCount
	if value := r.URL.Query().Get("count"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			utils.ResponseBadRequest(w, "count parameter must be a number")
			return
		}
		count = parsed
	}

	films, err := h.service.GetPopularFilms(r.Context(), count)
	if err != nil {
		handleServiceError(w, h.log, err, "get popular films")
		return
	}

	utils.ResponseSuccess(w, films)
}

// CreateFilm handles POST /films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create film")
		return
	}

	utils.ResponseCreated(w, film)
}

// UpdateFilm handles PUT /films (full update by embedded id)
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update film")
		return
	}

	utils.ResponseSuccess(w, film)
}

// PatchFilm handles PATCH /films (partial update by embedded id)
func (h *FilmHandler) PatchFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	film, err := h.service.PatchFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch film")
		return
	}

	utils.ResponseSuccess(w, film)
}

// AddLike handles PUT /films/{id}/like/{userId}
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := h.likeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.AddLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "add like")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, userID, ok := h.likeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "remove like")
		return
	}

	utils.ResponseSuccess(w, nil)
}

func (h *FilmHandler) likeParams(w http.ResponseWriter, r *http.Request) (filmID, userID int64, ok bool) {
	filmID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid film id: "+err.Error())
		return 0, 0, false
	}

	userID, err = parseID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid user id: "+err.Error())
		return 0, 0, false
	}
	return filmID, userID, true
}
