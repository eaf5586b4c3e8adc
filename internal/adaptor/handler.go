package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Film *FilmHandler
	User *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Film: NewFilmHandler(service.Film, log),
		User: NewUserHandler(service.User, log),
	}
}

// parseID parses a positive integer path parameter.
func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return id, nil
}

// handleServiceError maps the service error kind to an HTTP status. Anything
// without a kind is a defect and surfaces as an opaque 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w)
	}
}
