package adaptor

import (
	"encoding/json"
	"net/http"

	"filmorate/internal/dto/request"
	"filmorate/internal/usecase"
	"filmorate/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid user id: "+err.Error())
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user by ID")
		return
	}

	utils.ResponseSuccess(w, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, user)
}

// UpdateUser handles PUT /users (full update by embedded id)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// PatchUser handles PATCH /users (partial update by embedded id)
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}

	user, err := h.service.PatchUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// AddFriend handles PUT /users/{id}/friends/{friendId}
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := h.friendParams(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.service.AddFriends(r.Context(), userID, friendID); err != nil {
		handleServiceError(w, h.log, err, "add friend")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, friendID, ok := h.friendParams(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.service.RemoveFriends(r.Context(), userID, friendID); err != nil {
		handleServiceError(w, h.log, err, "remove friend")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// GetFriends handles GET /users/{id}/friends
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid user id: "+err.Error())
		return
	}

	friends, err := h.service.GetFriends(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get friends")
		return
	}

	utils.ResponseSuccess(w, friends)
}

// GetCommonFriends handles GET /users/{id}/common/{otherId}
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	userID, otherID, ok := h.friendParams(w, r, "otherId")
	if !ok {
		return
	}

	friends, err := h.service.GetCommonFriends(r.Context(), userID, otherID)
	if err != nil {
		handleServiceError(w, h.log, err, "get common friends")
		return
	}

	utils.ResponseSuccess(w, friends)
}

func (h *UserHandler) friendParams(w http.ResponseWriter, r *http.Request, param string) (userID, otherID int64, ok bool) {
	userID, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid user id: "+err.Error())
		return 0, 0, false
	}

	otherID, err = parseID(chi.URLParam(r, param))
	if err != nil {
		utils.ResponseBadRequest(w, "invalid user id: "+err.Error())
		return 0, 0, false
	}
	return userID, otherID, true
}
