package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"filmorate/internal/data/entity"
	"filmorate/internal/data/repository"
	"filmorate/internal/dto/request"
	"filmorate/internal/dto/response"
	"filmorate/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, req *request.UserUpdateRequest) (*response.UserResponse, error)
	PatchUser(ctx context.Context, req *request.UserPatchRequest) (*response.UserResponse, error)
	AddFriends(ctx context.Context, userID, friendID int64) error
	RemoveFriends(ctx context.Context, userID, friendID int64) error
	GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error)
	GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, users)
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, user)
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := validateLogin(req.Login); err != nil {
		return nil, err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.log.Warn("Duplicate email", zap.String("email", req.Email))
		return nil, validationf("email %q is already in use", req.Email)
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Login
	}

	user := &entity.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: birthday,
	}

	created, err := s.repo.User.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User created",
		zap.Int64("user_id", created.ID),
		zap.String("email", created.Email),
	)
	return s.toResponse(ctx, created)
}

// UpdateUser is a full replace by the id embedded in the request body. Email
// uniqueness is re-checked only when the email actually changes.
func (s *userService) UpdateUser(ctx context.Context, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if req.ID == 0 {
		return nil, validationf("id must be specified")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	old, err := s.findUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := validateLogin(req.Login); err != nil {
		return nil, err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	if err := s.checkEmailChange(ctx, old.Email, req.Email); err != nil {
		return nil, err
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		name = req.Login
	}

	user := &entity.User{
		ID:       req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: birthday,
	}

	updated, err := s.repo.User.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User updated", zap.Int64("user_id", updated.ID))
	return s.toResponse(ctx, updated)
}

// PatchUser overwrites only the supplied fields. An explicitly blank name
// resets the display name back to the login.
func (s *userService) PatchUser(ctx context.Context, req *request.UserPatchRequest) (*response.UserResponse, error) {
	if req.ID == 0 {
		return nil, validationf("id must be specified")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Patch user validation failed", zap.Any("errors", errs))
		return nil, validationf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != "" {
		if err := s.checkEmailChange(ctx, user.Email, *req.Email); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.Login != nil && *req.Login != "" {
		if err := validateLogin(*req.Login); err != nil {
			return nil, err
		}
		user.Login = *req.Login
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			user.Name = user.Login
		} else {
			user.Name = *req.Name
		}
	}

	if req.Birthday != nil {
		birthday, err := parseBirthday(*req.Birthday)
		if err != nil {
			return nil, err
		}
		user.Birthday = birthday
	}

	updated, err := s.repo.User.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User patched", zap.Int64("user_id", updated.ID))
	return s.toResponse(ctx, updated)
}

func (s *userService) AddFriends(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return validationf("cannot add yourself as a friend")
	}

	if err := s.resolvePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := s.repo.Friendship.Add(ctx, userID, friendID); err != nil {
		if errors.Is(err, repository.ErrAlreadyFriends) {
			return validationf("users %d and %d are already friends", userID, friendID)
		}
		return err
	}

	s.log.Info("Friendship added",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (s *userService) RemoveFriends(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return validationf("cannot remove yourself from friends")
	}

	if err := s.resolvePair(ctx, userID, friendID); err != nil {
		return err
	}

	if err := s.repo.Friendship.Remove(ctx, userID, friendID); err != nil {
		return err
	}

	s.log.Info("Friendship removed",
		zap.Int64("user_id", userID),
		zap.Int64("friend_id", friendID),
	)
	return nil
}

func (s *userService) GetFriends(ctx context.Context, userID int64) ([]response.UserResponse, error) {
	if _, err := s.findUser(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.repo.Friendship.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveIDs(ctx, ids)
}

func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]response.UserResponse, error) {
	if err := s.resolvePair(ctx, userID, otherID); err != nil {
		return nil, err
	}

	ids, err := s.repo.Friendship.Common(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	return s.resolveIDs(ctx, ids)
}

func (s *userService) findUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundf("user with id = %d not found", id)
	}
	return user, nil
}

func (s *userService) resolvePair(ctx context.Context, userID, otherID int64) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.findUser(ctx, otherID); err != nil {
		return err
	}
	return nil
}

func (s *userService) resolveIDs(ctx context.Context, ids []int64) ([]response.UserResponse, error) {
	users := make([]response.UserResponse, 0, len(ids))
	for _, id := range ids {
		user, err := s.findUser(ctx, id)
		if err != nil {
			return nil, err
		}

		resp, err := s.toResponse(ctx, user)
		if err != nil {
			return nil, err
		}
		users = append(users, *resp)
	}
	return users, nil
}

func (s *userService) checkEmailChange(ctx context.Context, oldEmail, newEmail string) error {
	if newEmail == oldEmail {
		return nil
	}

	exists, err := s.repo.User.ExistsByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if exists {
		s.log.Warn("Duplicate email on update", zap.String("email", newEmail))
		return validationf("email %q is already in use", newEmail)
	}
	return nil
}

func (s *userService) toResponse(ctx context.Context, user *entity.User) (*response.UserResponse, error) {
	friends, err := s.repo.Friendship.Friends(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user, friends)
	return &resp, nil
}

func (s *userService) toResponses(ctx context.Context, users []*entity.User) ([]response.UserResponse, error) {
	responses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		resp, err := s.toResponse(ctx, user)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func validateLogin(login string) error {
	if strings.IndexFunc(login, unicode.IsSpace) >= 0 {
		return validationf("login must not contain whitespace")
	}
	return nil
}

func parseBirthday(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	birthday, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, validationf("invalid birthday: %s", value)
	}
	if birthday.After(time.Now()) {
		return time.Time{}, validationf("birthday cannot be in the future")
	}
	return birthday, nil
}
