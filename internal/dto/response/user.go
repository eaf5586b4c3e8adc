package response

import (
	"filmorate/internal/data/entity"
)

type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Login     string  `json:"login"`
	Name      string  `json:"name"`
	Birthday  string  `json:"birthday,omitempty"`
	FriendIDs []int64 `json:"friendIds"`
}

func UserToResponse(user *entity.User, friendIDs []int64) UserResponse {
	var birthday string
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format("2006-01-02")
	}

	if friendIDs == nil {
		friendIDs = []int64{}
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Login:     user.Login,
		Name:      user.Name,
		Birthday:  birthday,
		FriendIDs: friendIDs,
	}
}
