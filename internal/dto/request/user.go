package request

type UserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required"`
	Name     string `json:"name,omitempty"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UserUpdateRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required"`
	Name     string `json:"name,omitempty"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UserPatchRequest carries only the fields being changed. An explicitly blank
// name resets the display name back to the login.
type UserPatchRequest struct {
	ID       int64   `json:"id"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Login    *string `json:"login,omitempty"`
	Name     *string `json:"name,omitempty"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
