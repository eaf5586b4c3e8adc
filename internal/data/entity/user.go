package entity

import (
	"time"
)

type User struct {
	ID       int64
	Email    string
	Login    string
	Name     string
	Birthday time.Time // zero value means unset
}

// UniqueKey is the business key tracked by the user uniqueness index.
func (u *User) UniqueKey() string {
	return u.Email
}
