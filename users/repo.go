package users

import "errors"

var ErrAccountNotFound = errors.New("account not found")

// Account is a user record together with its credential, as held by the
// department API.
type Account struct {
	User         User
	PasswordHash string `json:"-"`
}

type AccountRepo interface {
	Upsert(account *Account) error
	GetByUsername(username string) (*Account, error)
	GetByID(id int) (*Account, error)
	UpdateProfile(id int, update ProfileUpdate) (*Account, error)
	SetPasswordHash(id int, hash string) error
}
