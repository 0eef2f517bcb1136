package fakeuserrepo

import (
	"sync"

	"github.com/jrsteele09/dept-console/users"
)

var _ users.AccountRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	accounts    map[int]*users.Account
	usernameIds map[string]int // username to account id
	nextID      int
	lock        sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		accounts:    make(map[int]*users.Account),
		usernameIds: make(map[string]int),
		nextID:      1,
	}
}

func (ur *FakeUserRepo) Upsert(account *users.Account) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if account.User.ID == 0 {
		account.User.ID = ur.nextID
	}
	if account.User.ID >= ur.nextID {
		ur.nextID = account.User.ID + 1
	}
	stored := *account
	stored.User = *account.User.Clone()
	ur.accounts[stored.User.ID] = &stored
	ur.usernameIds[stored.User.Username] = stored.User.ID
	return nil
}

func (ur *FakeUserRepo) GetByUsername(username string) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.usernameIds[username]
	if !ok {
		return nil, users.ErrAccountNotFound
	}
	return ur.copyOf(id)
}

func (ur *FakeUserRepo) GetByID(id int) (*users.Account, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()
	return ur.copyOf(id)
}

func (ur *FakeUserRepo) UpdateProfile(id int, update users.ProfileUpdate) (*users.Account, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	account, ok := ur.accounts[id]
	if !ok {
		return nil, users.ErrAccountNotFound
	}
	if update.FullName != nil {
		account.User.FullName = *update.FullName
	}
	if update.Email != nil {
		account.User.Email = *update.Email
	}
	if update.Phone != nil {
		account.User.Phone = *update.Phone
	}
	return ur.copyOf(id)
}

func (ur *FakeUserRepo) SetPasswordHash(id int, hash string) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	account, ok := ur.accounts[id]
	if !ok {
		return users.ErrAccountNotFound
	}
	account.PasswordHash = hash
	return nil
}

// copyOf must be called with the lock held.
func (ur *FakeUserRepo) copyOf(id int) (*users.Account, error) {
	account, ok := ur.accounts[id]
	if !ok {
		return nil, users.ErrAccountNotFound
	}
	c := *account
	c.User = *account.User.Clone()
	return &c, nil
}
