package storage

import (
	"log"
	"sync"
	"time"

	"github.com/EgyRem/advan/models"
	"github.com/samber/lo"
)

const usersCollection = "users"

// UserStore owns the users collection.
type UserStore struct {
	mu  sync.Mutex
	col Collections
}

func NewUserStore(col Collections) *UserStore {
	store := &UserStore{col: col}
	store.seedDefaults()
	return store
}

// seedDefaults makes sure the built-in admin accounts exist, the same way
// the server always bootstrapped a fresh users.json.
func (s *UserStore) seedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users()
	changed := false
	for _, admin := range []models.User{
		{Username: "advan", Password: "advan", Role: models.RoleAdmin},
		{Username: "admin", Password: "admin", Role: models.RoleAdmin, ProfilePhoto: lo.ToPtr("python.png")},
	} {
		exists := lo.ContainsBy(users, func(u models.User) bool {
			return u.Username == admin.Username
		})
		if !exists {
			admin.CreatedAt = time.Now().UTC()
			users = append(users, admin)
			changed = true
		}
	}
	if changed {
		s.write(users)
	}
}

func (s *UserStore) users() []models.User {
	users := []models.User{}
	if err := s.col.Read(usersCollection, &users); err != nil {
		log.Println("error reading users collection:", err)
		return []models.User{}
	}
	return users
}

func (s *UserStore) write(users []models.User) {
	if err := s.col.Write(usersCollection, users); err != nil {
		log.Println("error writing users collection:", err)
	}
}

// List returns all users in storage order.
func (s *UserStore) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users()
}

// FindByUsername returns the user and whether it exists.
func (s *UserStore) FindByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.users(), func(u models.User) bool {
		return u.Username == username
	})
}

// Create appends the user unless the username is already taken.
func (s *UserStore) Create(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users()
	taken := lo.ContainsBy(users, func(u models.User) bool {
		return u.Username == user.Username
	})
	if taken {
		return false
	}
	s.write(append(users, user))
	return true
}

// Update applies fn to the stored user and persists the result. Returns
// false when the user does not exist.
func (s *UserStore) Update(username string, fn func(*models.User)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users()
	for i := range users {
		if users[i].Username == username {
			fn(&users[i])
			s.write(users)
			return true
		}
	}
	return false
}

// Authenticate compares the credentials in full against the stored record.
func (s *UserStore) Authenticate(username, password string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.users(), func(u models.User) bool {
		return u.Username == username && u.Password == password
	})
}

// Delete removes the user and returns the removed record so the caller can
// clean up its profile photo file.
func (s *UserStore) Delete(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users()
	for i, u := range users {
		if u.Username == username {
			s.write(append(users[:i], users[i+1:]...))
			return u, true
		}
	}
	return models.User{}, false
}

// TouchLogin stamps lastLogin on a successful login.
func (s *UserStore) TouchLogin(username string) (models.User, bool) {
	now := time.Now().UTC()
	var updated models.User
	ok := s.Update(username, func(u *models.User) {
		u.LastLogin = &now
		updated = *u
	})
	return updated, ok
}

// TouchLogout stamps lastLogout.
func (s *UserStore) TouchLogout(username string) bool {
	now := time.Now().UTC()
	return s.Update(username, func(u *models.User) {
		u.LastLogout = &now
	})
}
