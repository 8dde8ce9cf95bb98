package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/repositories/interfaces"
)

type userRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

func NewUserRepository() interfaces.UserRepository {
	return &userRepository{users: make(map[int64]*models.User)}
}

// Create assigns the id. Emails and user names are unique, case-insensitive.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return interfaces.ErrDuplicateUser
		}
		if user.UserName != "" && strings.EqualFold(u.UserName, user.UserName) {
			return interfaces.ErrDuplicateUser
		}
	}

	r.nextID++
	user.ID = r.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, interfaces.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.UserName != "" && strings.EqualFold(u.UserName, userName) })
}

func (r *userRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, interfaces.ErrUserNotFound
}
