package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure AdminUserRepository implements the interface
var _ repositories.AdminUserRepository = (*AdminUserRepository)(nil)

// AdminUserRepository is the in-memory admin user store
type AdminUserRepository struct {
	mu    sync.Mutex
	users map[string]*models.AdminUser
}

// NewAdminUserRepository creates an empty in-memory admin user store
func NewAdminUserRepository() *AdminUserRepository {
	return &AdminUserRepository{
		users: make(map[string]*models.AdminUser),
	}
}

// Create inserts a new admin user, failing on duplicate email
func (r *AdminUserRepository) Create(_ context.Context, user *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return repositories.ErrConflict
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

// FindByEmail finds an admin user by email
func (r *AdminUserRepository) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *user
	return &found, nil
}
