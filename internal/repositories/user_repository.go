package repositories

import (
	"github.com/socially-app/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	GetSuggestedUsers(excludeUserID uint, limit int) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by local ID from PostgreSQL
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by external identity id from PostgreSQL
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSuggestedUsers returns up to limit users, excluding excludeUserID itself
// and everyone that user already follows. No ordering beyond what the query
// planner picks.
func (r *PostgresUserRepository) GetSuggestedUsers(excludeUserID uint, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("id <> ?", excludeUserID).
		Where("id NOT IN (?)",
			r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", excludeUserID),
		).
		Limit(limit).
		Find(&users).Error
	return users, err
}
