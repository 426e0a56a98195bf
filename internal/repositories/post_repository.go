package repositories

import (
	"github.com/socially-app/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetRecent(limit int) ([]models.Post, error)
	GetByAuthorID(authorID uint) ([]models.Post, error)
	CountByAuthorID(authorID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) GetByAuthorID(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
