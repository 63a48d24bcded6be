package repository

import (
	"teamup-backend/internal/database/models"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAccount retrieves a user by login account
func (r *UserRepository) GetByAccount(account string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "account = ?", account).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves users by ID. Order is unspecified and unknown IDs are skipped.
func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListTagged retrieves the id and tags of every user with at least one tag
func (r *UserRepository) ListTagged() ([]models.User, error) {
	var users []models.User
	err := r.db.Select("id", "tags").
		Where("tags IS NOT NULL AND jsonb_array_length(tags) > 0").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// SearchByTags retrieves users whose tags contain every given tag
func (r *UserRepository) SearchByTags(tags []string) ([]models.User, error) {
	var users []models.User
	payload, err := sonic.Marshal(tags)
	if err != nil {
		return nil, err
	}
	if err := r.db.Where("tags @> ?::jsonb", string(payload)).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// Get total count
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := r.db.Model(&models.User{}).Order("created_at ASC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
