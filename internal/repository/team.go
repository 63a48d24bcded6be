package repository

import (
	"time"

	"teamup-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamFilter narrows a team listing. Zero values are ignored.
type TeamFilter struct {
	IDs         []uuid.UUID
	SearchText  string // matches name OR description
	Name        string
	Description string
	OwnerID     *uuid.UUID
	MaxNum      *int
	Statuses    []models.TeamStatus
	// ActiveAt hides teams whose expire time is at or before it
	ActiveAt *time.Time
	Limit    int
	Offset   int
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate retrieves a team by ID and row-locks it until the surrounding transaction ends
func (r *TeamRepository) GetByIDForUpdate(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams matching the filter, newest first
func (r *TeamRepository) List(filter TeamFilter) ([]models.Team, error) {
	var teams []models.Team

	query := r.db.Model(&models.Team{})
	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.SearchText != "" {
		like := "%" + filter.SearchText + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.MaxNum != nil {
		query = query.Where("max_num = ?", *filter.MaxNum)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.ActiveAt != nil {
		query = query.Where("expire_time IS NULL OR expire_time > ?", *filter.ActiveAt)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// CountByOwner counts the teams owned by a user
func (r *TeamRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// Update writes only the given columns of a team. A missing row is reported as
// gorm.ErrRecordNotFound and never re-inserted.
func (r *TeamRepository) Update(id uuid.UUID, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOwner reassigns the owner of a team
func (r *TeamRepository) UpdateOwner(id, ownerID uuid.UUID) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Update("owner_id", ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
