package repository

import (
	"teamup-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for user-team memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// Exists reports whether the user is a member of the team
func (r *MembershipRepository) Exists(userID, teamID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count).Error
	return count > 0, err
}

// CountByUser counts the teams a user belongs to
func (r *MembershipRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByTeam counts the members of a team
func (r *MembershipRepository) CountByTeam(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// CountByTeams counts members for several teams at once. Teams without members are absent from the map.
func (r *MembershipRepository) CountByTeams(teamIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(teamIDs))
	if len(teamIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TeamID uuid.UUID
		Count  int64
	}
	err := r.db.Model(&models.Membership{}).
		Select("team_id, COUNT(*) AS count").
		Where("team_id IN ?", teamIDs).
		Group("team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.TeamID] = row.Count
	}
	return counts, nil
}

// ListByTeam retrieves the memberships of a team ordered by seniority
func (r *MembershipRepository) ListByTeam(teamID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("team_id = ?", teamID).Order("join_time ASC, id ASC").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListTeamIDsByUser retrieves the IDs of every team a user belongs to
func (r *MembershipRepository) ListTeamIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Membership{}).Where("user_id = ?", userID).Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes a single membership
func (r *MembershipRepository) Delete(userID, teamID uuid.UUID) error {
	result := r.db.Where("user_id = ? AND team_id = ?", userID, teamID).Delete(&models.Membership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByTeam removes every membership of a team and returns how many were removed
func (r *MembershipRepository) DeleteByTeam(teamID uuid.UUID) (int64, error) {
	result := r.db.Where("team_id = ?", teamID).Delete(&models.Membership{})
	return result.RowsAffected, result.Error
}
