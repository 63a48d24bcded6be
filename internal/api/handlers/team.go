package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"teamup-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService       service.TeamServiceInterface
	membershipService service.MembershipServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, membershipService service.MembershipServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team owned by the requester; the owner becomes its first member
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 429 {object} ErrorResponse "Owner already has the maximum number of teams"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	var body service.CreateTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &body, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update a team
// @Description Partially update a team; only the owner or an administrator may do so
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 403 {object} ErrorResponse "Requester is neither owner nor administrator"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var body service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &body, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team and all of its memberships; owner only
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 403 {object} ErrorResponse "Requester is not the owner"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List non-expired teams. Private teams are only listed for administrators.
// @Tags teams
// @Produce json
// @Param search_text query string false "Matches name or description"
// @Param name query string false "Name contains"
// @Param description query string false "Description contains"
// @Param owner_id query string false "Owner ID (UUID)"
// @Param max_num query int false "Exact capacity"
// @Param status query string false "public, private or secret"
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Success 200 {array} service.TeamView
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	h.list(c, h.teamService.List)
}

// ListMyCreatedTeams handles GET /teams/mine/created
func (h *TeamHandler) ListMyCreatedTeams(c *gin.Context) {
	h.list(c, h.teamService.ListMyCreated)
}

// ListMyJoinedTeams handles GET /teams/mine/joined
func (h *TeamHandler) ListMyJoinedTeams(c *gin.Context) {
	h.list(c, h.teamService.ListMyJoined)
}

type listFunc func(ctx context.Context, filter *service.TeamListFilter, requester service.Requester) ([]service.TeamView, error)

func (h *TeamHandler) list(c *gin.Context, fn listFunc) {
	req, ok := requester(c)
	if !ok {
		return
	}
	filter, ok := parseTeamListFilter(c)
	if !ok {
		return
	}

	teams, err := fn(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

func parseTeamListFilter(c *gin.Context) (*service.TeamListFilter, bool) {
	filter := &service.TeamListFilter{
		SearchText:  c.Query("search_text"),
		Name:        c.Query("name"),
		Description: c.Query("description"),
		Status:      c.Query("status"),
	}

	for _, raw := range c.QueryArray("id") {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid id")
			return nil, false
		}
		filter.IDs = append(filter.IDs, id)
	}

	if raw := c.Query("owner_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid owner_id")
			return nil, false
		}
		filter.OwnerID = &id
	}

	if c.Query("max_num") != "" {
		maxNum, ok := queryInt(c, "max_num", 0)
		if !ok {
			return nil, false
		}
		filter.MaxNum = &maxNum
	}

	var ok bool
	if filter.Page, ok = queryInt(c, "page", 0); !ok {
		return nil, false
	}
	if filter.PageSize, ok = queryInt(c, "page_size", 0); !ok {
		return nil, false
	}
	return filter, true
}

// JoinTeam handles POST /teams/:id/join
// @Summary Join a team
// @Description Join a public team, or a secret team with its password
// @Tags teams
// @Accept json
// @Param id path string true "Team ID (UUID)"
// @Param body body service.JoinTeamRequest false "Password for secret teams"
// @Success 204 "Joined"
// @Failure 409 {object} ErrorResponse "Team full, already a member, expired or wrong password"
// @Failure 429 {object} ErrorResponse "Requester already joined the maximum number of teams"
// @Failure 503 {object} ErrorResponse "Join lock busy, retry"
// @Security BearerAuth
// @Router /teams/{id}/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	// the body is optional; only secret teams need one
	var body service.JoinTeamRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, err.Error())
			return
		}
	}

	if err := h.membershipService.Join(c.Request.Context(), id, &body, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// QuitTeam handles POST /teams/:id/quit
// @Summary Quit a team
// @Description Leave a team. The last member leaving dissolves it; an owner leaving hands it to the most senior member.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.QuitResult
// @Failure 409 {object} ErrorResponse "Requester is not a member"
// @Security BearerAuth
// @Router /teams/{id}/quit [post]
func (h *TeamHandler) QuitTeam(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.membershipService.Quit(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
