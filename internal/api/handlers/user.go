package handlers

import (
	"net/http"
	"strings"

	"teamup-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user lookups and recommendations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetCurrentUser handles GET /users/current
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserView
// @Failure 404 {object} ErrorResponse "User no longer exists"
// @Security BearerAuth
// @Router /users/current [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}

	user, err := h.userService.GetCurrent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SearchUsers handles GET /users/search?tags=a&tags=b
// @Summary Search users by tags
// @Description Return users holding every given tag. Tags may be repeated or comma separated.
// @Tags users
// @Produce json
// @Param tags query []string true "Tags" collectionFormat(multi)
// @Success 200 {array} service.UserView
// @Failure 400 {object} ErrorResponse "No tags given"
// @Security BearerAuth
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var tags []string
	for _, raw := range c.QueryArray("tags") {
		tags = append(tags, strings.Split(raw, ",")...)
	}

	users, err := h.userService.SearchByTags(c.Request.Context(), tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// MatchUsers handles GET /users/match?num=k
// @Summary Most similar users
// @Description Rank users by tag edit distance to the requester and return the num closest
// @Tags users
// @Produce json
// @Param num query int true "Number of users, 1 to 20"
// @Success 200 {array} service.UserView
// @Failure 400 {object} ErrorResponse "num out of range"
// @Security BearerAuth
// @Router /users/match [get]
func (h *UserHandler) MatchUsers(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	num, ok := queryInt(c, "num", 0)
	if !ok {
		return
	}

	users, err := h.userService.Match(c.Request.Context(), req, num)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// RecommendUsers handles GET /users/recommend
// @Summary Recommended users
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.UserPage
// @Security BearerAuth
// @Router /users/recommend [get]
func (h *UserHandler) RecommendUsers(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "page_size", 20)
	if !ok {
		return
	}

	result, err := h.userService.Recommend(c.Request.Context(), req, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
