package handlers

import (
	"net/http"
	"strconv"

	"teamup-backend/internal/auth"
	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/logger"
	"teamup-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string         `json:"error" example:"team is full"`
	Kind  apperrors.Kind `json:"kind" example:"conflict"`
}

// statusForKind maps an error kind to its HTTP status
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument:
		return http.StatusBadRequest
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindQuotaExceeded:
		return http.StatusTooManyRequests
	case apperrors.KindStorageUnavailable, apperrors.KindLockUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error", "kind"}. Details of server-side failures are logged, not returned.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithField("kind", kind).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		if status == http.StatusServiceUnavailable {
			message = "service temporarily unavailable, please retry"
		} else {
			message = "internal server error"
		}
	}
	c.JSON(status, ErrorResponse{Error: message, Kind: kind})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Kind: apperrors.KindInvalidArgument})
}

// requester resolves the authenticated caller set by the auth middleware
func requester(c *gin.Context) (service.Requester, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok || userID == uuid.Nil {
		respondError(c, apperrors.ErrMissingRequester)
		return service.Requester{}, false
	}
	return service.Requester{UserID: userID, Admin: auth.IsAdmin(c)}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning def when it is absent
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, name+" must be an integer")
		return 0, false
	}
	return v, true
}
