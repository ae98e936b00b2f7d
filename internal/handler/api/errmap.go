package api

import (
	"errors"
	"net/http"

	"campreserve/internal/handler/httperr"
	"campreserve/internal/handler/middleware"
	"campreserve/internal/pkg/errs"
	"campreserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errMissingActor = errors.New("authenticated user missing from context")

// getActor assembles the command-layer actor from what RequireAuth stored.
func getActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{UserID: userID, Role: role}, true
}

// abortDomainErr maps usecase sentinels onto the HTTP contract: validation
// 400, auth 401/403, missing aggregates 404, interval conflicts 409,
// everything else a generic 500 that leaks no store detail.
func abortDomainErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidInterval):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errors.Is(err, errs.ErrCampsiteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Campsite not found", nil)
	case errors.Is(err, errs.ErrCampgroundNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Campground not found", nil)
	case errors.Is(err, errs.ErrEventNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Campsite unavailable for selected dates", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
