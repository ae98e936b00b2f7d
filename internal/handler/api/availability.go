package api

import (
	"net/http"

	resdto "campreserve/internal/handler/dto/response"
	"campreserve/internal/handler/httperr"
	"campreserve/internal/pkg/dateutil"
	"campreserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List campground availability
// @Description List every campsite in a campground with rates and a booked flag for the requested window
// @Tags availability
// @Produce json
// @Param id path string true "Campground ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.SiteAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /campgrounds/{id}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	campgroundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	from, err := dateutil.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from date", nil)
		return
	}
	to, err := dateutil.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to date", nil)
		return
	}

	sites, err := h.q.ListCampgroundAvailability(c.Request.Context(), campgroundID, from, to)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSiteAvailability(sites))
}
