package api

import (
	"net/http"

	resdto "campreserve/internal/handler/dto/response"
	"campreserve/internal/handler/httperr"
	"campreserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Event occupancy report
// @Description Per-site occupancy grid and status for an event's extended window
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.OccupancyReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id}/occupancy [get]
func (h *ReportHandler) Occupancy(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	report, err := h.q.OccupancyReport(c.Request.Context(), eventID)
	if err != nil {
		abortDomainErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyReport(report))
}
