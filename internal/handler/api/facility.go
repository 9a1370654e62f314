package api

import (
	"errors"
	"net/http"

	reqdto "parkgate/internal/handler/dto/request"
	resdto "parkgate/internal/handler/dto/response"
	"parkgate/internal/usecase/commands"
	"parkgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	facilityCommands commands.FacilityCommands
	facilityQueries  queries.FacilityQueries
}

func NewFacilityHandler(facilityCommands commands.FacilityCommands, facilityQueries queries.FacilityQueries) *FacilityHandler {
	return &FacilityHandler{
		facilityCommands: facilityCommands,
		facilityQueries:  facilityQueries,
	}
}

// @Summary Occupancy statistics
// @Description Space occupancy, open sessions and today's revenue
// @Tags facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /facility/stats [get]
func (h *FacilityHandler) Stats(c *gin.Context) {
	stats, err := h.facilityQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

// @Summary Live space board
// @Description Every space with the vehicle currently parked in it, and whether the lot is full
// @Tags facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SpaceBoardResponse
// @Router /facility/spaces [get]
func (h *FacilityHandler) Spaces(c *gin.Context) {
	board, err := h.facilityQueries.SpaceBoard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpaceBoardView(board))
}

// @Summary Get price schedule
// @Description Current hourly/daily/monthly rates
// @Tags facility
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PriceScheduleResponse
// @Failure 404 {object} map[string]string
// @Router /facility/price [get]
func (h *FacilityHandler) GetPriceSchedule(c *gin.Context) {
	schedule, err := h.facilityQueries.PriceSchedule(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Price schedule not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceScheduleView(schedule))
}

// @Summary Update price schedule
// @Description Partial update of the posted rates (admin only)
// @Tags facility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdatePriceScheduleRequest true "Rates to change"
// @Success 200 {object} resdto.PriceScheduleResponse
// @Failure 400 {object} map[string]string
// @Router /facility/price [patch]
func (h *FacilityHandler) UpdatePriceSchedule(c *gin.Context) {
	var req reqdto.UpdatePriceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	schedule, err := h.facilityCommands.UpdatePriceSchedule(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rates cannot be negative"})
		case errors.Is(err, commands.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Price schedule not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceScheduleView(schedule))
}
