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

type GateHandler struct {
	gateCommands   commands.GateCommands
	sessionQueries queries.SessionQueries
}

func NewGateHandler(gateCommands commands.GateCommands, sessionQueries queries.SessionQueries) *GateHandler {
	return &GateHandler{
		gateCommands:   gateCommands,
		sessionQueries: sessionQueries,
	}
}

// @Summary Register a vehicle entry
// @Description Open a parking session for a plate at the entrance gate
// @Tags gate
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterEntryRequest true "Entry request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gate/entrance [post]
func (h *GateHandler) RegisterEntry(c *gin.Context) {
	var req reqdto.RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.gateCommands.RegisterEntry(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPlate),
			errors.Is(err, commands.ErrInvalidRentalType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		case errors.Is(err, commands.ErrSpaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking space not found"})
		case errors.Is(err, commands.ErrSpaceOccupied):
			c.JSON(http.StatusConflict, gin.H{"error": "Parking space is occupied"})
		case errors.Is(err, commands.ErrSessionAlreadyOpen):
			c.JSON(http.StatusConflict, gin.H{"error": "Plate already has an open session"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Preview the current fee
// @Description Estimate the amount owed by the open session for a plate
// @Tags gate
// @Security BearerAuth
// @Produce json
// @Param licensePlate query string true "License plate"
// @Success 200 {object} resdto.FeePreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gate/fee [get]
func (h *GateHandler) PreviewFee(c *gin.Context) {
	plate := c.Query("licensePlate")

	preview, err := h.sessionQueries.PreviewFee(c.Request.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPlate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid license plate"})
		case errors.Is(err, queries.ErrNoOpenSession):
			c.JSON(http.StatusNotFound, gin.H{"error": "No open session for license plate"})
		case errors.Is(err, queries.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Price schedule not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFeePreview(preview))
}

// @Summary Finalize a paid exit
// @Description Close the open session for a plate, charging the computed fee
// @Tags gate
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.FinalizeExitRequest true "Exit request"
// @Success 200 {object} resdto.ExitReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gate/exit [post]
func (h *GateHandler) FinalizeExit(c *gin.Context) {
	var req reqdto.FinalizeExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	receipt, err := h.gateCommands.FinalizeExit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPlate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid license plate"})
		case errors.Is(err, commands.ErrNoOpenSession):
			c.JSON(http.StatusNotFound, gin.H{"error": "No open session for license plate"})
		case errors.Is(err, commands.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Price schedule not configured"})
		case errors.Is(err, commands.ErrSessionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Session was already finalized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExitReceipt(receipt))
}
