package api

import (
	"errors"
	"net/http"

	resdto "parkgate/internal/handler/dto/response"
	"parkgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	contractQueries queries.ContractQueries
}

func NewContractHandler(contractQueries queries.ContractQueries) *ContractHandler {
	return &ContractHandler{contractQueries: contractQueries}
}

// @Summary Look up a contract by plate
// @Description Latest contract for the plate, status derived from its end date
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param licensePlate query string true "License plate"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /contracts [get]
func (h *ContractHandler) GetByPlate(c *gin.Context) {
	plate := c.Query("licensePlate")

	view, err := h.contractQueries.GetByPlate(c.Request.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidPlate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid license plate"})
		case errors.Is(err, queries.ErrContractNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromContractView(view))
}
