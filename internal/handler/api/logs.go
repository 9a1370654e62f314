package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "parkgate/internal/handler/dto/response"
	"parkgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	sessionQueries queries.SessionQueries
}

func NewLogsHandler(sessionQueries queries.SessionQueries) *LogsHandler {
	return &LogsHandler{sessionQueries: sessionQueries}
}

// @Summary Search entry/exit logs
// @Description Keyword search over plate and space name with cursor pagination
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Keyword over plate or space name"
// @Param limit query int false "Page size"
// @Param after query string false "Pagination cursor"
// @Success 200 {object} resdto.LogListResponse
// @Failure 400 {object} map[string]string
// @Router /logs [get]
func (h *LogsHandler) Search(c *gin.Context) {
	keyword := c.Query("keyword")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.sessionQueries.SearchLogs(c.Request.Context(), keyword, after, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination cursor"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLogListItems(items, next))
}
