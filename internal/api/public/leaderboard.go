package public

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"github.com/progclub/potd/internal/util"
)

const leaderboardPageSize = 20

func (h *Handler) getLeaderboard(c *gin.Context) {
	pageParam := c.Query("page")

	if pageParam == "" {
		users, err := database.GetLeaderboard(h.db, h.strategy.Order())
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if users == nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, users)
		return
	}

	// The interface has no bad-request path here; a garbage page value just
	// means the first page.
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}

	users, total, err := database.GetLeaderboardPage(h.db, h.strategy.Order(), page, leaderboardPageSize)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	totalPages := int((total + leaderboardPageSize - 1) / leaderboardPageSize)
	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"total":      total,
		"page":       page,
		"pageSize":   leaderboardPageSize,
		"totalPages": totalPages,
	})
}
