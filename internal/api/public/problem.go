package public

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"github.com/progclub/potd/internal/util"
)

func (h *Handler) getProblem(c *gin.Context) {
	problem, err := database.GetLatestPostedProblem(h.db, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "No active problem found")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, problem)
}

// getProblems returns every problem posted so far, grouped by the calendar
// date of its posting time at the configured display offset. Problems inside
// a group are newest first; group ordering is up to the client since JSON
// object keys carry no order.
func (h *Handler) getProblems(c *gin.Context) {
	problems, err := database.GetPostedProblems(h.db, time.Now())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	offset := *h.cfg.Display.UTCOffsetMinutes
	loc := time.FixedZone("display", offset*60)

	grouped := make(map[string][]models.DailyProblem)
	for _, problem := range problems {
		key := problem.PostedAt.In(loc).Format("2006-01-02")
		grouped[key] = append(grouped[key], problem)
	}

	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) getTime(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"timestamp": now.UTC().Format(time.RFC3339),
		"unix":      now.Unix(),
	})
}
