package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"github.com/progclub/potd/internal/util"
)

func (h *Handler) createProblem(c *gin.Context) {
	var req struct {
		CfContestID int       `json:"cfContestId" binding:"required"`
		CfIndex     string    `json:"cfIndex" binding:"required"`
		Title       string    `json:"title" binding:"required"`
		PostedAt    time.Time `json:"postedAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	// Omitted postedAt means "post now"; a future time schedules the
	// problem, which stays hidden from the public endpoints until then.
	postedAt := req.PostedAt
	if postedAt.IsZero() {
		postedAt = time.Now()
	}

	problem := &models.DailyProblem{
		CfContestID: req.CfContestID,
		CfIndex:     req.CfIndex,
		Title:       req.Title,
		PostedAt:    postedAt,
	}
	if err := database.CreateProblem(h.db, problem); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create problem")
		return
	}

	zap.S().Infof("daily problem posted: id=%d %d%s %q", problem.ID, problem.CfContestID, problem.CfIndex, problem.Title)
	c.JSON(http.StatusOK, problem)
}

func (h *Handler) getAllProblems(c *gin.Context) {
	problems, err := database.GetAllProblems(h.db)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list problems")
		return
	}
	if problems == nil {
		problems = []models.DailyProblem{}
	}
	c.JSON(http.StatusOK, problems)
}
