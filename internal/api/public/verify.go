package public

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/progclub/potd/internal/util"
	"github.com/progclub/potd/internal/verify"
)

type verifyRequest struct {
	Handle    string   `json:"handle"`
	Handles   []string `json:"handles"`
	ProblemID uint     `json:"problemId"`
}

func (h *Handler) verifySolve(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Handle(s) and problemId are required")
		return
	}

	handles := req.Handles
	if len(handles) == 0 && req.Handle != "" {
		handles = []string{req.Handle}
	}

	result, err := h.verifier.Verify(c.Request.Context(), handles, req.ProblemID)
	if err != nil {
		verr := verify.AsError(err)
		util.Error(c, statusForKind(verr.Kind), verr.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Solution verified successfully!",
		"handle":    result.Handle,
		"rank":      result.Rank,
		"timeTaken": result.TimeTaken,
	})
}

// statusForKind maps verification error kinds to the HTTP surface. Already
// verified and past deadline are 400s; an unknown problem and "nobody
// solved it" are both 404s.
func statusForKind(kind verify.Kind) int {
	switch kind {
	case verify.KindBadRequest, verify.KindConflict, verify.KindDeadlineExceeded:
		return http.StatusBadRequest
	case verify.KindNotFound, verify.KindNoValidSubmission:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
