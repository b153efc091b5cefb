package ranking

import (
	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"gorm.io/gorm"
)

// penaltyStrategy ranks by solve count, tie-broken by cumulative elapsed
// time (fewer total seconds is better). No per-problem placement is stored.
type penaltyStrategy struct{}

func (s *penaltyStrategy) Name() string { return "penalty" }

func (s *penaltyStrategy) Order() string {
	return "total_solved desc, total_penalty asc, handle asc"
}

func (s *penaltyStrategy) Recompute(tx *gorm.DB, problemID uint) error {
	subs, err := database.GetSubmissionsForProblem(tx, problemID)
	if err != nil {
		return err
	}

	for _, handle := range affectedHandles(subs) {
		userSubs, err := database.GetSubmissionsByHandle(tx, handle)
		if err != nil {
			return err
		}

		var totalPenalty int64
		for _, sub := range userSubs {
			totalPenalty += sub.TimeTaken
		}

		err = tx.Model(&models.User{}).
			Where("handle = ?", handle).
			Updates(map[string]interface{}{
				"total_solved":  len(userSubs),
				"total_penalty": totalPenalty,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// affectedHandles returns the distinct handles in submission order.
func affectedHandles(subs []models.Submission) []string {
	seen := make(map[string]bool, len(subs))
	var handles []string
	for _, sub := range subs {
		if !seen[sub.UserHandle] {
			seen[sub.UserHandle] = true
			handles = append(handles, sub.UserHandle)
		}
	}
	return handles
}
