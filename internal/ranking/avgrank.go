package ranking

import (
	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"gorm.io/gorm"
)

// avgRankStrategy persists a 1-based placement per submission (ascending
// elapsed time, ties by insertion id) and ranks users by their mean
// placement across all solved problems.
type avgRankStrategy struct{}

func (s *avgRankStrategy) Name() string { return "avgrank" }

func (s *avgRankStrategy) Order() string {
	return "avg_rank asc, total_solved desc, handle asc"
}

func (s *avgRankStrategy) Recompute(tx *gorm.DB, problemID uint) error {
	subs, err := database.GetSubmissionsForProblem(tx, problemID)
	if err != nil {
		return err
	}

	// Reassign placements for this problem first so the per-user averages
	// below see fresh values.
	for i := range subs {
		placement := i + 1
		if subs[i].Placement == placement {
			continue
		}
		err := tx.Model(&models.Submission{}).
			Where("id = ?", subs[i].ID).
			Update("placement", placement).Error
		if err != nil {
			return err
		}
	}

	for _, handle := range affectedHandles(subs) {
		userSubs, err := database.GetSubmissionsByHandle(tx, handle)
		if err != nil {
			return err
		}

		var placementSum int64
		for _, sub := range userSubs {
			placementSum += int64(sub.Placement)
		}
		avgRank := float64(placementSum) / float64(len(userSubs))

		err = tx.Model(&models.User{}).
			Where("handle = ?", handle).
			Updates(map[string]interface{}{
				"total_solved": len(userSubs),
				"avg_rank":     avgRank,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
