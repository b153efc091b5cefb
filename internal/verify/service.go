// Package verify implements the self-report verification flow: a claimed
// solve is checked against the judge's public submission history, recorded,
// and the leaderboard aggregates are recomputed.
package verify

import (
	"context"
	"errors"
	"strings"

	"github.com/progclub/potd/internal/database"
	"github.com/progclub/potd/internal/database/models"
	"github.com/progclub/potd/internal/judge"
	"github.com/progclub/potd/internal/ranking"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// acceptanceWindowSeconds is how long after posting a solve still counts.
const acceptanceWindowSeconds = 24 * 60 * 60

// JudgeClient is the slice of the judge API the service needs.
type JudgeClient interface {
	FetchAcceptedSubmission(ctx context.Context, handle string, contestID int, index string, postedAtSeconds int64) (*judge.ValidSubmission, error)
	ValidateHandle(ctx context.Context, handle string) bool
}

// Result is a successful verification: the winning handle, its 1-based rank
// among the problem's solvers by elapsed time, and its elapsed seconds.
type Result struct {
	Handle    string
	Rank      int
	TimeTaken int64
}

// Event is published to subscribers after each successful verification.
type Event struct {
	Handle    string `json:"handle"`
	ProblemID uint   `json:"problemId"`
	Rank      int    `json:"rank"`
	TimeTaken int64  `json:"timeTaken"`
}

type Service struct {
	db       *gorm.DB
	judge    JudgeClient
	strategy ranking.Strategy
	publish  func(Event)
}

// NewService creates the verification service. publish is invoked after
// each successful verification (e.g. to feed the live websocket stream) and
// may be nil.
func NewService(db *gorm.DB, judgeClient JudgeClient, strategy ranking.Strategy, publish func(Event)) *Service {
	return &Service{
		db:       db,
		judge:    judgeClient,
		strategy: strategy,
		publish:  publish,
	}
}

// Verify checks the candidate handles in order and records the first one
// with a qualifying accepted submission to the problem. At most one handle
// wins per call; the others are left unverified.
func (s *Service) Verify(ctx context.Context, handles []string, problemID uint) (*Result, error) {
	candidates := make([]string, 0, len(handles))
	for _, h := range handles {
		if h = strings.TrimSpace(h); h != "" {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 || problemID == 0 {
		return nil, errf(KindBadRequest, "Handle(s) and problemId are required")
	}

	problem, err := database.GetProblemByID(s.db, problemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errf(KindNotFound, "Problem not found")
		}
		return nil, errf(KindInternal, "Internal server error")
	}

	postedAt := problem.PostedAt.Unix()
	deadline := postedAt + acceptanceWindowSeconds

	win, werr := s.pickWinner(ctx, candidates, problem, postedAt, deadline)
	if werr != nil {
		return nil, werr
	}

	result, err := s.record(win.handle, problemID, win.sub.TimeTakenSeconds)
	if err != nil {
		return nil, err
	}

	if s.publish != nil {
		s.publish(Event{
			Handle:    result.Handle,
			ProblemID: problemID,
			Rank:      result.Rank,
			TimeTaken: result.TimeTaken,
		})
	}

	zap.S().Infof("verified solve: handle=%s problem=%d rank=%d time=%ds",
		result.Handle, problemID, result.Rank, result.TimeTaken)
	return result, nil
}

type winner struct {
	handle string
	sub    *judge.ValidSubmission
}

// pickWinner walks the candidates in input order and returns the first one
// with an accepted submission inside the acceptance window. Already-verified
// handles are skipped so one duplicate in a batch does not block the rest;
// their presence only surfaces as a Conflict when nobody else qualifies.
func (s *Service) pickWinner(ctx context.Context, candidates []string, problem *models.DailyProblem, postedAt, deadline int64) (*winner, *Error) {
	var (
		duplicateHandle string
		hoursLate       int64
	)

	for _, handle := range candidates {
		exists, err := database.HasSubmission(s.db, handle, problem.ID)
		if err != nil {
			return nil, errf(KindInternal, "Internal server error")
		}
		if exists {
			if duplicateHandle == "" {
				duplicateHandle = handle
			}
			continue
		}

		sub, err := s.judge.FetchAcceptedSubmission(ctx, handle, problem.CfContestID, problem.CfIndex, postedAt)
		if err != nil {
			// Fail closed: an unreachable or malformed judge API counts as
			// no match for this handle.
			zap.S().Warnf("judge lookup for %q failed: %v", handle, err)
			continue
		}
		if sub == nil {
			continue
		}

		if sub.SolveTimeSeconds > deadline {
			late := (sub.SolveTimeSeconds - deadline + 3599) / 3600
			if hoursLate == 0 || late < hoursLate {
				hoursLate = late
			}
			continue
		}

		return &winner{handle: handle, sub: sub}, nil
	}

	if duplicateHandle != "" {
		return nil, errf(KindConflict, "Handle %q has already verified this problem", duplicateHandle)
	}
	if hoursLate > 0 {
		return nil, errf(KindDeadlineExceeded, "Submission was %d hour(s) past the 24 hour deadline", hoursLate)
	}
	if len(candidates) == 1 && !s.judge.ValidateHandle(ctx, candidates[0]) {
		zap.S().Infof("handle %q not found on judge", candidates[0])
	}
	return nil, errf(KindNoValidSubmission,
		"No valid submission found for any of the provided handles. Make sure at least one handle solved the problem within 24 hours of posting.")
}

// record persists the winning solve and recomputes the aggregates, all in
// one transaction so the duplicate check, insert and recompute can't be
// interleaved by a concurrent verification of the same pair.
func (s *Service) record(handle string, problemID uint, timeTaken int64) (*Result, error) {
	var rank int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := database.HasSubmission(tx, handle, problemID)
		if err != nil {
			return err
		}
		if exists {
			return errf(KindConflict, "Handle %q has already verified this problem", handle)
		}

		if err := database.EnsureUser(tx, handle); err != nil {
			return err
		}

		sub := &models.Submission{
			UserHandle: handle,
			ProblemID:  problemID,
			TimeTaken:  timeTaken,
		}
		if err := database.CreateSubmission(tx, sub); err != nil {
			return err
		}

		if err := s.strategy.Recompute(tx, problemID); err != nil {
			return err
		}

		subs, err := database.GetSubmissionsForProblem(tx, problemID)
		if err != nil {
			return err
		}
		for i := range subs {
			if subs[i].UserHandle == handle {
				rank = i + 1
				break
			}
		}
		return nil
	})
	if err != nil {
		if verr, ok := err.(*Error); ok {
			return nil, verr
		}
		zap.S().Errorf("verification transaction failed: %v", err)
		return nil, errf(KindInternal, "Internal server error")
	}

	return &Result{Handle: handle, Rank: rank, TimeTaken: timeTaken}, nil
}
