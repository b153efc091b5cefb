package models

import (
	"time"
)

// User is a participant identified by their judge handle. The aggregate
// fields are derived caches: they are a pure function of the user's
// Submission rows and are only ever written by the ranking recomputation.
type User struct {
	Handle    string    `gorm:"primaryKey" json:"handle"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	TotalSolved  int     `json:"totalSolved"`
	TotalPenalty int64   `json:"totalPenalty"` // seconds, penalty strategy
	AvgRank      float64 `json:"avgRank"`      // mean placement, avgrank strategy
}

// DailyProblem is one posted practice problem. Immutable once created; the
// verification deadline is always PostedAt + 24h and is never stored.
type DailyProblem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`

	CfContestID int       `json:"cfContestId"`
	CfIndex     string    `json:"cfIndex"`
	Title       string    `json:"title"`
	PostedAt    time.Time `gorm:"index" json:"postedAt"`
}

// Submission is one verified solve. At most one row per (handle, problem)
// pair; the composite unique index is the backstop for concurrent
// verification attempts.
type Submission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserHandle string `gorm:"uniqueIndex:idx_handle_problem" json:"userHandle"`
	ProblemID  uint   `gorm:"uniqueIndex:idx_handle_problem" json:"problemId"`

	TimeTaken int64 `json:"timeTaken"` // seconds from problem posting to solve
	Placement int   `json:"placement"` // 1-based, written by the avgrank strategy only
}
