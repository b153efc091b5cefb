// Package ranking maintains the denormalized leaderboard aggregates on the
// user table. A Strategy pairs the recomputation that writes the aggregates
// with the sort order that reads them, so the two can never drift apart.
package ranking

import (
	"fmt"

	"gorm.io/gorm"
)

type Strategy interface {
	Name() string

	// Recompute refreshes the aggregate fields of every user who has ever
	// submitted to the given problem. Full re-scan, idempotent.
	Recompute(tx *gorm.DB, problemID uint) error

	// Order returns the leaderboard sort clause. Users with zero solves are
	// excluded by the read side regardless of strategy.
	Order() string
}

// FromName maps a config value to a strategy.
func FromName(name string) (Strategy, error) {
	switch name {
	case "penalty":
		return &penaltyStrategy{}, nil
	case "avgrank":
		return &avgRankStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown ranking strategy %q", name)
	}
}
