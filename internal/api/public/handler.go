package public

import (
	"github.com/progclub/potd/internal/config"
	"github.com/progclub/potd/internal/pubsub"
	"github.com/progclub/potd/internal/ranking"
	"github.com/progclub/potd/internal/verify"
	"gorm.io/gorm"
)

// Handler holds all dependencies for the public API handlers.
type Handler struct {
	cfg      *config.Config
	db       *gorm.DB
	verifier *verify.Service
	strategy ranking.Strategy
	broker   *pubsub.Broker
}

func NewHandler(
	cfg *config.Config,
	db *gorm.DB,
	verifier *verify.Service,
	strategy ranking.Strategy,
	broker *pubsub.Broker,
) *Handler {
	return &Handler{
		cfg:      cfg,
		db:       db,
		verifier: verifier,
		strategy: strategy,
		broker:   broker,
	}
}
