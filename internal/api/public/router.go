package public

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/progclub/potd/internal/api"
	"github.com/progclub/potd/internal/config"
	"github.com/progclub/potd/internal/pubsub"
	"github.com/progclub/potd/internal/ranking"
	"github.com/progclub/potd/internal/verify"
)

// NewRouter creates and configures the public Gin engine.
func NewRouter(
	cfg *config.Config,
	db *gorm.DB,
	verifier *verify.Service,
	strategy ranking.Strategy,
	broker *pubsub.Broker) *gin.Engine {

	r := gin.Default()

	r.Use(api.CORSMiddleware(cfg.CORS))
	r.Use(api.RequestIDMiddleware())

	h := NewHandler(cfg, db, verifier, strategy, broker)

	r.GET("/leaderboard", h.getLeaderboard)
	r.GET("/problem", h.getProblem)
	r.GET("/problems", h.getProblems)
	r.GET("/time", h.getTime)
	r.POST("/upload-handles", h.uploadHandles)
	r.POST("/verify", h.verifySolve)

	r.GET("/ws/leaderboard", h.handleLeaderboardWs)

	return r
}
