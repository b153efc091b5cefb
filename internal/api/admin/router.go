package admin

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/progclub/potd/internal/api"
	"github.com/progclub/potd/internal/config"
)

// NewRouter creates and configures the admin Gin engine. It runs on its own
// listen address; problems are created here and are immutable afterwards,
// so there is no update or delete route.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(api.CORSMiddleware(cfg.CORS))
	r.Use(api.RequestIDMiddleware())

	h := NewHandler(cfg, db)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", h.login)

		authed := v1.Group("/")
		authed.Use(api.AuthMiddleware(cfg.Admin.JWT.Secret))
		{
			authed.POST("/problems", h.createProblem)
			authed.GET("/problems", h.getAllProblems)
		}
	}

	return r
}
