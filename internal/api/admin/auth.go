package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/progclub/potd/internal/auth"
	"github.com/progclub/potd/internal/util"
)

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, err)
		return
	}

	if req.Username != h.cfg.Admin.Username ||
		!auth.CheckPasswordHash(req.Password, h.cfg.Admin.PasswordHash) {
		util.Error(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateJWT(req.Username, h.cfg.Admin.JWT.Secret, h.cfg.Admin.JWT.ExpireHours)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to generate JWT")
		return
	}

	zap.S().Infof("admin %q logged in", req.Username)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
