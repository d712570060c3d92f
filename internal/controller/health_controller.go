package controller

import (
	"learnhub/internal/util"
	"learnhub/pkg/database"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db, Now: time.Now}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// @Summary 健康检查
// @Description 检查服务与数据库连接状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := database.Ping(c.DB.WithContext(ctx.Request.Context())); err != nil {
		util.Error(ctx, http.StatusInternalServerError, "Health check failed: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:    util.StatusOK,
		Timestamp: c.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
	})
}
