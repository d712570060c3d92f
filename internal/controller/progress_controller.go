package controller

import (
	"learnhub/internal/service"
	"learnhub/internal/util"

	"github.com/gin-gonic/gin"
)

const invalidPayload = "invalid JSON payload"

// ProgressController 匿名会话的学习进度与埋点事件
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type UpsertProgressRequest struct {
	SessionID  string `json:"session_id"`
	ModuleSlug string `json:"module_slug"`
	Completed  Flag   `json:"completed" swaggertype:"boolean"`
}

type EventRequest struct {
	SessionID  string `json:"session_id"`
	EventType  string `json:"event_type"`
	ModuleSlug string `json:"module_slug"`
	Page       string `json:"page"`
}

// @Summary 获取学习进度
// @Tags 进度
// @Produce json
// @Param session_id query string true "会话 ID"
// @Success 200 {object} util.Response{data=map[string]service.ModuleProgressView}
// @Failure 400 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	progress, err := c.ProgressService.GetProgress(ctx.Request.Context(), ctx.Query("session_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 更新学习进度
// @Description 记录模块访问，completed 一旦为 true 不会回退
// @Tags 进度
// @Accept json
// @Produce json
// @Param progress body UpsertProgressRequest true "进度"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) UpsertProgress(ctx *gin.Context) {
	var req UpsertProgressRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidPayload)
		return
	}

	if _, err := c.ProgressService.UpsertProgress(ctx.Request.Context(), req.SessionID, req.ModuleSlug, bool(req.Completed)); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 记录事件
// @Tags 进度
// @Accept json
// @Produce json
// @Param event body EventRequest true "事件"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/event [post]
func (c *ProgressController) RecordEvent(ctx *gin.Context) {
	var req EventRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidPayload)
		return
	}

	err := c.ProgressService.RecordEvent(ctx.Request.Context(), service.EventInput{
		SessionID: req.SessionID,
		EventType: req.EventType,
		ModuleKey: req.ModuleSlug,
		Page:      req.Page,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
