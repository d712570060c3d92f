package controller

import (
	"learnhub/internal/service"
	"learnhub/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// NextQuestionResponse keeps data present as null once the module is completed.
type NextQuestionResponse struct {
	Status    string                `json:"status"`
	Data      *service.QuestionView `json:"data"`
	Completed bool                  `json:"completed"`
	Remaining int                   `json:"remaining"`
	Total     int                   `json:"total"`
}

type SubmitAnswerRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	Selected   string `json:"selected"`
}

// @Summary 获取下一道题
// @Description 返回该会话尚未答对的第一道题，全部答对后 data 为 null
// @Tags 测验
// @Produce json
// @Param course path string true "课程 slug"
// @Param module path string true "模块 slug"
// @Param session_id query string true "会话 ID"
// @Success 200 {object} NextQuestionResponse
// @Failure 400 {object} util.Response
// @Router /api/quiz/{course}/{module} [get]
func (c *QuizController) Next(ctx *gin.Context) {
	result, err := c.QuizService.NextQuestion(
		ctx.Request.Context(),
		ctx.Param("course"),
		ctx.Param("module"),
		ctx.Query("session_id"),
	)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NextQuestionResponse{
		Status:    util.StatusSuccess,
		Data:      result.Question,
		Completed: result.Completed,
		Remaining: result.Remaining,
		Total:     result.Total,
	})
}

// @Summary 提交答案
// @Tags 测验
// @Accept json
// @Produce json
// @Param course path string true "课程 slug"
// @Param module path string true "模块 slug"
// @Param answer body SubmitAnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.SubmitAnswerResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quiz/{course}/{module} [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := bindJSON(ctx, &req); err != nil {
		util.BadRequest(ctx, invalidPayload)
		return
	}

	result, err := c.QuizService.SubmitAnswer(ctx.Request.Context(), service.SubmitAnswerInput{
		CourseSlug: ctx.Param("course"),
		ModuleSlug: ctx.Param("module"),
		SessionID:  req.SessionID,
		QuestionID: req.QuestionID,
		Selected:   req.Selected,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
