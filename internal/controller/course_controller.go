package controller

import (
	"learnhub/internal/service"
	"learnhub/internal/util"

	"github.com/gin-gonic/gin"
)

// CourseController 处理课程页面的请求
type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 课程列表
// @Description 首页课程卡片，按固定顺序、难度、标题排序
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]content.CourseSummary}
// @Router / [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	util.Success(ctx, c.CourseService.ListCourses())
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param course path string true "课程 slug"
// @Success 200 {object} util.Response{data=service.CourseView}
// @Failure 404 {object} util.Response
// @Router /courses/{course} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	view, err := c.CourseService.GetCourse(ctx.Param("course"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 模块详情
// @Tags 课程
// @Produce json
// @Param course path string true "课程 slug"
// @Param module path string true "模块 slug"
// @Success 200 {object} util.Response{data=service.ModuleView}
// @Failure 404 {object} util.Response
// @Router /courses/{course}/modules/{module} [get]
func (c *CourseController) GetModule(ctx *gin.Context) {
	view, err := c.CourseService.GetModule(ctx.Param("course"), ctx.Param("module"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
