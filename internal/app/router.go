package app

import (
	"learnhub/docs"
	"learnhub/internal/middleware"
	"learnhub/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 页面路由
	router.GET("/", c.course.ListCourses)
	router.GET("/courses/:course", c.course.GetCourse)
	router.GET("/courses/:course/modules/:module", c.course.GetModule)

	api := router.Group("/api")
	api.Use(middleware.LoginRequired())
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/progress", c.progress.GetProgress)
		api.POST("/progress", c.progress.UpsertProgress)
		api.POST("/event", c.progress.RecordEvent)

		api.GET("/quiz/:course/:module", c.quiz.Next)
		api.POST("/quiz/:course/:module", c.quiz.Submit)
	}
}
