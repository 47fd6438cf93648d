package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/middleware"
	"github.com/uema-profitec/sigep-api/internal/service"
)

// Router bundles every handler so main can mount the API in one call.
type Router struct {
	Auth        *AuthHandler
	Professors  *ProfessorHandler
	Disciplines *DisciplineHandler
	Semesters   *SemesterHandler
	Dashboard   *DashboardHandler
	Reports     *ReportHandler
	Chat        *ChatHandler
	Metrics     *MetricsHandler

	AuthService *service.AuthService
}

// Register mounts all API routes under the given prefix. Everything
// except login and the scrape endpoint sits behind the JWT guard.
func (rt *Router) Register(r *gin.Engine, prefix string) {
	api := r.Group(prefix)

	api.POST("/auth/login", rt.Auth.Login)
	api.GET("/metrics", rt.Metrics.Prometheus)

	protected := api.Group("")
	protected.Use(middleware.JWT(rt.AuthService))

	protected.GET("/professors", rt.Professors.List)
	protected.GET("/professors/export", rt.Professors.ExportCSV)
	protected.GET("/professors/:id", rt.Professors.Get)
	protected.POST("/professors", rt.Professors.Create)
	protected.PUT("/professors/:id", rt.Professors.Update)
	protected.POST("/professors/:id/documents", rt.Professors.AddDocument)
	protected.DELETE("/professors/:id/documents/:docID", rt.Professors.RemoveDocument)
	protected.GET("/professors/:id/documents/:docID/download", rt.Professors.DownloadDocument)

	protected.GET("/disciplines", rt.Disciplines.List)
	protected.POST("/disciplines", rt.Disciplines.Create)
	protected.PUT("/disciplines/:id", rt.Disciplines.Update)

	protected.GET("/semesters", rt.Semesters.List)
	protected.GET("/semesters/:id", rt.Semesters.Get)
	protected.POST("/semesters", rt.Semesters.Create)
	protected.PUT("/semesters/:id", rt.Semesters.Update)
	protected.PATCH("/semesters/:id/status", rt.Semesters.UpdateStatus)
	protected.POST("/semesters/:id/offerings", rt.Semesters.AddOffering)
	protected.DELETE("/semesters/:id/offerings/:offeringID", rt.Semesters.RemoveOffering)

	protected.GET("/dashboard", rt.Dashboard.Stats)

	protected.GET("/reports/workload", rt.Reports.Workload)
	protected.GET("/reports/workload/print", rt.Reports.WorkloadPrint)

	protected.GET("/chat/messages", rt.Chat.Transcript)
	protected.POST("/chat/messages", rt.Chat.Send)
}
