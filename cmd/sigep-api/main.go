package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uema-profitec/sigep-api/api/swagger"
	"github.com/uema-profitec/sigep-api/internal/handler"
	"github.com/uema-profitec/sigep-api/internal/llm"
	"github.com/uema-profitec/sigep-api/internal/middleware"
	"github.com/uema-profitec/sigep-api/internal/service"
	"github.com/uema-profitec/sigep-api/internal/store"
	"github.com/uema-profitec/sigep-api/pkg/config"
	"github.com/uema-profitec/sigep-api/pkg/export"
	"github.com/uema-profitec/sigep-api/pkg/logger"
	corsmiddleware "github.com/uema-profitec/sigep-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uema-profitec/sigep-api/pkg/middleware/requestid"
)

// @title SIGEP API
// @version 1.0.0
// @description Professor, discipline and semester management for the UEMA Profitec program, with an embedded AI assistant.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New()
	st.Subscribe(func() {
		logr.Debug("store mutated")
	})
	if cfg.Seed.Enabled {
		store.Seed(st)
		logr.Info("demo fixtures loaded")
	}

	validate := validator.New()

	metricsSvc := service.NewMetricsService(st)
	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	professorSvc := service.NewProfessorService(st, validate, logr)
	disciplineSvc := service.NewDisciplineService(st, validate, logr)
	semesterSvc := service.NewSemesterService(st, validate, logr)
	dashboardSvc := service.NewDashboardService(st, logr)
	reportSvc := service.NewReportService(st, logr)
	exportSvc := service.NewExportService(st, reportSvc, export.NewCSVExporter(), export.NewPDFExporter(), logr)

	gemini := llm.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	chatSvc := service.NewChatService(st, gemini, cfg.Gemini.APIKey != "", validate, logr)
	if cfg.Gemini.APIKey == "" {
		logr.Warn("GEMINI_API_KEY not set, assistant disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router := &handler.Router{
		Auth:        handler.NewAuthHandler(authSvc),
		Professors:  handler.NewProfessorHandler(professorSvc, exportSvc),
		Disciplines: handler.NewDisciplineHandler(disciplineSvc),
		Semesters:   handler.NewSemesterHandler(semesterSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Reports:     handler.NewReportHandler(reportSvc, exportSvc),
		Chat:        handler.NewChatHandler(chatSvc, metricsSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
		AuthService: authSvc,
	}
	router.Register(r, cfg.APIPrefix)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
