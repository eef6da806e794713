package bootstrap

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"suppai-backend/internal/notify"
	"suppai-backend/internal/services/health"
	"suppai-backend/internal/shared/config"
	"suppai-backend/internal/shared/server"
	"suppai-backend/internal/shared/telemetry"
	"suppai-backend/internal/survey"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Log    *zap.Logger
	Router *gin.Engine

	SurveyService *survey.Service
	NotifyService *notify.Service
	Health        *health.Service
}

// Build wires services, handlers and the router.
func Build(cfg config.Config) (*App, error) {
	log := telemetry.New(cfg.LogLevel, cfg.LogFormat)

	surveySvc := survey.NewService(log, cfg.PackageImageURL)
	notifySvc := notify.NewService(log)
	healthSvc := health.NewService()

	app := &App{
		Config:        cfg,
		Log:           log,
		SurveyService: surveySvc,
		NotifyService: notifySvc,
		Health:        healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Log:           log,
		SurveyHandler: survey.NewHandler(surveySvc),
		NotifyHandler: notify.NewHandler(notifySvc),
		Health:        healthSvc,
	})

	return app, nil
}
