package server

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"suppai-backend/internal/notify"
	"suppai-backend/internal/services/health"
	"suppai-backend/internal/shared/config"
	"suppai-backend/internal/shared/server/middleware"
	"suppai-backend/internal/shared/server/respond"
	"suppai-backend/internal/survey"
)

// RouterDeps carries everything NewRouter needs to register routes.
type RouterDeps struct {
	Config        config.Config
	Log           *zap.Logger
	SurveyHandler *survey.Handler
	NotifyHandler *notify.Handler
	Health        *health.Service
}

var validatorOnce sync.Once

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	configureValidator()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.Metrics(),
		openCORS(),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group("")
	deps.SurveyHandler.RegisterRoutes(root)
	deps.NotifyHandler.RegisterRoutes(root)

	return r
}

// openCORS allows any origin; the API carries no credentials or auth.
func openCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Accept", "Origin", "X-Request-Id"},
		ExposeHeaders:   []string{"X-Request-Id"},
		MaxAge:          12 * time.Hour,
	})
}

// configureValidator makes binding errors report json field names instead of
// Go struct field names.
func configureValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
