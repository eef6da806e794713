package survey

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suppai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches survey routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	var req SurveyResponse
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, h.Svc.Recommend(req))
}
