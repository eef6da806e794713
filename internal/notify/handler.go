package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"suppai-backend/internal/shared/server/respond"
	"suppai-backend/internal/survey"
)

// EmailPayload is the send-email request body.
type EmailPayload struct {
	Email           string                  `json:"email" binding:"required,email"`
	Recommendations []survey.Recommendation `json:"recommendations"`
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches notify routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email", h.sendEmail)
}

func (h *Handler) sendEmail(c *gin.Context) {
	var req EmailPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, h.Svc.Queue(req.Email, req.Recommendations))
}
