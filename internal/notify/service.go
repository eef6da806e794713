package notify

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"suppai-backend/internal/survey"
)

// Ack acknowledges a queued recommendation email.
type Ack struct {
	Status string `json:"status"`
	Email  string `json:"email"`
	Count  int    `json:"count"`
}

// Service acknowledges recommendation emails without sending anything.
// A production deployment would hand the message to a transactional email
// provider here; this boundary only records the request.
type Service struct {
	Log *zap.Logger
}

// NewService constructs a Service.
func NewService(log *zap.Logger) *Service {
	return &Service{Log: log}
}

// Queue records the request and returns an acknowledgement.
func (s *Service) Queue(email string, recs []survey.Recommendation) Ack {
	s.Log.Info("email acknowledged",
		zap.String("message_id", uuid.NewString()),
		zap.String("email", email),
		zap.Int("recommendations", len(recs)),
	)

	return Ack{
		Status: "queued",
		Email:  email,
		Count:  len(recs),
	}
}
