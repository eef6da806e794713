package survey

import (
	"go.uber.org/zap"

	"suppai-backend/internal/shared/metrics"
)

// Service wraps the rule engine with the static response envelope.
type Service struct {
	Log             *zap.Logger
	PackageImageURL string
}

// NewService constructs a Service.
func NewService(log *zap.Logger, packageImageURL string) *Service {
	return &Service{Log: log, PackageImageURL: packageImageURL}
}

// Recommend runs the rule engine and assembles the result envelope.
func (s *Service) Recommend(in SurveyResponse) RecommendationResult {
	recs := BuildRecommendations(in)

	for _, rec := range recs {
		metrics.RecommendationsGenerated.WithLabelValues(rec.Name).Inc()
	}
	s.Log.Debug("recommendations built",
		zap.String("country", in.Country),
		zap.Int("count", len(recs)),
	)

	return RecommendationResult{
		PackageImageURL: s.PackageImageURL,
		Recommendations: recs,
	}
}
