package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"travelhelper/pkg/llm"
)

// InferenceFallbackText replaces the model output when the call fails. It is
// stored and returned like any other itinerary.
const InferenceFallbackText = "Error in LLM"

type InferenceServiceInterface interface {
	Infer(ctx context.Context, prompt string) string
}

type InferenceService struct {
	client  llm.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewInferenceService binds a client to one model. A zero timeout leaves
// deadlines to the caller's context and the client.
func NewInferenceService(client llm.Client, model string, timeout time.Duration, logger *zap.Logger) InferenceServiceInterface {
	return &InferenceService{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

func (s *InferenceService) Infer(ctx context.Context, prompt string) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.client.Infer(ctx, s.model, prompt)
	if err != nil {
		s.logger.Error("Inference failed, using fallback text",
			zap.String("model", s.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return InferenceFallbackText
	}

	s.logger.Info("Inference completed",
		zap.String("model", s.model),
		zap.Int("chars", len(text)),
		zap.Duration("elapsed", time.Since(start)))
	return text
}
