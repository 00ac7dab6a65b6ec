package services

import (
	"context"

	"go.uber.org/zap"
	"travelhelper/internal/models/request_models"
	"travelhelper/internal/models/response_models"
	"travelhelper/internal/repositories"
)

type TagSource interface {
	Generate() string
}

type ItineraryServiceInterface interface {
	// Retrieve reports false for every non-hit outcome; the caller then
	// treats the request as a generation request.
	Retrieve(ctx context.Context, tag string) (response_models.ItineraryResponse, bool)
	// Generate never fails: inference and storage problems are logged and
	// the caller still gets the text and the new tag.
	Generate(ctx context.Context, req request_models.GenerationRequest) response_models.ItineraryResponse
}

type ItineraryService struct {
	repo           repositories.ItineraryRepositoryInterface
	inference      InferenceServiceInterface
	tags           TagSource
	maxTagAttempts int
	logger         *zap.Logger
}

func NewItineraryService(
	repo repositories.ItineraryRepositoryInterface,
	inference InferenceServiceInterface,
	tags TagSource,
	maxTagAttempts int,
	logger *zap.Logger,
) ItineraryServiceInterface {
	if maxTagAttempts < 1 {
		maxTagAttempts = 1
	}
	return &ItineraryService{
		repo:           repo,
		inference:      inference,
		tags:           tags,
		maxTagAttempts: maxTagAttempts,
		logger:         logger,
	}
}

func (s *ItineraryService) Retrieve(ctx context.Context, tag string) (response_models.ItineraryResponse, bool) {
	lookup := s.repo.Fetch(ctx, tag)
	switch lookup.Status {
	case repositories.LookupHit:
		return response_models.ItineraryResponse{Itinerary: lookup.Itinerary, Tag: tag}, true
	case repositories.LookupBackendError:
		s.logger.Warn("Itinerary lookup failed", zap.String("tag", tag), zap.Error(lookup.Err))
	case repositories.LookupUndecodable:
		s.logger.Warn("Stored itinerary is not valid UTF-8", zap.String("tag", tag))
	default:
		s.logger.Info("No tag found", zap.String("tag", tag))
	}
	return response_models.ItineraryResponse{}, false
}

func (s *ItineraryService) Generate(ctx context.Context, req request_models.GenerationRequest) response_models.ItineraryResponse {
	prompt := BuildItineraryPrompt(req)
	text := s.inference.Infer(ctx, prompt)

	tag := s.newTag(ctx)
	if err := s.repo.Store(ctx, tag, text); err != nil {
		s.logger.Error("Failed to save data", zap.String("tag", tag), zap.Error(err))
	} else {
		s.logger.Info("Data saved successfully", zap.String("tag", tag))
	}

	return response_models.ItineraryResponse{Itinerary: text, Tag: tag}
}

// newTag draws a fresh tag. With a single attempt the store is not consulted;
// otherwise candidates already holding an itinerary are skipped. Any
// non-hit lookup, including a backend error, counts as free.
func (s *ItineraryService) newTag(ctx context.Context) string {
	tag := s.tags.Generate()
	for attempt := 1; attempt < s.maxTagAttempts; attempt++ {
		if !s.repo.Fetch(ctx, tag).Found() {
			return tag
		}
		s.logger.Warn("Tag collision, drawing another", zap.String("tag", tag), zap.Int("attempt", attempt))
		tag = s.tags.Generate()
	}
	return tag
}
