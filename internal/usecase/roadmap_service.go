package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/llm"
	natsadapter "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/nats"
	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	pkglog "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/log"
)

const (
	roadmapListLimit = 50

	roadmapSystemPrompt = "You are a career development expert. Create detailed, actionable learning roadmaps."

	roadmapFallbackText = "Unable to generate roadmap at this time."
)

type GenerateResult struct {
	Roadmap   string
	RoadmapID string
}

// RoadmapService generates immutable AI-authored roadmaps and serves
// owner-scoped reads over them.
type RoadmapService interface {
	Generate(ctx context.Context, traceID, userID, careerTitle, experienceLevel string) (*GenerateResult, error)
	List(ctx context.Context, userID string) ([]domain.Roadmap, error)
	Get(ctx context.Context, userID, roadmapID string) (*domain.Roadmap, error)
}

type roadmapService struct {
	logger   pkglog.Logger
	roadmaps repo.RoadmapRepository
	gateway  llm.Client
	events   natsadapter.EventPublisher
}

func NewRoadmapService(logger pkglog.Logger, roadmaps repo.RoadmapRepository, gateway llm.Client, events natsadapter.EventPublisher) RoadmapService {
	return &roadmapService{logger: logger, roadmaps: roadmaps, gateway: gateway, events: events}
}

func (s *roadmapService) Generate(ctx context.Context, traceID, userID, careerTitle, experienceLevel string) (*GenerateResult, error) {
	if experienceLevel == "" {
		experienceLevel = defaultExperienceLevel
	}

	prompt := fmt.Sprintf(`Create a detailed learning roadmap for becoming a %s.
User's current level: %s

Include:
1. Step-by-step learning path (6-8 steps)
2. Key skills to develop at each step
3. Recommended resources (courses, books, projects)
4. Estimated time for each step

Format as a structured response with clear sections.`, careerTitle, experienceLevel)

	content, err := s.gateway.Complete(ctx, roadmapSystemPrompt, nil, prompt)
	if err != nil {
		// Nothing is persisted for a failed generation; the caller gets
		// fallback text and no id.
		s.logger.Warn().Str("trace_id", traceID).Str("user_id", userID).Err(err).Msg("roadmap generation failed")
		return &GenerateResult{Roadmap: roadmapFallbackText}, nil
	}

	roadmap := &domain.Roadmap{
		RoadmapID:       newID("roadmap"),
		UserID:          userID,
		CareerTitle:     careerTitle,
		Description:     fmt.Sprintf("Learning path for %s", careerTitle),
		Content:         content,
		ExperienceLevel: experienceLevel,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.roadmaps.Create(ctx, roadmap); err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.RoadmapCreated(userID, roadmap.RoadmapID, careerTitle); err != nil {
			s.logger.Warn().Str("trace_id", traceID).Err(err).Msg("roadmap event publish failed")
		}
	}

	s.logger.Info().Str("trace_id", traceID).Str("user_id", userID).Str("roadmap_id", roadmap.RoadmapID).Msg("roadmap generated")
	return &GenerateResult{Roadmap: content, RoadmapID: roadmap.RoadmapID}, nil
}

func (s *roadmapService) List(ctx context.Context, userID string) ([]domain.Roadmap, error) {
	return s.roadmaps.ListByUser(ctx, userID, roadmapListLimit)
}

// Get treats a roadmap owned by someone else exactly like a missing one.
func (s *roadmapService) Get(ctx context.Context, userID, roadmapID string) (*domain.Roadmap, error) {
	roadmap, err := s.roadmaps.FindByID(ctx, userID, roadmapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return roadmap, nil
}
