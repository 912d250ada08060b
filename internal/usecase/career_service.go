package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/llm"
	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	pkglog "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/log"
)

const (
	defaultExperienceLevel = "beginner"

	recommendSystemPrompt = "You are a career advisor. Provide 3-5 specific career recommendations based on the user's profile."

	recommendFallbackText = "Unable to generate recommendations at this time."
)

// RecommendInput is the validated profile payload; slices default to
// empty and the experience level to "beginner".
type RecommendInput struct {
	Interests           []string
	Skills              []string
	ExperienceLevel     string
	PreferredIndustries []string
}

type RecommendResult struct {
	Recommendations string
	ProfileID       string
}

// CareerService upserts the caller's career profile and asks the gateway
// for recommendations built from it.
type CareerService interface {
	Recommend(ctx context.Context, traceID, userID string, in RecommendInput) (*RecommendResult, error)
}

type careerService struct {
	logger   pkglog.Logger
	profiles repo.ProfileRepository
	gateway  llm.Client
}

func NewCareerService(logger pkglog.Logger, profiles repo.ProfileRepository, gateway llm.Client) CareerService {
	return &careerService{logger: logger, profiles: profiles, gateway: gateway}
}

func (s *careerService) Recommend(ctx context.Context, traceID, userID string, in RecommendInput) (*RecommendResult, error) {
	if in.ExperienceLevel == "" {
		in.ExperienceLevel = defaultExperienceLevel
	}
	if in.Interests == nil {
		in.Interests = []string{}
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	if in.PreferredIndustries == nil {
		in.PreferredIndustries = []string{}
	}

	profile := &domain.CareerProfile{
		ProfileID:           "profile_" + userID,
		UserID:              userID,
		Interests:           in.Interests,
		Skills:              in.Skills,
		ExperienceLevel:     in.ExperienceLevel,
		PreferredIndustries: in.PreferredIndustries,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Based on this profile, recommend suitable careers:
Interests: %s
Skills: %s
Experience Level: %s
Preferred Industries: %s

Provide 3-5 career recommendations with title, why it matches, and key skills needed.`,
		strings.Join(in.Interests, ", "),
		strings.Join(in.Skills, ", "),
		in.ExperienceLevel,
		strings.Join(in.PreferredIndustries, ", "))

	recommendations, err := s.gateway.Complete(ctx, recommendSystemPrompt, nil, prompt)
	if err != nil {
		// Profile is already saved; only the text degrades.
		s.logger.Warn().Str("trace_id", traceID).Str("user_id", userID).Err(err).Msg("recommendation failed")
		recommendations = recommendFallbackText
	}

	return &RecommendResult{Recommendations: recommendations, ProfileID: profile.ProfileID}, nil
}
