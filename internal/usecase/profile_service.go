package usecase

import (
	"context"
	"errors"

	"gorm.io/gorm"

	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
)

type UserStats struct {
	TotalChats    int64 `json:"total_chats"`
	TotalRoadmaps int64 `json:"total_roadmaps"`
}

type ProfileOverview struct {
	Stats         UserStats
	CareerProfile *domain.CareerProfile
}

// ProfileService aggregates per-user usage counts with the career
// profile, if one has been saved.
type ProfileService interface {
	Overview(ctx context.Context, userID string) (*ProfileOverview, error)
}

type profileService struct {
	messages repo.MessageRepository
	profiles repo.ProfileRepository
	roadmaps repo.RoadmapRepository
}

func NewProfileService(messages repo.MessageRepository, profiles repo.ProfileRepository, roadmaps repo.RoadmapRepository) ProfileService {
	return &profileService{messages: messages, profiles: profiles, roadmaps: roadmaps}
}

func (s *profileService) Overview(ctx context.Context, userID string) (*ProfileOverview, error) {
	totalChats, err := s.messages.CountByRole(ctx, userID, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	totalRoadmaps, err := s.roadmaps.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = nil
	}

	return &ProfileOverview{
		Stats:         UserStats{TotalChats: totalChats, TotalRoadmaps: totalRoadmaps},
		CareerProfile: profile,
	}, nil
}
