package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
)

type mockRoadmapRepo struct {
	roadmaps []domain.Roadmap
}

func (r *mockRoadmapRepo) Create(_ context.Context, roadmap *domain.Roadmap) error {
	r.roadmaps = append(r.roadmaps, *roadmap)
	return nil
}

func (r *mockRoadmapRepo) ListByUser(_ context.Context, userID string, limit int) ([]domain.Roadmap, error) {
	var out []domain.Roadmap
	for _, rm := range r.roadmaps {
		if rm.UserID == userID {
			out = append(out, rm)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *mockRoadmapRepo) FindByID(_ context.Context, userID, roadmapID string) (*domain.Roadmap, error) {
	for _, rm := range r.roadmaps {
		if rm.RoadmapID == roadmapID && rm.UserID == userID {
			copied := rm
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockRoadmapRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, rm := range r.roadmaps {
		if rm.UserID == userID {
			count++
		}
	}
	return count, nil
}

func TestGeneratePersistsRoadmap(t *testing.T) {
	roadmaps := &mockRoadmapRepo{}
	gateway := &mockGateway{response: "Step 1: learn the basics."}
	events := &mockEvents{}
	svc := NewRoadmapService(zerolog.Nop(), roadmaps, gateway, events)

	result, err := svc.Generate(context.Background(), "t1", "user_1", "Data Scientist", "")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.HasPrefix(result.RoadmapID, "roadmap_") {
		t.Fatalf("unexpected roadmap id: %s", result.RoadmapID)
	}
	if len(roadmaps.roadmaps) != 1 {
		t.Fatalf("expected one persisted roadmap, got %d", len(roadmaps.roadmaps))
	}

	saved := roadmaps.roadmaps[0]
	if saved.ExperienceLevel != "beginner" {
		t.Fatalf("expected default experience level, got %s", saved.ExperienceLevel)
	}
	if saved.Content != "Step 1: learn the basics." {
		t.Fatalf("unexpected content: %s", saved.Content)
	}
	if events.roadmapEvents != 1 {
		t.Fatalf("expected one roadmap event, got %d", events.roadmapEvents)
	}
}

func TestGenerateGatewayFailureSkipsPersistence(t *testing.T) {
	roadmaps := &mockRoadmapRepo{}
	gateway := &mockGateway{err: errors.New("provider down")}
	svc := NewRoadmapService(zerolog.Nop(), roadmaps, gateway, nil)

	result, err := svc.Generate(context.Background(), "t1", "user_1", "Data Scientist", "beginner")
	if err != nil {
		t.Fatalf("gateway failure must not fail the request: %v", err)
	}
	if result.Roadmap != roadmapFallbackText {
		t.Fatalf("expected fallback text, got %q", result.Roadmap)
	}
	if result.RoadmapID != "" {
		t.Fatalf("expected no roadmap id, got %s", result.RoadmapID)
	}
	if len(roadmaps.roadmaps) != 0 {
		t.Fatal("nothing should be persisted on gateway failure")
	}
}

func TestGetIsOwnerScoped(t *testing.T) {
	roadmaps := &mockRoadmapRepo{roadmaps: []domain.Roadmap{{
		RoadmapID:   "roadmap_abc",
		UserID:      "user_b",
		CareerTitle: "Nurse",
		CreatedAt:   time.Now().UTC(),
	}}}
	svc := NewRoadmapService(zerolog.Nop(), roadmaps, &mockGateway{}, nil)

	// The owner sees it.
	if _, err := svc.Get(context.Background(), "user_b", "roadmap_abc"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Anyone else gets the same NotFound as for an absent id.
	if _, err := svc.Get(context.Background(), "user_a", "roadmap_abc"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign roadmap, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "user_b", "roadmap_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent roadmap, got %v", err)
	}
}
