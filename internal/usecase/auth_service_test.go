package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/config"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/identity"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
)

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*domain.User{}}
}

func (r *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) UpdateProfile(_ context.Context, id, name, picture string) error {
	if u, ok := r.users[id]; ok {
		u.Name = name
		u.Picture = picture
	}
	return nil
}

type mockSessionRepo struct {
	sessions map[string]*domain.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*domain.Session{}}
}

func (r *mockSessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.sessions[session.SessionToken] = session
	return nil
}

func (r *mockSessionRepo) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	if s, ok := r.sessions[token]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

type mockIdentity struct {
	identity *identity.Identity
	err      error
	calls    int
}

func (m *mockIdentity) Exchange(_ context.Context, _ string) (*identity.Identity, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	copied := *m.identity
	return &copied, nil
}

type mockEvents struct {
	sessionEvents int
	roadmapEvents int
}

func (m *mockEvents) SessionCreated(_, _ string) error { m.sessionEvents++; return nil }

func (m *mockEvents) RoadmapCreated(_, _, _ string) error { m.roadmapEvents++; return nil }

func newAuthFixture(idc *mockIdentity) (AuthService, *mockUserRepo, *mockSessionRepo, *mockEvents) {
	cfg := &config.Config{SessionTTL: 7 * 24 * time.Hour}
	users := newMockUserRepo()
	sessions := newMockSessionRepo()
	events := &mockEvents{}
	svc := NewAuthService(cfg, zerolog.Nop(), users, sessions, idc, events)
	return svc, users, sessions, events
}

func TestResolveMissingToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(&mockIdentity{})
	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(&mockIdentity{})
	if _, err := svc.Resolve(context.Background(), "nope"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestResolveExpiredSession(t *testing.T) {
	svc, users, sessions, _ := newAuthFixture(&mockIdentity{})
	users.users["user_1"] = &domain.User{UserID: "user_1", Email: "a@b.c"}
	sessions.sessions["tok"] = &domain.Session{
		UserID:       "user_1",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	if _, err := svc.Resolve(context.Background(), "tok"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestResolveExpiryComparedInUTC(t *testing.T) {
	svc, users, sessions, _ := newAuthFixture(&mockIdentity{})
	users.users["user_1"] = &domain.User{UserID: "user_1", Email: "a@b.c"}

	// An expiry stored in a non-UTC zone must still compare correctly.
	east := time.FixedZone("UTC+5", 5*3600)
	sessions.sessions["live"] = &domain.Session{
		UserID:       "user_1",
		SessionToken: "live",
		ExpiresAt:    time.Now().In(east).Add(time.Hour),
	}
	sessions.sessions["dead"] = &domain.Session{
		UserID:       "user_1",
		SessionToken: "dead",
		ExpiresAt:    time.Now().In(east).Add(-time.Hour),
	}

	if user, err := svc.Resolve(context.Background(), "live"); err != nil || user.UserID != "user_1" {
		t.Fatalf("expected live session to resolve, got %v / %v", user, err)
	}
	if _, err := svc.Resolve(context.Background(), "dead"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestResolveOrphanedSession(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(&mockIdentity{})
	sessions.sessions["tok"] = &domain.Session{
		UserID:       "user_gone",
		SessionToken: "tok",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	if _, err := svc.Resolve(context.Background(), "tok"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestExchangeCreatesUserAndSession(t *testing.T) {
	idc := &mockIdentity{identity: &identity.Identity{
		Email:        "new@example.com",
		Name:         "New User",
		Picture:      "https://pic",
		SessionToken: "provider-token",
	}}
	svc, users, sessions, events := newAuthFixture(idc)

	user, token, err := svc.Exchange(context.Background(), "t1", "sess-id")
	if err != nil {
		t.Fatalf("exchange failed: %v", err)
	}
	if token != "provider-token" {
		t.Fatalf("unexpected token: %s", token)
	}
	if !strings.HasPrefix(user.UserID, "user_") || len(user.UserID) != len("user_")+12 {
		t.Fatalf("unexpected user id format: %s", user.UserID)
	}
	if len(users.users) != 1 || len(sessions.sessions) != 1 {
		t.Fatalf("expected one user and one session, got %d / %d", len(users.users), len(sessions.sessions))
	}
	if events.sessionEvents != 1 {
		t.Fatalf("expected one session event, got %d", events.sessionEvents)
	}

	sess := sessions.sessions["provider-token"]
	if sess.UserID != user.UserID {
		t.Fatalf("session bound to wrong user: %s", sess.UserID)
	}
	if until := time.Until(sess.ExpiresAt); until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Fatalf("unexpected session expiry: %v", sess.ExpiresAt)
	}
}

func TestExchangeReauthKeepsUserID(t *testing.T) {
	idc := &mockIdentity{identity: &identity.Identity{
		Email:        "repeat@example.com",
		Name:         "First Name",
		SessionToken: "token-1",
	}}
	svc, users, sessions, _ := newAuthFixture(idc)

	first, _, err := svc.Exchange(context.Background(), "t1", "sess-1")
	if err != nil {
		t.Fatalf("first exchange failed: %v", err)
	}

	idc.identity.Name = "Renamed"
	idc.identity.SessionToken = "token-2"
	second, _, err := svc.Exchange(context.Background(), "t2", "sess-2")
	if err != nil {
		t.Fatalf("second exchange failed: %v", err)
	}

	if first.UserID != second.UserID {
		t.Fatalf("user id changed on re-auth: %s vs %s", first.UserID, second.UserID)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected a single user, got %d", len(users.users))
	}
	if len(sessions.sessions) != 2 {
		t.Fatalf("expected one session per exchange, got %d", len(sessions.sessions))
	}
	if users.users[first.UserID].Name != "Renamed" {
		t.Fatalf("display name not updated: %s", users.users[first.UserID].Name)
	}
}

func TestExchangeUpstreamRejection(t *testing.T) {
	idc := &mockIdentity{err: domain.ErrUpstreamAuth}
	svc, users, sessions, _ := newAuthFixture(idc)

	if _, _, err := svc.Exchange(context.Background(), "t1", "bad"); !errors.Is(err, domain.ErrUpstreamAuth) {
		t.Fatalf("expected ErrUpstreamAuth, got %v", err)
	}
	if len(users.users) != 0 || len(sessions.sessions) != 0 {
		t.Fatal("nothing should be persisted on upstream rejection")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(&mockIdentity{})
	sessions.sessions["tok"] = &domain.Session{UserID: "u", SessionToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}

	if err := svc.Destroy(context.Background(), "t1", "tok"); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}
	if err := svc.Destroy(context.Background(), "t1", "tok"); err != nil {
		t.Fatalf("second destroy must not fail: %v", err)
	}
	if err := svc.Destroy(context.Background(), "t1", "never-existed"); err != nil {
		t.Fatalf("destroying absent token must not fail: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("session not removed")
	}
}
