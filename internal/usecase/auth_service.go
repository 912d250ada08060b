package usecase

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/config"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/identity"
	natsadapter "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/nats"
	repo "github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/adapters/postgres"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	pkglog "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/log"
)

// AuthService is the session store: it exchanges provider session ids for
// internal sessions, resolves opaque tokens to users and destroys
// sessions on logout.
type AuthService interface {
	Exchange(ctx context.Context, traceID, sessionID string) (*domain.User, string, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
	Destroy(ctx context.Context, traceID, token string) error
}

type authService struct {
	cfg      *config.Config
	logger   pkglog.Logger
	users    repo.UserRepository
	sessions repo.SessionRepository
	identity identity.Client
	events   natsadapter.EventPublisher
}

func NewAuthService(cfg *config.Config, logger pkglog.Logger, users repo.UserRepository, sessions repo.SessionRepository, idc identity.Client, events natsadapter.EventPublisher) AuthService {
	return &authService{cfg: cfg, logger: logger, users: users, sessions: sessions, identity: idc, events: events}
}

// Exchange verifies the provider session id, reuses or mints the internal
// user and always inserts a fresh session row. Other sessions of the same
// user stay untouched.
func (s *authService) Exchange(ctx context.Context, traceID, sessionID string) (*domain.User, string, error) {
	ident, err := s.identity.Exchange(ctx, sessionID)
	if err != nil {
		s.logger.Warn().Str("trace_id", traceID).Err(err).Msg("identity exchange failed")
		return nil, "", err
	}

	user, err := s.users.FindByEmail(ctx, ident.Email)
	switch {
	case err == nil:
		// Same email, same user_id forever; only display fields move.
		if err := s.users.UpdateProfile(ctx, user.UserID, ident.Name, ident.Picture); err != nil {
			return nil, "", err
		}
		user.Name = ident.Name
		user.Picture = ident.Picture
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &domain.User{
			UserID:    newID("user"),
			Email:     ident.Email,
			Name:      ident.Name,
			Picture:   ident.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", err
		}
	default:
		return nil, "", err
	}

	session := &domain.Session{
		UserID:       user.UserID,
		SessionToken: ident.SessionToken,
		ExpiresAt:    time.Now().UTC().Add(s.cfg.SessionTTL),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	if s.events != nil {
		if err := s.events.SessionCreated(user.UserID, user.Email); err != nil {
			s.logger.Warn().Str("trace_id", traceID).Err(err).Msg("session event publish failed")
		}
	}

	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.UserID).Msg("session created")
	return user, ident.SessionToken, nil
}

// Resolve maps a token to its user. Expiry is checked here, in UTC, on
// every lookup; expired rows are left in place.
func (s *authService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}
	if !session.ExpiresAt.UTC().After(time.Now().UTC()) {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Destroy(ctx context.Context, traceID, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return err
	}
	s.logger.Info().Str("trace_id", traceID).Msg("session destroyed")
	return nil
}
