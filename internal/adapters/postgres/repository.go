package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, picture string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	FindByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	History(ctx context.Context, userID, conversationID string, limit int) ([]domain.ChatMessage, error)
	AllMessages(ctx context.Context, userID, conversationID string) ([]domain.ChatMessage, error)
	ListConversations(ctx context.Context, userID string, limit int) ([]domain.ConversationSummary, error)
	CountInConversation(ctx context.Context, userID, conversationID string) (int64, error)
	CountByRole(ctx context.Context, userID, role string) (int64, error)
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.CareerProfile) error
	FindByUserID(ctx context.Context, userID string) (*domain.CareerProfile, error)
}

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *domain.Roadmap) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roadmap, error)
	FindByID(ctx context.Context, userID, roadmapID string) (*domain.Roadmap, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type userRepo struct{ db *gorm.DB }

type sessionRepo struct{ db *gorm.DB }

type messageRepo struct{ db *gorm.DB }

type profileRepo struct{ db *gorm.DB }

type roadmapRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository       { return &userRepo{db: db} }
func NewSessionRepository(db *gorm.DB) SessionRepository { return &sessionRepo{db: db} }
func NewMessageRepository(db *gorm.DB) MessageRepository { return &messageRepo{db: db} }
func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepo{db: db} }
func NewRoadmapRepository(db *gorm.DB) RoadmapRepository { return &roadmapRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id, name, picture string) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ?", id).
		Updates(map[string]interface{}{"name": name, "picture": picture}).Error
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken is idempotent: deleting an absent token is not an error.
func (r *sessionRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&domain.Session{}).Error
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepo) History(ctx context.Context, userID, conversationID string, limit int) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("timestamp ASC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) AllMessages(ctx context.Context, userID, conversationID string) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("timestamp ASC").
		Find(&messages).Error
	return messages, err
}

// ListConversations recomputes the grouped view from the message table on
// every call; there is no stored summary to keep in sync.
func (r *messageRepo) ListConversations(ctx context.Context, userID string, limit int) ([]domain.ConversationSummary, error) {
	type row struct {
		ConversationID string
		MessageCount   int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Select("conversation_id, COUNT(*) AS message_count").
		Where("user_id = ?", userID).
		Group("conversation_id").
		Order("MAX(timestamp) DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ConversationSummary, 0, len(rows))
	for _, g := range rows {
		var last domain.ChatMessage
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND conversation_id = ?", userID, g.ConversationID).
			Order("timestamp DESC").
			First(&last).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		summaries = append(summaries, domain.ConversationSummary{
			ConversationID: g.ConversationID,
			LastMessage:    last,
			MessageCount:   g.MessageCount,
		})
	}
	return summaries, nil
}

func (r *messageRepo) CountInConversation(ctx context.Context, userID, conversationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Count(&count).Error
	return count, err
}

func (r *messageRepo) CountByRole(ctx context.Context, userID, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.ChatMessage{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count, err
}

// Upsert replaces the mutable profile fields for the user, keyed on
// user_id; a user holds at most one profile row.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.CareerProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"interests", "skills", "experience_level", "preferred_industries", "updated_at"}),
		}).
		Create(profile).Error
}

func (r *profileRepo) FindByUserID(ctx context.Context, userID string) (*domain.CareerProfile, error) {
	var profile domain.CareerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *roadmapRepo) Create(ctx context.Context, roadmap *domain.Roadmap) error {
	return r.db.WithContext(ctx).Create(roadmap).Error
}

func (r *roadmapRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Roadmap, error) {
	var roadmaps []domain.Roadmap
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&roadmaps).Error
	return roadmaps, err
}

func (r *roadmapRepo) FindByID(ctx context.Context, userID, roadmapID string) (*domain.Roadmap, error) {
	var roadmap domain.Roadmap
	if err := r.db.WithContext(ctx).
		Where("roadmap_id = ? AND user_id = ?", roadmapID, userID).
		First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *roadmapRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Roadmap{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
