package domain

import "time"

// CareerProfile holds the caller's self-described background used for
// recommendations. At most one row per user; writes replace the mutable
// fields wholesale.
type CareerProfile struct {
	ProfileID           string    `gorm:"primaryKey" json:"profile_id"`
	UserID              string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Interests           []string  `gorm:"type:jsonb;serializer:json" json:"interests"`
	Skills              []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	ExperienceLevel     string    `gorm:"not null" json:"experience_level"`
	PreferredIndustries []string  `gorm:"type:jsonb;serializer:json" json:"preferred_industries"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CareerProfile) TableName() string { return "career_profile" }

// Roadmap is an AI-authored learning plan. Immutable once generated;
// reads are always scoped to the owning user.
type Roadmap struct {
	RoadmapID       string    `gorm:"primaryKey" json:"roadmap_id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	CareerTitle     string    `gorm:"not null" json:"career_title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	ExperienceLevel string    `json:"experience_level"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Roadmap) TableName() string { return "roadmap" }
