package natsadapter

import (
	"encoding/json"
	"time"

	nats "github.com/nats-io/nats.go"
)

// EventPublisher emits best-effort domain events. Publishing failures are
// swallowed by callers; the bus is an observer, never a dependency of the
// request path.
type EventPublisher interface {
	SessionCreated(userID, email string) error
	RoadmapCreated(userID, roadmapID, careerTitle string) error
}

type publisher struct {
	conn           *nats.Conn
	sessionSubject string
	roadmapSubject string
}

func NewEventPublisher(conn *nats.Conn, sessionSubject, roadmapSubject string) EventPublisher {
	return &publisher{conn: conn, sessionSubject: sessionSubject, roadmapSubject: roadmapSubject}
}

func (p *publisher) SessionCreated(userID, email string) error {
	return p.publish(p.sessionSubject, map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"created_at": time.Now().UTC(),
	})
}

func (p *publisher) RoadmapCreated(userID, roadmapID, careerTitle string) error {
	return p.publish(p.roadmapSubject, map[string]interface{}{
		"user_id":      userID,
		"roadmap_id":   roadmapID,
		"career_title": careerTitle,
		"created_at":   time.Now().UTC(),
	})
}

func (p *publisher) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.conn.Publish(subject, data)
}
