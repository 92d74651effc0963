package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrVideoSessionNotFound = errors.New("video session not found")

type VideoSessionRequest struct {
	ConsultationID string
	DoctorID       int
	PatientID      string
}

type VideoSession struct {
	ID        string    `json:"id"`
	RoomURL   string    `json:"roomUrl"`
	StartedAt time.Time `json:"startedAt"`
}

// VideoGateway is the boundary to the video call provider.
type VideoGateway interface {
	EstablishSession(ctx context.Context, req VideoSessionRequest) (VideoSession, error)
	TearDownSession(ctx context.Context, sessionID string) error
}

// MockVideoGateway opens a fake room after the doctor connecting delay.
type MockVideoGateway struct {
	delay    time.Duration
	baseURL  string
	mu       sync.Mutex
	sessions map[string]VideoSession
}

func NewMockVideoGateway(delay time.Duration, baseURL string) *MockVideoGateway {
	return &MockVideoGateway{delay: delay, baseURL: baseURL, sessions: make(map[string]VideoSession)}
}

func (g *MockVideoGateway) EstablishSession(ctx context.Context, req VideoSessionRequest) (VideoSession, error) {
	if err := sleepContext(ctx, g.delay); err != nil {
		return VideoSession{}, err
	}

	id := uuid.New().String()
	session := VideoSession{
		ID:        id,
		RoomURL:   g.baseURL + "/video/rooms/" + id,
		StartedAt: time.Now(),
	}

	g.mu.Lock()
	g.sessions[id] = session
	g.mu.Unlock()
	return session, nil
}

func (g *MockVideoGateway) TearDownSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[sessionID]; !ok {
		return ErrVideoSessionNotFound
	}
	delete(g.sessions, sessionID)
	return nil
}
