package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
	json.Marshaler
}

type VideoCreated struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	ownerID    uuid.UUID
	occurredAt time.Time
}

func NewVideoCreated(videoID, ownerID uuid.UUID) *VideoCreated {
	return &VideoCreated{
		eventID:    uuid.New(),
		videoID:    videoID,
		ownerID:    ownerID,
		occurredAt: time.Now(),
	}
}

func (e *VideoCreated) EventID() uuid.UUID     { return e.eventID }
func (e *VideoCreated) EventType() string      { return "VideoCreated" }
func (e *VideoCreated) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoCreated) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoCreated) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		OwnerID    uuid.UUID `json:"owner_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{e.eventID, e.videoID, e.ownerID, e.occurredAt})
}

type VideoDeleted struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	ownerID    uuid.UUID
	occurredAt time.Time
}

func NewVideoDeleted(videoID, ownerID uuid.UUID) *VideoDeleted {
	return &VideoDeleted{
		eventID:    uuid.New(),
		videoID:    videoID,
		ownerID:    ownerID,
		occurredAt: time.Now(),
	}
}

func (e *VideoDeleted) EventID() uuid.UUID     { return e.eventID }
func (e *VideoDeleted) EventType() string      { return "VideoDeleted" }
func (e *VideoDeleted) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoDeleted) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoDeleted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		OwnerID    uuid.UUID `json:"owner_id"`
		OccurredAt time.Time `json:"occurred_at"`
	}{e.eventID, e.videoID, e.ownerID, e.occurredAt})
}

type VideoPublishChanged struct {
	eventID    uuid.UUID
	videoID    uuid.UUID
	published  bool
	occurredAt time.Time
}

func NewVideoPublishChanged(videoID uuid.UUID, published bool) *VideoPublishChanged {
	return &VideoPublishChanged{
		eventID:    uuid.New(),
		videoID:    videoID,
		published:  published,
		occurredAt: time.Now(),
	}
}

func (e *VideoPublishChanged) EventID() uuid.UUID     { return e.eventID }
func (e *VideoPublishChanged) EventType() string      { return "VideoPublishChanged" }
func (e *VideoPublishChanged) AggregateID() uuid.UUID { return e.videoID }
func (e *VideoPublishChanged) OccurredAt() time.Time  { return e.occurredAt }

func (e *VideoPublishChanged) Published() bool { return e.published }

func (e *VideoPublishChanged) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		EventID    uuid.UUID `json:"event_id"`
		VideoID    uuid.UUID `json:"video_id"`
		Published  bool      `json:"published"`
		OccurredAt time.Time `json:"occurred_at"`
	}{e.eventID, e.videoID, e.published, e.occurredAt})
}
