package usecase

import "time"

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EntityCreated OutboxEventType = "entity_created"
	EntityMoved   OutboxEventType = "entity_moved"
	EntityDeleted OutboxEventType = "entity_deleted"
)

// OutboxEvent — событие изменения каталога, публикуемое в Kafka
// через транзакционный outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	EntityKind  string // "category" | "product" | "service"
	EntityID    int64
	Payload     []byte // JSON
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, entityKind string, entityID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:    eventID,
		EventType:  eventType,
		EntityKind: entityKind,
		EntityID:   entityID,
		Payload:    payload,
		Status:     Pending,
		CreatedAt:  time.Now().UTC(),
	}
}
