package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Slug     string  `db:"slug"`
	ImageKey *string `db:"image_key"`
	About    *string `db:"about"`
	ParentID *int64  `db:"parent_id"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	ImageKey    string  `db:"image_key"`
	ExternalURL *string `db:"external_url"`
	CategoryID  int64   `db:"category_id"`
	Description string  `db:"description"`
}

// ServiceModel представляет запись таблицы services в PostgreSQL.
type ServiceModel struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	ImageKey    string `db:"image_key"`
	Description string `db:"description"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	EntityKind  string     `db:"entity_kind"`
	EntityID    int64      `db:"entity_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
