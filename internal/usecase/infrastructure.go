package usecase

import "context"

type ImagesInfra interface {
	// UploadImage сохраняет изображение под указанным префиксом
	// (products/categories/services) и возвращает ключ объекта.
	UploadImage(ctx context.Context, prefix string, image *EntityImage) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// WriteRawMessageReq — готовый к отправке payload события каталога.
type WriteRawMessageReq struct {
	EntityKind string
	EntityID   int64
	Payload    []byte
}

func NewWriteRawMessageReq(entityKind string, entityID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		EntityKind: entityKind,
		EntityID:   entityID,
		Payload:    payload,
	}
}
