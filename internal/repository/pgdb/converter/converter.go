//go:generate goverter gen github.com/stalprokat/catalog-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/internal/usecase"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []CategoryModel) []domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// ServiceConverter преобразует сущности Service между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertPointerTime
type ServiceConverter interface {
	ToModel(entity *domain.Service) *ServiceModel
	ToEntity(model *ServiceModel) *domain.Service
	ToArrEntity(models []ServiceModel) []domain.Service
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}
