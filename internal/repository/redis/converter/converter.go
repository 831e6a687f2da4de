//go:generate goverter gen github.com/stalprokat/catalog-backend/internal/repository/redis/converter

package converter

import (
	"github.com/stalprokat/catalog-backend/internal/usecase"
)

// goverter:converter
type ProductCardConverter interface {
	ToRedisModel(entity *usecase.ProductCard) *ProductCardRedisModel
	ToUseCase(model *ProductCardRedisModel) *usecase.ProductCard
	ToArrRedisModel(entities []usecase.ProductCard) []ProductCardRedisModel
	ToArrUseCase(models []ProductCardRedisModel) []usecase.ProductCard
}
