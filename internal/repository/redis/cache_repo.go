package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stalprokat/catalog-backend/internal/cfg"
	"github.com/stalprokat/catalog-backend/internal/repository/redis/converter"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/clients"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

const randomProductsKey = "random_products"

// CacheRepo хранит в Redis две дорогие выборки каталога: случайную подборку
// товаров для главной и листинг поддерева категории.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductCardConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductCardConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetRandomProducts возвращает закэшированную подборку для главной.
// Промах кэша — не ошибка: возвращается (nil, nil).
func (r *CacheRepo) GetRandomProducts(ctx context.Context) ([]usecase.ProductCard, error) {
	return r.getCards(ctx, randomProductsKey)
}

func (r *CacheRepo) SetRandomProducts(ctx context.Context, cards []usecase.ProductCard) error {
	return r.setCards(ctx, randomProductsKey, cards, r.cfg.RandomProductsTTL)
}

func (r *CacheRepo) DeleteRandomProducts(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, randomProductsKey).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// GetCategoryProducts возвращает закэшированный листинг поддерева категории.
// Промах кэша — не ошибка: возвращается (nil, nil).
func (r *CacheRepo) GetCategoryProducts(ctx context.Context, categoryID int64) ([]usecase.ProductCard, error) {
	return r.getCards(ctx, categoryKey(categoryID))
}

func (r *CacheRepo) SetCategoryProducts(ctx context.Context, categoryID int64, cards []usecase.ProductCard) error {
	return r.setCards(ctx, categoryKey(categoryID), cards, r.cfg.CategoryProductsTTL)
}

// DeleteCategoryProducts снимает листинги сразу для нескольких категорий,
// обычно для всей цепочки предков изменившейся категории.
func (r *CacheRepo) DeleteCategoryProducts(ctx context.Context, categoryIDs []int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	keys := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		keys[i] = categoryKey(id)
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (r *CacheRepo) getCards(ctx context.Context, key string) ([]usecase.ProductCard, error) {
	data, err := r.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductCardRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись равносильна промаху
	}

	return r.conv.ToArrUseCase(models), nil
}

func (r *CacheRepo) setCards(ctx context.Context, key string, cards []usecase.ProductCard, ttl time.Duration) error {
	models := r.conv.ToArrRedisModel(cards)

	data, err := json.Marshal(models)
	if err != nil {
		r.logger.Warnf("Failed to marshal cards for caching (key: %s): %v", key, e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// categoryKey возвращает Redis-ключ листинга одной категории.
func categoryKey(id int64) string {
	return fmt.Sprintf("category_%d_products", id)
}
