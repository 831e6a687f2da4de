package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
	"github.com/stalprokat/catalog-backend/pkg/slug"
)

const (
	productImagePrefix  = "products"
	categoryImagePrefix = "categories"
	serviceImagePrefix  = "services"
)

// AdminUseCase реализует административную запись каталога: создание
// категорий, товаров и услуг с присвоением слага, перенос и удаление
// категорий. Каждая запись публикует событие изменения через outbox.
type AdminUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	serviceRepo  ServiceRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewAdminUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	serviceRepo ServiceRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// CreateProduct создаёт товар: валидация, присвоение уникального слага,
// загрузка изображения в S3, транзакционная вставка с outbox-событием.
// При ошибке транзакция откатывается, а загруженное изображение зачищается.
func (a *AdminUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "AdminUseCase.CreateProduct"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}
	if req.Image == nil {
		return nil, e.Wrap(op, e.ErrImageRequired)
	}

	category, err := a.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	productSlug, err := a.assignSlug(ctx, req.Name, a.productRepo.SlugExists)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	imageKey, err := a.imagesInfra.UploadImage(ctx, productImagePrefix, req.Image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		a.imagesInfra.CleanupImages([]string{imageKey})
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного изображения
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			a.logger.Warnf(
				"Cleaning up orphaned image after transaction failure. product_name: %s, error: %v",
				req.Name,
				e.Wrap(op, err),
			)
			a.imagesInfra.CleanupImages([]string{imageKey})
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product := domain.NewProduct(req.Name, req.CategoryID, req.Description, req.ExternalURL)
	product.Slug = productSlug
	product.ImageKey = imageKey

	product, err = a.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = a.writeChangeEvent(ctx, EntityCreated, "product", product.ID, product.Name, product.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Инвалидация кэшей: случайная выборка и листинги всех категорий-предков
	a.invalidateListings(ctx, category)

	return product, nil
}

// CreateCategory создаёт категорию. Изображение опционально,
// родитель (если указан) должен существовать.
func (a *AdminUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "AdminUseCase.CreateCategory"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	var parent *domain.Category
	if req.ParentID != nil {
		parent, err = a.categoryRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	categorySlug, err := a.assignSlug(ctx, req.Name, a.categoryRepo.SlugExists)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageKey *string
	if req.Image != nil {
		key, err := a.imagesInfra.UploadImage(ctx, categoryImagePrefix, req.Image)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageKey = &key
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		a.cleanupOptionalImage(imageKey)
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			a.cleanupOptionalImage(imageKey)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category := domain.NewCategory(req.Name, req.About, req.ParentID)
	category.Slug = categorySlug
	category.ImageKey = imageKey

	category, err = a.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = a.writeChangeEvent(ctx, EntityCreated, "category", category.ID, category.Name, category.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if parent != nil {
		a.invalidateListings(ctx, parent)
	}

	return category, nil
}

// CreateService создаёт услугу. Услуги не связаны с деревом категорий,
// поэтому кэши листингов не трогаются.
func (a *AdminUseCase) CreateService(ctx context.Context, req *CreateServiceReq) (*domain.Service, error) {
	const op = "AdminUseCase.CreateService"

	var err error
	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}
	if req.Image == nil {
		return nil, e.Wrap(op, e.ErrImageRequired)
	}

	serviceSlug, err := a.assignSlug(ctx, req.Name, a.serviceRepo.SlugExists)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	imageKey, err := a.imagesInfra.UploadImage(ctx, serviceImagePrefix, req.Image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		a.imagesInfra.CleanupImages([]string{imageKey})
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			a.imagesInfra.CleanupImages([]string{imageKey})
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	service := domain.NewService(req.Name, req.Description)
	service.Slug = serviceSlug
	service.ImageKey = imageKey

	service, err = a.serviceRepo.Create(ctx, service)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = a.writeChangeEvent(ctx, EntityCreated, "service", service.ID, service.Name, service.Slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return service, nil
}

// MoveCategory переносит категорию под нового родителя. Перенос под
// собственного потомка отклоняется: родительская связь обязана оставаться
// ацикличной, схема этого не гарантирует.
func (a *AdminUseCase) MoveCategory(ctx context.Context, id int64, parentID *int64) error {
	const op = "AdminUseCase.MoveCategory"

	var err error
	category, err := a.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	all, err := a.categoryRepo.ListAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	arena := newCategoryArena(all)

	if err = arena.validateParent(id, parentID); err != nil {
		return e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = a.categoryRepo.UpdateParent(ctx, id, parentID); err != nil {
		return e.Wrap(op, err)
	}

	err = a.writeChangeEvent(ctx, EntityMoved, "category", category.ID, category.Name, category.Slug)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateSubtree(ctx, arena, category, parentID)

	return nil
}

// DeleteCategory удаляет категорию; подкатегории и товары каскадно
// удаляются схемой БД.
func (a *AdminUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "AdminUseCase.DeleteCategory"

	var err error
	category, err := a.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	all, err := a.categoryRepo.ListAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}
	arena := newCategoryArena(all)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = a.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	err = a.writeChangeEvent(ctx, EntityDeleted, "category", category.ID, category.Name, category.Slug)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateSubtree(ctx, arena, category, nil)

	return nil
}

// assignSlug вычисляет уникальный слаг: к базовому слагу имени добавляются
// суффиксы -1, -2, … пока не найдётся свободное значение. Выполняется один
// раз при первом сохранении записи и далее не пересчитывается.
func (a *AdminUseCase) assignSlug(ctx context.Context, name string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := slug.Make(name)
	candidate := base

	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// changeEventPayload — JSON-содержимое события изменения каталога.
type changeEventPayload struct {
	EventType  OutboxEventType `json:"event_type"`
	EntityKind string          `json:"entity_kind"`
	EntityID   int64           `json:"entity_id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
}

func (a *AdminUseCase) writeChangeEvent(ctx context.Context, eventType OutboxEventType, kind string, id int64, name, entitySlug string) error {
	payload, err := json.Marshal(changeEventPayload{
		EventType:  eventType,
		EntityKind: kind,
		EntityID:   id,
		Name:       name,
		Slug:       entitySlug,
	})
	if err != nil {
		return err
	}

	_, err = a.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, kind, id, payload))
	return err
}

// invalidateListings сбрасывает случайную выборку и кэши листингов всех
// предков категории: страница любого предка показывает товары поддерева.
func (a *AdminUseCase) invalidateListings(ctx context.Context, category *domain.Category) {
	chain, err := ancestors(ctx, a.categoryRepo, category)
	if err != nil {
		a.logger.Warnf("cache invalidation: ancestors lookup failed: %v", err)
		chain = []domain.Category{*category}
	}

	ids := make([]int64, 0, len(chain))
	for _, cat := range chain {
		ids = append(ids, cat.ID)
	}

	if err := a.cacheRepo.DeleteCategoryProducts(ctx, ids); err != nil {
		a.logger.Warnf("cache invalidation: category listings: %v", err)
	}
	if err := a.cacheRepo.DeleteRandomProducts(ctx); err != nil {
		a.logger.Warnf("cache invalidation: random products: %v", err)
	}
}

// invalidateSubtree сбрасывает кэши листингов для всего поддерева категории
// и цепочек предков старого и нового родителей.
func (a *AdminUseCase) invalidateSubtree(ctx context.Context, arena *categoryArena, category *domain.Category, newParentID *int64) {
	affected := make(map[int64]struct{})
	for _, id := range arena.descendantIDs(category.ID) {
		affected[id] = struct{}{}
	}
	for _, id := range arena.ancestorIDs(category.ID) {
		affected[id] = struct{}{}
	}
	if newParentID != nil {
		for _, id := range arena.ancestorIDs(*newParentID) {
			affected[id] = struct{}{}
		}
	}

	ids := make([]int64, 0, len(affected))
	for id := range affected {
		ids = append(ids, id)
	}

	if err := a.cacheRepo.DeleteCategoryProducts(ctx, ids); err != nil {
		a.logger.Warnf("cache invalidation: subtree listings: %v", err)
	}
	if err := a.cacheRepo.DeleteRandomProducts(ctx); err != nil {
		a.logger.Warnf("cache invalidation: random products: %v", err)
	}
}

func (a *AdminUseCase) cleanupOptionalImage(key *string) {
	if key != nil {
		a.imagesInfra.CleanupImages([]string{*key})
	}
}
