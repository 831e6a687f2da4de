package usecase

import (
	"context"

	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

const randomSampleSize = 5

// CatalogUseCase реализует читающую часть каталога: главная страница,
// страницы категорий, листинги, карточки товаров и услуг.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	serviceRepo  ServiceRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	serviceRepo ServiceRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// Homepage собирает контекст главной страницы: услуги, неглубокое дерево
// корневых категорий и кэшированную случайную выборку из пяти товаров.
func (c *CatalogUseCase) Homepage(ctx context.Context) (*HomepageRes, error) {
	const op = "CatalogUseCase.Homepage"

	services, err := c.serviceRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	all, err := c.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	arena := newCategoryArena(all)

	nodes := make([]CategoryNode, 0)
	for _, root := range arena.roots() {
		nodes = append(nodes, CategoryNode{
			Category: root,
			Children: arena.childrenOf(root.ID),
		})
	}

	random, err := c.randomProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &HomepageRes{
		Services:       services,
		Categories:     nodes,
		RandomProducts: random,
	}, nil
}

// randomProducts возвращает случайную выборку товаров, лениво пересчитывая её
// при промахе кэша. Ошибки кэша не фатальны: выборка пересчитывается из БД.
func (c *CatalogUseCase) randomProducts(ctx context.Context) ([]ProductCard, error) {
	cached, err := c.cacheRepo.GetRandomProducts(ctx)
	if err != nil {
		c.logger.Warnf("random products cache read failed: %v", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	cards, err := c.productRepo.ListRandom(ctx, randomSampleSize)
	if err != nil {
		return nil, err
	}

	if len(cards) > 0 {
		if err := c.cacheRepo.SetRandomProducts(ctx, cards); err != nil {
			c.logger.Warnf("random products cache write failed: %v", err)
		}
	}

	return cards, nil
}

// CategoryDetail собирает контекст страницы категории. Для категории без
// подкатегорий выставляет RedirectToProducts: такие страницы перенаправляются
// на листинг товаров. Листинг охватывает всё поддерево категории.
func (c *CatalogUseCase) CategoryDetail(ctx context.Context, slug string, page int) (*CategoryDetailRes, error) {
	const op = "CatalogUseCase.CategoryDetail"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	all, err := c.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	arena := newCategoryArena(all)

	subcategories := arena.childrenOf(category.ID)
	if len(subcategories) == 0 {
		return &CategoryDetailRes{
			Category:           *category,
			RedirectToProducts: true,
		}, nil
	}

	cards, err := c.subtreeProducts(ctx, arena, category.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CategoryDetailRes{
		Category:      *category,
		Subcategories: subcategories,
		TopCategories: arena.roots(),
		Page:          Paginate(cards, page, CategoryPageSize),
		TotalProducts: len(cards),
	}, nil
}

// subtreeProducts возвращает товары всего замыкания потомков категории
// в случайном порядке, кэшируя результат на короткий интервал: порядок
// обновляется по истечении TTL, а не на каждый запрос.
func (c *CatalogUseCase) subtreeProducts(ctx context.Context, arena *categoryArena, categoryID int64) ([]ProductCard, error) {
	cached, err := c.cacheRepo.GetCategoryProducts(ctx, categoryID)
	if err != nil {
		c.logger.Warnf("category products cache read failed: category_id: %d: %v", categoryID, err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	cards, err := c.productRepo.ListByCategoryIDs(ctx, arena.descendantIDs(categoryID))
	if err != nil {
		return nil, err
	}

	if len(cards) > 0 {
		if err := c.cacheRepo.SetCategoryProducts(ctx, categoryID, cards); err != nil {
			c.logger.Warnf("category products cache write failed: category_id: %d: %v", categoryID, err)
		}
	}

	return cards, nil
}

// ProductList собирает листинг товаров категории: фильтры, пагинация по 10,
// окно номеров страниц, похожие категории и цепочка предков.
// Отфильтрованный листинг отдаётся в порядке добавления товаров.
func (c *CatalogUseCase) ProductList(ctx context.Context, slug string, filter ProductFilter, page int) (*ProductListRes, error) {
	const op = "CatalogUseCase.ProductList"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cards, err := c.productRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	cards = filter.Apply(cards)

	all, err := c.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	arena := newCategoryArena(all)

	chain, err := ancestors(ctx, c.categoryRepo, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	pg := Paginate(cards, page, ProductListPageSize)

	return &ProductListRes{
		Category:          *category,
		Page:              pg,
		PageWindow:        PageWindow(pg.Number, pg.TotalPages),
		SimilarCategories: arena.siblingsOf(*category),
		Ancestors:         chain,
	}, nil
}

// ProductDetail возвращает карточку товара с распарсенными атрибутами
// и цепочкой родительских категорий.
func (c *CatalogUseCase) ProductDetail(ctx context.Context, slug string) (*ProductDetailRes, error) {
	const op = "CatalogUseCase.ProductDetail"

	product, err := c.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	chain, err := ancestors(ctx, c.categoryRepo, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetailRes{
		Product:    *product,
		Category:   *category,
		Attributes: ParseProductName(product.Name),
		Ancestors:  chain,
	}, nil
}

func (c *CatalogUseCase) ServicesList(ctx context.Context) ([]domain.Service, error) {
	const op = "CatalogUseCase.ServicesList"

	services, err := c.serviceRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return services, nil
}

func (c *CatalogUseCase) ServiceDetail(ctx context.Context, slug string) (*domain.Service, error) {
	const op = "CatalogUseCase.ServiceDetail"

	service, err := c.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return service, nil
}
