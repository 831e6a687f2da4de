package usecase

import "github.com/stalprokat/catalog-backend/internal/domain"

// CATALOG USECASE

// ProductCard — DTO карточки товара для листингов, кэша и поиска.
type ProductCard struct {
	ID           int64
	Name         string
	Slug         string
	ImageKey     string
	CategoryID   int64
	CategoryName string
}

// CategoryNode — корневая категория с непосредственными детьми (для меню).
type CategoryNode struct {
	Category domain.Category
	Children []domain.Category
}

// HomepageRes — контекст главной страницы.
type HomepageRes struct {
	Services       []domain.Service
	Categories     []CategoryNode
	RandomProducts []ProductCard
}

// CategoryDetailRes — контекст страницы категории.
// RedirectToProducts выставляется для категорий без подкатегорий:
// такие страницы перенаправляются на листинг товаров той же категории.
type CategoryDetailRes struct {
	Category           domain.Category
	RedirectToProducts bool
	Subcategories      []domain.Category
	TopCategories      []domain.Category
	Page               Page
	TotalProducts      int
}

// ProductListRes — контекст листинга товаров категории.
type ProductListRes struct {
	Category          domain.Category
	Page              Page
	PageWindow        []int
	SimilarCategories []domain.Category
	Ancestors         []domain.Category
}

// ProductDetailRes — контекст страницы товара.
type ProductDetailRes struct {
	Product    domain.Product
	Category   domain.Category
	Attributes ProductAttributes
	Ancestors  []domain.Category
}

// SEARCH USECASE

// SearchResult — один результат поиска (товар или категория).
type SearchResult struct {
	Name string
	Slug string
	Type string // "product" | "category"
	// Контекстное поле: для товара — имя категории, для категории — имя родителя.
	Category *string
	Parent   *string
	ImageKey *string
}

// ADMIN USECASE

// EntityImage представляет изображение, загруженное через multipart/form-data.
type EntityImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CreateCategoryReq — запрос на создание категории.
type CreateCategoryReq struct {
	Name     string
	About    *string
	ParentID *int64
	Image    *EntityImage
}

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name        string
	CategoryID  int64
	Description string
	ExternalURL *string
	Image       *EntityImage
}

// CreateServiceReq — запрос на создание услуги.
type CreateServiceReq struct {
	Name        string
	Description string
	Image       *EntityImage
}

// REPOSITORIES

// ProductMatch — результат поиска товара по подстроке имени.
type ProductMatch struct {
	Name         string
	Slug         string
	CategoryName string
	ImageKey     string
}

// CategoryMatch — результат поиска категории по подстроке имени.
type CategoryMatch struct {
	Name       string
	Slug       string
	ParentName *string
	ImageKey   *string
}

// MAPPERS

func NewProductCard(id int64, name, slug, imageKey string, categoryID int64, categoryName string) ProductCard {
	return ProductCard{
		ID:           id,
		Name:         name,
		Slug:         slug,
		ImageKey:     imageKey,
		CategoryID:   categoryID,
		CategoryName: categoryName,
	}
}

func NewEntityImage(data []byte, mimeType string, size int64, name string) *EntityImage {
	return &EntityImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewCreateProductReq(name string, categoryID int64, description string, externalURL *string, image *EntityImage) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		CategoryID:  categoryID,
		Description: description,
		ExternalURL: externalURL,
		Image:       image,
	}
}

func NewCreateCategoryReq(name string, about *string, parentID *int64, image *EntityImage) *CreateCategoryReq {
	return &CreateCategoryReq{
		Name:     name,
		About:    about,
		ParentID: parentID,
		Image:    image,
	}
}

func NewCreateServiceReq(name string, description string, image *EntityImage) *CreateServiceReq {
	return &CreateServiceReq{
		Name:        name,
		Description: description,
		Image:       image,
	}
}
