package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	renderer       *Renderer
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, renderer *Renderer, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, renderer: renderer, logger: logger}
}

// categoryPage дополняет контекст категории ссылками пагинации.
type categoryPage struct {
	*usecase.CategoryDetailRes
	PrevPage int
	NextPage int
}

// productsPage дополняет контекст листинга текущими значениями фильтра.
type productsPage struct {
	*usecase.ProductListRes
	Filter usecase.ProductFilter
}

func (h *CatalogHandler) home(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogUsecase.Homepage(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "home", res)
}

func (h *CatalogHandler) categoryDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	res, err := h.catalogUsecase.CategoryDetail(r.Context(), slug, pageParam(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	// Категория без подкатегорий — сразу в листинг товаров.
	if res.RedirectToProducts {
		http.Redirect(w, r, "/category/"+slug+"/products/", http.StatusFound)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "category", &categoryPage{
		CategoryDetailRes: res,
		PrevPage:          res.Page.Number - 1,
		NextPage:          res.Page.Number + 1,
	})
}

func (h *CatalogHandler) productList(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	filter := usecase.ProductFilter{
		Name:         r.URL.Query().Get("name"),
		ThicknessMin: r.URL.Query().Get("thickness_min"),
		ThicknessMax: r.URL.Query().Get("thickness_max"),
	}

	res, err := h.catalogUsecase.ProductList(r.Context(), slug, filter, pageParam(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "products", &productsPage{
		ProductListRes: res,
		Filter:         filter,
	})
}

func (h *CatalogHandler) productDetail(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalogUsecase.ProductDetail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "product", res)
}

func (h *CatalogHandler) servicesList(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ServicesList(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "services", map[string]any{"Services": services})
}

func (h *CatalogHandler) serviceDetail(w http.ResponseWriter, r *http.Request) {
	service, err := h.catalogUsecase.ServiceDetail(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		h.fail(w, r, err)
		return
	}

	h.renderer.Render(w, r, http.StatusOK, "service", map[string]any{"Service": service})
}

// fail отдаёт страницу 404 для отсутствующих сущностей и JSON-ошибку
// для остальных случаев.
func (h *CatalogHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if code, _ := ToHTTPResponse(err); code == http.StatusNotFound {
		h.renderer.Render(w, r, http.StatusNotFound, "404", nil)
		return
	}

	WriteError(w, err)
}
