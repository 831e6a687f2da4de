package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stalprokat/catalog-backend/internal/domain"
	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := NewRenderer("http://media.local", logger.NewSlogLogger())
	require.NoError(t, err)
	return renderer
}

type fakeSearchUC struct {
	results []usecase.SearchResult
	err     error
}

func (f *fakeSearchUC) Search(ctx context.Context, query string) ([]usecase.SearchResult, error) {
	return f.results, f.err
}

func TestSearchHandler_Results(t *testing.T) {
	categoryName := "Горячекатаный лист"
	imageKey := "products/a.jpg"
	handler := NewSearchHandler(&fakeSearchUC{results: []usecase.SearchResult{
		{Name: "Лист стальной 5 мм", Slug: "list-stalnoi-5-mm", Type: "product", Category: &categoryName, ImageKey: &imageKey},
	}}, "http://media.local", logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodGet, "/search/?query=лист", nil)
	rec := httptest.NewRecorder()
	handler.search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Лист стальной 5 мм", body.Results[0]["name"])
	assert.Equal(t, "product", body.Results[0]["type"])
	assert.Equal(t, categoryName, body.Results[0]["category"])
	assert.Equal(t, "http://media.local/products/a.jpg", body.Results[0]["image"])
}

func TestSearchHandler_EmptyResultSentinel(t *testing.T) {
	handler := NewSearchHandler(&fakeSearchUC{}, "http://media.local", logger.NewSlogLogger())

	req := httptest.NewRequest(http.MethodGet, "/search/?query=вольфрам", nil)
	rec := httptest.NewRecorder()
	handler.search(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Ничего не найдено", body.Results[0]["name"])
	assert.Equal(t, "none", body.Results[0]["type"])
}

func TestPageHandler_StaticPage(t *testing.T) {
	handler := NewPageHandler(testRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/about/", nil)
	rec := httptest.NewRecorder()
	handler.staticPage("about")(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "О компании")
}

func TestPageHandler_StaticPageAJAX(t *testing.T) {
	handler := NewPageHandler(testRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/about/", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec := httptest.NewRecorder()
	handler.staticPage("about")(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Фрагмент без обвязки layout.
	assert.Contains(t, body["html"], "О компании")
	assert.NotContains(t, body["html"], "<html")
}

func TestPageHandler_NotFound(t *testing.T) {
	handler := NewPageHandler(testRenderer(t))

	req := httptest.NewRequest(http.MethodGet, "/no-such-page/", nil)
	rec := httptest.NewRecorder()
	handler.notFound(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

type fakeCatalogUC struct {
	usecase.CatalogUC
	categoryRes *usecase.CategoryDetailRes
	productErr  error
}

func (f *fakeCatalogUC) CategoryDetail(ctx context.Context, slug string, page int) (*usecase.CategoryDetailRes, error) {
	return f.categoryRes, nil
}

func (f *fakeCatalogUC) ProductDetail(ctx context.Context, slug string) (*usecase.ProductDetailRes, error) {
	return nil, f.productErr
}

func TestCatalogHandler_LeafCategoryRedirects(t *testing.T) {
	handler := NewCatalogHandler(&fakeCatalogUC{categoryRes: &usecase.CategoryDetailRes{
		Category:           domain.Category{ID: 1, Name: "Трубы", Slug: "truby"},
		RedirectToProducts: true,
	}}, testRenderer(t), logger.NewSlogLogger())

	router := chi.NewRouter()
	router.Get("/category/{slug}/", handler.categoryDetail)

	req := httptest.NewRequest(http.MethodGet, "/category/truby/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/category/truby/products/", rec.Header().Get("Location"))
}

func TestCatalogHandler_MissingProductRenders404(t *testing.T) {
	handler := NewCatalogHandler(&fakeCatalogUC{productErr: e.ErrProductNotFound},
		testRenderer(t), logger.NewSlogLogger())

	router := chi.NewRouter()
	router.Get("/product/{slug}/", handler.productDetail)

	req := httptest.NewRequest(http.MethodGet, "/product/net-takogo/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}
