package http

import (
	"net/http"

	"github.com/stalprokat/catalog-backend/internal/usecase"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUC
	mediaBaseURL  string
	logger        logger.Logger
}

func NewSearchHandler(searchUsecase usecase.SearchUC, mediaBaseURL string, logger logger.Logger) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase, mediaBaseURL: mediaBaseURL, logger: logger}
}

type searchItem struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug,omitempty"`
	Type     string  `json:"type"`
	Category *string `json:"category,omitempty"`
	Parent   *string `json:"parent,omitempty"`
	Image    *string `json:"image"`
}

// search отдаёт живые подсказки для строки поиска.
// Пустая выдача помечается записью-заглушкой, которую фронт показывает как есть.
func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := h.searchUsecase.Search(r.Context(), query)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]searchItem, 0, len(results))
	for _, res := range results {
		items = append(items, searchItem{
			Name:     res.Name,
			Slug:     res.Slug,
			Type:     res.Type,
			Category: res.Category,
			Parent:   res.Parent,
			Image:    h.imageURL(res.ImageKey),
		})
	}

	if len(items) == 0 {
		items = append(items, searchItem{Name: "Ничего не найдено", Type: "none"})
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"results": items})
}

func (h *SearchHandler) imageURL(key *string) *string {
	if key == nil || *key == "" {
		return nil
	}

	url := h.mediaBaseURL + "/" + *key
	return &url
}
