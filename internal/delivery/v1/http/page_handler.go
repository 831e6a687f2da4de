package http

import (
	"net/http"
)

// PageHandler отдаёт статические страницы сайта.
type PageHandler struct {
	renderer *Renderer
}

func NewPageHandler(renderer *Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// staticPage возвращает обработчик одной статической страницы.
func (h *PageHandler) staticPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, r, http.StatusOK, name, nil)
	}
}

// notFound — собственная страница 404 вместо стандартной заглушки.
func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusNotFound, "404", nil)
}
