package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jimlawless/whereami"
	"github.com/stalprokat/catalog-backend/pkg/e"
	"github.com/stalprokat/catalog-backend/pkg/logger"
)

//go:embed templates
var templatesFS embed.FS

// Страницы каталога. Каждая собирается из layout.html и одноимённого
// файла с блоком content.
var pageNames = []string{
	"home",
	"category",
	"products",
	"product",
	"services",
	"service",
	"about",
	"delivery",
	"payment",
	"refund",
	"contacts",
	"404",
}

// Renderer отдаёт страницы каталога: полный HTML для обычных запросов
// и фрагмент контента в JSON для AJAX-запросов фронтового скрипта.
type Renderer struct {
	pages     map[string]*template.Template
	mediaBase string
	logger    logger.Logger
}

func (rn *Renderer) mediaBaseURL() string {
	return rn.mediaBase
}

func NewRenderer(mediaBaseURL string, logger logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"imageURL": func(key string) string {
			if key == "" {
				return ""
			}
			return mediaBaseURL + "/" + key
		},
		"imagePtrURL": func(key *string) string {
			if key == nil || *key == "" {
				return ""
			}
			return mediaBaseURL + "/" + *key
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		pages[name] = tpl
	}

	return &Renderer{pages: pages, mediaBase: mediaBaseURL, logger: logger}, nil
}

// Render отдаёт страницу page с данными data. Для AJAX-запросов вместо
// полного HTML уходит JSON вида {"html": "<фрагмент контента>"}.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tpl, ok := rn.pages[page]
	if !ok {
		rn.logger.Errorf(fmt.Errorf("unknown page %q", page), "render failed")
		WriteError(w, e.ErrInternalServerError)
		return
	}

	if isAJAX(r) {
		var buf bytes.Buffer
		if err := tpl.ExecuteTemplate(&buf, "content", data); err != nil {
			rn.logger.Errorf(err, "render %s content failed", page)
			WriteError(w, e.ErrInternalServerError)
			return
		}

		WriteSuccess(w, status, map[string]string{"html": buf.String()})
		return
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		rn.logger.Errorf(err, "render %s failed", page)
		WriteError(w, e.ErrInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
