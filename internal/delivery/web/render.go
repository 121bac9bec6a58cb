package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"chorechart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "templates/layout.html"

// renderer executes the page templates. Each page is parsed together with the shared
// layout so that every page can define its own "content" block.
type renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"statusLabel": func(s entity.RedemptionStatus) string {
		switch s {
		case entity.RedemptionPending:
			return "待審核"
		case entity.RedemptionApproved:
			return "已核准"
		case entity.RedemptionRejected:
			return "已拒絕"
		default:
			return string(s)
		}
	},
	"choreTypeLabel": func(t entity.ChoreType) string {
		if t == entity.ChoreTypeDaily {
			return "每日"
		}

		return "單次"
	},
	"signed": func(n int) string {
		if n > 0 {
			return "+" + strconv.Itoa(n)
		}

		return strconv.Itoa(n)
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		return t.Format("2006-01-02 15:04")
	},
	"displayName": func(p *entity.Profile) string {
		if p == nil {
			return ""
		}

		return p.DisplayName()
	},
}

func newRenderer() (*renderer, error) {
	pageFiles, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		if file == layoutTemplate {
			continue
		}

		tmpl, err := template.New(path.Base(layoutTemplate)).Funcs(templateFuncs).ParseFS(templateFS, layoutTemplate, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", file)
		}

		pages[strings.TrimSuffix(path.Base(file), ".html")] = tmpl
	}

	return &renderer{pages: pages}, nil
}

// Render implements echo.Renderer.
func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, path.Base(layoutTemplate), data))
}
