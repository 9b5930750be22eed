package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hawkerhero/internal/model"
)

//go:embed templates
var files embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsGlob = "templates/partials/*.html"
)

// Renderer renders named page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template under templates/ together with the layout
// and partials. A page is addressed by its path without the extension,
// e.g. "stalls/index".
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	err := fs.WalkDir(files, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == layoutFile || strings.HasPrefix(path, "templates/partials/") || !strings.HasSuffix(path, ".html") {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, layoutFile, partialsGlob, path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// Has reports whether a page template named name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// PageLink is one numbered link in a pager.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

// Pager is the navigation under a paginated listing.
type Pager struct {
	Page       int
	TotalPages int
	Prev       string
	Next       string
	Links      []PageLink
}

var funcs = template.FuncMap{
	"price":    price,
	"date":     date,
	"deref":    deref,
	"stars":    stars,
	"pager":    pager,
	"selected": selected,
	"isAdmin":  isAdmin,
	"canEdit":  canEdit,
	"image":    image,

	"deleteForm": deleteForm,
}

// formTarget is what the delete partial posts to.
type formTarget struct {
	Action string
	Token  string
}

func deleteForm(action string, token interface{}) formTarget {
	t, _ := token.(string)
	return formTarget{Action: action, Token: t}
}

func price(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// pager builds prev/next and numbered links that keep the current query.
func pager(path string, query url.Values, page, totalPages int) Pager {
	link := func(n int) string {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("page", strconv.Itoa(n))
		return path + "?" + q.Encode()
	}
	p := Pager{Page: page, TotalPages: totalPages}
	if page > 1 {
		p.Prev = link(page - 1)
	}
	if page < totalPages {
		p.Next = link(page + 1)
	}
	for n := 1; n <= totalPages; n++ {
		p.Links = append(p.Links, PageLink{Number: n, URL: link(n), Current: n == page})
	}
	return p
}

// selected reports whether form[key] holds id.
func selected(form map[string]string, key string, id uint) bool {
	return form[key] == strconv.FormatUint(uint64(id), 10)
}

func isAdmin(id *model.Identity) bool {
	return id.IsAdmin()
}

// canEdit reports whether id may change content owned by ownerID.
func canEdit(id *model.Identity, ownerID uint) bool {
	return id != nil && (id.IsAdmin() || id.ID == ownerID)
}

// image resolves a stored upload name to its public URL.
func image(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "/") {
		return name
	}
	return "/images/" + name
}
