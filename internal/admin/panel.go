package admin

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/api"
	"github.com/alseiny20/bkbweb-go/internal/catalog"
	"github.com/alseiny20/bkbweb-go/internal/money"
)

//go:embed templates/*.html
var templateFS embed.FS

// Backend is everything the panel asks of the REST client.
type Backend interface {
	ListOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status api.OrderStatus) (api.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error

	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)
}

// Panel is the locally served admin dashboard. It holds no data of its own:
// every page is rendered from a fresh backend read, every action is a
// backend write.
type Panel struct {
	backend   Backend
	session   *Session
	log       *zap.Logger
	templates *template.Template
}

func NewPanel(backend Backend, session *Session, log *zap.Logger) (*Panel, error) {
	funcs := template.FuncMap{
		"gnf": money.FormatGNF,
		"categoryName": func(id int) string {
			return catalog.CategoryInfo(id).Name
		},
	}
	templates, err := template.New("admin").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Panel{backend: backend, session: session, log: log, templates: templates}, nil
}

// Router wires the panel routes. Everything except the login page sits behind
// the session gate.
func (p *Panel) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/login", p.loginForm)
	r.Post("/login", p.login)
	r.Post("/logout", p.logout)

	r.Group(func(r chi.Router) {
		r.Use(p.requireAuth)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/orders", http.StatusSeeOther)
		})
		r.Get("/orders", p.orders)
		r.Post("/orders/{id}/status", p.updateOrderStatus)
		r.Post("/orders/{id}/delete", p.deleteOrder)

		r.Get("/products", p.products)
		r.Get("/products/new", p.productForm)
		r.Get("/products/{id}/edit", p.productForm)
		r.Post("/products/save", p.saveProduct)
		r.Post("/products/{id}/delete", p.deleteProduct)
	})

	return r
}

func (p *Panel) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.session.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *Panel) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		p.log.Error("render failed", zap.String("template", name), zap.Error(err))
	}
}

// renderError shows a page-level error instead of failing the panel; backend
// outages read as a message, not a crash.
func (p *Panel) renderError(w http.ResponseWriter, message string, err error) {
	p.log.Warn("admin action failed", zap.String("message", message), zap.Error(err))
	w.WriteHeader(http.StatusBadGateway)
	p.render(w, "error.html", map[string]string{"Message": message})
}
