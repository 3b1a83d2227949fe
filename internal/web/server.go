package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/trendscout/skimmer/internal/model"
	"github.com/trendscout/skimmer/internal/observability"
	"github.com/trendscout/skimmer/internal/scorer"
	"github.com/trendscout/skimmer/internal/source"
)

//go:embed assets
var assetsFS embed.FS

var pageTmpl = template.Must(template.ParseFS(assetsFS, "assets/index.html.tmpl"))

// Server serves the dashboard page, the read API, health, and metrics.
// Every request performs one load-and-normalize pass against the source;
// nothing is cached between requests.
type Server struct {
	src    source.Source
	router chi.Router
}

// New builds a Server over a record source.
func New(src source.Source) *Server {
	s := &Server{src: src}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/api/products", s.handleProducts)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", observability.Handler())

	static, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err) // embedded layout, cannot fail at runtime
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// loadProducts runs one load-and-normalize pass. Source errors degrade to
// an empty catalog; the page renders "no products found" instead of a 500.
func (s *Server) loadProducts(r *http.Request) []model.Product {
	records, err := s.src.Load(r.Context())
	if err != nil {
		zap.L().Error("load products", zap.Error(err))
		return nil
	}
	return scorer.NormalizeAll(records)
}

type pageData struct {
	Rows  []row
	Query string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	observability.RequestsTotal.WithLabelValues("index").Inc()

	products := s.loadProducts(r)

	q := r.URL.Query().Get("q")
	products = ApplyFilter(products, q)
	products = ApplySort(products, specFromQuery(r))
	observability.ProductsServed.Add(float64(len(products)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, pageData{Rows: toRows(products), Query: q}); err != nil {
		zap.L().Error("render page", zap.Error(err))
	}
}

type productsResponse struct {
	Products []model.Product `json:"products"`
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	observability.RequestsTotal.WithLabelValues("api_products").Inc()

	products := s.loadProducts(r)
	products = ApplyFilter(products, r.URL.Query().Get("q"))

	// Default API ordering is agent score descending; callers can override.
	spec := specFromQuery(r)
	if spec.Column == "" {
		spec = SortSpec{Column: "agentScore", Dir: Descending}
	}
	products = ApplySort(products, spec)

	limit := parseLimit(r.URL.Query().Get("limit"))
	if len(products) > limit {
		products = products[:limit]
	}
	observability.ProductsServed.Add(float64(len(products)))

	if products == nil {
		products = []model.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(productsResponse{Products: products}); err != nil {
		zap.L().Error("encode products", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func specFromQuery(r *http.Request) SortSpec {
	column := r.URL.Query().Get("sort")
	if column == "" {
		return SortSpec{}
	}
	dir := Ascending
	if r.URL.Query().Get("dir") == "desc" {
		dir = Descending
	}
	return SortSpec{Column: column, Dir: dir}
}

func parseLimit(raw string) int {
	if raw == "" {
		return 100
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 100
	}
	return n
}
