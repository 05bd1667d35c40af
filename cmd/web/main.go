package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"wayfield.org/wayfield-web/internal/cms"
	"wayfield.org/wayfield-web/internal/config"
	"wayfield.org/wayfield-web/internal/format"
	mw "wayfield.org/wayfield-web/internal/middleware"
	"wayfield.org/wayfield-web/internal/seo"
)

var (
	cfg       *config.Config
	cmsClient *cms.Client
	composer  *seo.Composer
	tmplCache *template.Template
)

func main() {
	loaded, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg = loaded

	var addr string
	flag.StringVar(&addr, "addr", cfg.Addr(), "HTTP listen address")
	flag.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	flag.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "local content directory")
	flag.Parse()

	cmsClient = cms.NewClient(cfg.CMSBaseURL)
	cmsClient.SetContentDir(cfg.ContentDir)
	composer = seo.NewComposer(cfg.Site(), cfg.Organization())
	composer.Debug = cfg.DevMode

	if !cfg.DevMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", addr, cfg.DevMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will
	// use X-Forwarded-For to determine the client IP. Ensure only trusted
	// proxies can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/stories", StoriesHandler)
	r.Get("/stories/{slug}", StoryHandler)
	r.Get("/about", AboutHandler)
	if cfg.SearchEnabled {
		r.Get("/search", SearchHandler)
	}
	r.NotFound(NotFoundHandler)
	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"fmtDate": func(t time.Time) string {
			return format.Date(t, cfg.Language)
		},
		"readingTime": format.ReadingTime,
		"wordCount":   format.WordCount,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the named page template. In dev mode, templates are
// reparsed on each request.
func render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if cfg.DevMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
