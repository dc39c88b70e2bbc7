package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
	"github.com/icco/camfour/cmd/server/docs"
	"github.com/icco/gutil/logging"
	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/render"
	"github.com/unrolled/secure"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Renderer is a renderer for all occasions. These are our preferred default options.
	// See:
	//  - https://github.com/unrolled/render/blob/v1/README.md
	Renderer = render.New(render.Options{
		Charset:                   "UTF-8",
		DisableHTTPErrorRendering: false,
		IndentJSON:                false,
	})

	log       = logging.Must(logging.NewLogger(camfour.Service))
	ugcPolicy = bluemonday.StrictPolicy()
)

// server holds what the handlers share.
type server struct {
	cfg   Config
	db    *gorm.DB
	table *table
	hub   *hub
}

// @title Camfour API
// @version 1.0
// @description Bridge between a camera rig watching a physical Connect-Four board and the opponent engine
// @contact.name API Support
// @contact.url http://github.com/icco/camfour
// @license.name MIT
// @license.url https://github.com/icco/camfour/blob/main/LICENSE
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token in format: Bearer {token}

func main() {
	cfg := loadConfig()
	log.Infow("Starting up", "port", cfg.Port, "dev", cfg.IsDev)

	if len(cfg.JWTSecret) == 0 {
		log.Warnw("protected routes will refuse every request", zap.Error(errNoSecret))
	}

	provider, err := setupMetrics()
	if err != nil {
		log.Panicw("could not set up metrics", zap.Error(err))
	}
	defer provider.Shutdown(context.Background())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = getDB(cfg.DatabaseURL)
		if err != nil {
			log.Panicw("could not get db", zap.Error(err))
		}
	} else {
		log.Warnw("DATABASE_URL is empty, calibration profiles will not be stored")
	}

	mm, err := newMatchMetrics()
	if err != nil {
		log.Panicw("could not create metrics", zap.Error(err))
	}

	engine := ai.NewWeighted(nil)
	if cfg.Seed != 0 {
		engine = ai.NewWeighted(ai.NewSeeded(cfg.Seed))
	}

	h := newHub()
	s := &server{
		cfg:   cfg,
		db:    db,
		table: newTable(engine, h, mm),
		hub:   h,
	}

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        otelhttp.NewHandler(s.routes(), camfour.Service),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}
	log.Fatal(srv.ListenAndServe())
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.NotFound(notFoundHandler)

	// The websocket needs the raw connection, so it skips the logging
	// middleware's response wrapper.
	r.Get("/match/watch", s.watchHandler)

	r.Group(func(r chi.Router) {
		r.Use(logging.Middleware(log.Desugar()))
		r.Use(cors.New(cors.Options{
			AllowCredentials:   true,
			OptionsPassthrough: true,
			AllowedOrigins:     []string{"*"},
			AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:     []string{"Link"},
			MaxAge:             300, // Maximum value not ignored by any of major browsers
		}).Handler)

		// Stuff that does not ssl redirect
		r.Get("/healthz", s.healthCheckHandler)
		r.Mount("/metrics", promhttp.Handler())

		r.Group(func(r chi.Router) {
			r.Use(secure.New(secure.Options{
				BrowserXssFilter:     true,
				ContentTypeNosniff:   true,
				FrameDeny:            true,
				HostsProxyHeaders:    []string{"X-Forwarded-Host"},
				IsDevelopment:        s.cfg.IsDev,
				SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
				SSLRedirect:          !s.cfg.IsDev,
				STSIncludeSubdomains: true,
				STSPreload:           true,
				STSSeconds:           315360000,
			}).Handler)

			// Public routes
			r.Get("/", rootHandler)
			r.Get("/swagger/*", httpSwagger.Handler(
				httpSwagger.URL("/swagger/doc.json"),
			))
			r.Post("/auth/token", s.tokenHandler)
			r.Get("/match", s.getMatchHandler)
			r.Get("/calibration/{name}", s.getCalibrationHandler)

			// Protected routes for the camera rig
			r.Group(func(r chi.Router) {
				r.Use(s.authMiddleware)
				r.Post("/match/new", s.newMatchHandler)
				r.Post("/match/move", s.moveHandler)
				r.Post("/match/resume", s.resumeHandler)
				r.Post("/calibration", s.saveCalibrationHandler)
			})
		})
	})

	return r
}

// @Summary Get API information
// @Description Returns basic API information and available endpoints
// @Tags info
// @Accept json
// @Produce html
// @Success 200 {string} string "HTML page with API information"
// @Router / [get]
func rootHandler(w http.ResponseWriter, r *http.Request) {
	spec, err := docs.GetSwaggerSpec()
	if err != nil {
		log.Errorw("failed to parse swagger doc", zap.Error(err))
		spec = &docs.SwaggerSpec{}
	}

	html := `
<html>
  <head>
    <title>Camfour API</title>
    <style>
      body { font-family: Arial, sans-serif; max-width: 800px; margin: 40px auto; padding: 20px; }
      h1 { color: #333; }
      .endpoint { margin: 20px 0; padding: 15px; border-left: 4px solid #007acc; background: #f8f9fa; }
      .method { font-weight: bold; color: #007acc; text-transform: uppercase; }
      .path { font-family: monospace; color: #333; margin: 5px 0; }
      .description { color: #666; margin: 5px 0; }
      .tag { background: #e1ecf4; color: #39739d; padding: 2px 6px; border-radius: 3px; font-size: 0.8em; margin-right: 5px; }
      a { color: #007acc; text-decoration: none; }
    </style>
  </head>
  <body>
    <h1>Camfour API</h1>
    <p>Plays Connect-Four against a human whose moves are read off a physical board.</p>
    <p><a href="/swagger/">View Swagger Documentation</a></p>

    <h2>Available Endpoints</h2>`

	paths := make([]string, 0, len(spec.Paths))
	for path := range spec.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		methods := spec.Paths[path]
		names := make([]string, 0, len(methods))
		for method := range methods {
			names = append(names, method)
		}
		sort.Strings(names)

		for _, method := range names {
			info := methods[method]
			html += fmt.Sprintf(`
    <div class="endpoint">
      <div class="method">%s</div>
      <div class="path">%s</div>
      <div class="description">%s</div>
      <div>`, method, path, ugcPolicy.Sanitize(info.Description))

			for _, tag := range info.Tags {
				html += fmt.Sprintf(`<span class="tag">%s</span>`, ugcPolicy.Sanitize(tag))
			}

			html += `</div>
    </div>`
		}
	}

	html += `
  </body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(html)); err != nil {
		log.Errorw("failed to write response", zap.Error(err))
	}
}
