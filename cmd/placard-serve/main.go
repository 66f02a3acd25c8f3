// Command placard-serve hosts a standalone documentation page: it reads a
// YAML manifest and PLACARD_* env vars, mounts the page on a chi server,
// and serves until interrupted
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"placard/docpage"
	"placard/httpkit"
	"placard/internal/platform/config"
	"placard/internal/platform/logger"
	pstrings "placard/internal/platform/strings"
)

func main() {
	cfg := config.New().Prefix("PLACARD_")
	l := logger.Get()

	man, err := loadManifest(cfg.MayString("MANIFEST", "placard.yaml"))
	if err != nil {
		l.Panic().Err(err).Msg("load manifest")
	}

	srv := httpkit.NewServer(cfg, func(m *chi.Mux) {
		m.Use(httpkit.RequestID)
		m.Use(httpkit.RecoverJSON)
		m.Use(httpkit.CORS(httpkit.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		}))
		m.Use(httpkit.AccessLog(httpkit.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW", 500*time.Millisecond),
		}))
	})

	var auth *httpkit.BasicAuth
	if u := cfg.MayString("BASIC_AUTH_USER", ""); u != "" {
		auth = &httpkit.BasicAuth{
			User:  u,
			Pass:  cfg.MustString("BASIC_AUTH_PASS"),
			Realm: "docs",
		}
	}

	err = docpage.Mount(docpage.Config{
		Title:       pstrings.IfBlank(man.Title, cfg.MayString("TITLE", "")),
		Version:     pstrings.IfBlank(man.Version, cfg.MayString("VERSION", "")),
		Router:      srv.Router(),
		Path:        cfg.MayString("DOCS_PATH", "/docs"),
		Description: man.Description,
		Host:        pstrings.IfBlank(man.Host, cfg.MayString("HOST", "")),
		Tags:        man.Tags,
		Schemes:     man.Schemes,
		Globs:       man.Globs,
		RoutePrefix: man.RoutePrefix,
		ForceSecure: cfg.MayBool("FORCE_SECURE", false),
		Validator:   man.validator(),

		SubmitMethods: man.SubmitMethods,
		AssetsDir:     cfg.MayString("ASSETS_DIR", docpage.DefaultAssetsDir),
		BasicAuth:     auth,
	})
	if err != nil {
		l.Panic().Err(err).Msg("mount docs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
