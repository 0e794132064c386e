package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"americanclave/internal/album"
	"americanclave/internal/catalog"
	"americanclave/internal/covers"
	"americanclave/internal/metrics"
	"americanclave/internal/middleware"
	"americanclave/internal/player"
	"americanclave/internal/source"
	"americanclave/pkg/database"
	"americanclave/pkg/utils"
)

// pinger is implemented by sources that can report their own health.
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	configPath := flag.String("config", "", "config file path (default $CLAVE_CONFIG or ./clave.toml)")
	flag.Parse()

	cfg, resolved, exists, err := utils.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if exists {
		log.Printf("config loaded from %s", resolved)
	}

	src, db := openSource(cfg)
	if db != nil {
		defer db.Close()
	}

	m := metrics.New()
	resolver := catalog.NewResolver(src, covers.NewBuilder(cfg.R2.PublicURL), m)

	router := gin.Default()
	_ = router.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	registerRoutes(router, resolver, m, src)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s (source: %s)", cfg.HTTP.Addr, src.Name())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("server stopped")
}

// openSource returns the configured catalog source. db is non-nil only for
// the mirror and must be closed by the caller.
func openSource(cfg *utils.Config) (catalog.Source, *sql.DB) {
	if cfg.Source.Kind == utils.SourceMirror {
		db := database.MustOpen(cfg.Database())
		if err := database.Migrate(db); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
		return source.NewMirror(db), db
	}
	return source.NewWorker(cfg.Source.WorkerURL, cfg.Timeout()), nil
}

func registerRoutes(router *gin.Engine, resolver *catalog.Resolver, m *metrics.Metrics, src catalog.Source) {
	router.Use(middleware.RequestID(), m.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source": src.Name()})
	})

	router.GET("/ready", func(c *gin.Context) {
		p, ok := src.(pinger)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"status": "ready", "source": src.Name()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":       "not_ready",
				"source":       src.Name(),
				"source_error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "source": src.Name()})
	})

	router.GET("/metrics", gin.WrapH(m.Handler()))

	albums := album.NewHandler(resolver)
	albums.RegisterRoutes(router.Group("/albums"))
	albums.RegisterGroupRoutes(router.Group("/groups"))

	player.NewHandler(resolver).RegisterRoutes(router.Group("/players"))
}
