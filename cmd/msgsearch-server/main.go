// Package main provides the msgsearch server executable: a read-only search
// HTTP API over a message corpus fetched once at startup.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	msgsearch "github.com/coregx/msgsearch"
	"github.com/coregx/msgsearch/adapters/bleveindex"
	"github.com/coregx/msgsearch/adapters/httpsource"
	"github.com/coregx/msgsearch/adapters/relicasource"
	"github.com/coregx/msgsearch/cmd/msgsearch-server/internal/api"
	"github.com/coregx/msgsearch/cmd/msgsearch-server/internal/config"
	"github.com/coregx/msgsearch/retry"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SimpleLogger implements msgsearch.Logger for standard logging.
type SimpleLogger struct{}

func (l *SimpleLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[DEBUG] "+format, args...)
}
func (l *SimpleLogger) Infof(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}
func (l *SimpleLogger) Warnf(format string, args ...interface{}) {
	log.Printf("[WARN] "+format, args...)
}
func (l *SimpleLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}
func (l *SimpleLogger) Info(message string) {
	log.Printf("[INFO] %s", message)
}

func main() {
	log.Println("🚀 Starting msgsearch server v0.1.0...")

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("📝 Configuration loaded:")
	log.Printf("   Server: %s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("   Source: %s", cfg.Source.Kind)
	log.Printf("   Search strategy: %s", cfg.Search.Strategy)

	logger := &SimpleLogger{}

	// Create the message source
	source, cleanup, err := buildSource(cfg)
	if err != nil {
		log.Fatalf("Failed to create message source: %v", err)
	}
	defer cleanup()

	// Create the search service
	svc, err := msgsearch.NewService(
		msgsearch.WithSource(source),
		msgsearch.WithLogger(logger),
		msgsearch.WithSearcherFactory(searcherFactory(cfg)),
		msgsearch.WithFetchTimeout(time.Duration(cfg.Source.TimeoutSeconds)*time.Second),
		msgsearch.WithRetryStrategy(retryStrategy(cfg)),
		msgsearch.WithNotifications(msgsearch.NewLoggingNotificationService(logger)),
	)
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}
	log.Println("✅ Search service created")

	// Run the one-time load in the background; /health reports unready until
	// it succeeds, permanently if it fails.
	loadCtx, loadCancel := context.WithCancel(context.Background())
	defer loadCancel()

	go func() {
		log.Println("🔄 Loading message corpus...")
		if err := svc.Load(loadCtx); err != nil {
			logger.Errorf("Startup load failed: %v", err)
			return
		}
		log.Println("✅ msgsearch server is ready!")
	}()

	// Create API handler
	handler := api.NewHandler(svc, logger)

	// Setup HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("/search", handler.HandleSearch)
	mux.HandleFunc("/health", handler.HandleHealth)
	mux.HandleFunc("/", handler.HandleRoot)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      loggingMiddleware(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		log.Printf("🌐 HTTP server listening on %s", addr)
		log.Println("📡 API Endpoints:")
		log.Println("   GET /search?q=...&page=1&page_size=10")
		log.Println("   GET /health")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	loadCancel()
	log.Println("✅ Server stopped gracefully")
}

// buildSource creates the configured message source. The returned cleanup
// closes any database handle the source holds.
func buildSource(cfg *config.Config) (msgsearch.MessageSource, func(), error) {
	switch cfg.Source.Kind {
	case config.SourceKindSQL:
		db, err := sql.Open(cfg.Database.Driver, cfg.Database.GetDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("✅ Database connection established")
		cleanup := func() {
			if closeErr := db.Close(); closeErr != nil {
				log.Printf("Failed to close database: %v", closeErr)
			}
		}
		return relicasource.NewWithTable(db, cfg.Database.Driver, cfg.Database.Table), cleanup, nil
	default:
		return httpsource.New(cfg.Source.URL), func() {}, nil
	}
}

// searcherFactory maps the configured strategy name to a factory.
func searcherFactory(cfg *config.Config) msgsearch.SearcherFactory {
	switch cfg.Search.Strategy {
	case config.StrategyPostings:
		return msgsearch.NewPostingsSearcher
	case config.StrategyBleve:
		return bleveindex.NewSearcher
	default:
		return msgsearch.NewScanSearcher
	}
}

// retryStrategy derives the startup fetch retry strategy from configuration.
func retryStrategy(cfg *config.Config) retry.Strategy {
	s := retry.DefaultStrategy()
	if cfg.Source.RetryAttempts > 0 {
		s.MaxAttempts = cfg.Source.RetryAttempts
	}
	return s
}

// loggingMiddleware logs HTTP requests, tagging each with a request id.
func loggingMiddleware(next http.Handler, logger msgsearch.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		logger.Infof("[%s] %s %s", reqID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		logger.Debugf("[%s] %s %s - %v", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}
