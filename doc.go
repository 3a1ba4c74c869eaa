// Package msgsearch provides a read-only text search service over a small,
// static corpus of chat-like messages.
//
// Works both as a library for embedding in your application AND as a
// standalone microservice with REST API (cmd/msgsearch-server).
//
// # Features
//
//   - One-time startup load: fetch the full record set once, build the index,
//     serve every query from memory with no further upstream calls
//   - Multi-token AND search with case-insensitive, token-equality matching
//   - Deterministic pagination in the corpus's original received order
//   - Pluggable search strategies: naive linear scan (baseline), inverted
//     token→positions index, and a Bleve-backed adapter — all behaviorally
//     indistinguishable
//   - Pluggable message sources: HTTP JSON endpoint, SQL table via Relica
//     (MySQL, PostgreSQL, SQLite), or a static in-memory slice
//   - Options Pattern for modern Go API design
//   - Pluggable architecture: bring your own Logger, Notification system
//   - Truthful readiness: no partial index is ever exposed; a failed load
//     leaves the service permanently unready instead of crash-looping
//   - Bounded startup fetch: per-attempt timeout plus exponential backoff
//   - Embedded migrations for the SQL source's messages table
//   - Cloud Native: 12-factor app, ENV config, health checks
//
// # Quick Start
//
// # Option 1: As Embedded Library
//
//	import (
//	    "github.com/coregx/msgsearch"
//	    "github.com/coregx/msgsearch/adapters/httpsource"
//	    "github.com/coregx/msgsearch/model"
//	)
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(httpsource.New("https://example.com")),
//	    msgsearch.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One-time fetch + build; the service is unready until this succeeds.
//	if err := svc.Load(ctx); err != nil {
//	    log.Printf("load failed: %v", err)
//	}
//
//	resp, err := svc.Search(ctx, model.SearchRequest{
//	    Query:    "paris",
//	    Page:     1,
//	    PageSize: 10,
//	})
//
// # Option 2: As Standalone Service
//
// Run cmd/msgsearch-server and configure via environment variables
// (SOURCE_URL, SERVER_PORT, ...). The server exposes:
//
//	GET /search?q=...&page=1&page_size=10
//	GET /health
//
// # SQL-backed corpus
//
// The corpus can also live in a SQL table read once at startup:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/msgsearch/adapters/relicasource"
//	    _ "github.com/mattn/go-sqlite3"
//	)
//
//	db, _ := sql.Open("sqlite3", "corpus.db")
//	source := relicasource.New(db, "sqlite3")
//
// The embedded DDL for the messages table is exposed via
// msgsearch.MigrationFiles.
package msgsearch
