// Package relicasource implements the msgsearch.MessageSource interface over
// a SQL table using the Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database
// query builder for Go with zero production dependencies. This adapter reads
// the full messages table once, in insertion (seq) order, so a SQL-hosted
// corpus gets the same deterministic pagination as the HTTP source.
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/msgsearch"
//	    "github.com/coregx/msgsearch/adapters/relicasource"
//	    _ "github.com/mattn/go-sqlite3"
//	)
//
//	db, err := sql.Open("sqlite3", "corpus.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// driverName should be "mysql", "postgres", or "sqlite3"
//	source := relicasource.New(db, "sqlite3")
//
//	svc, err := msgsearch.NewService(
//	    msgsearch.WithSource(source),
//	    msgsearch.WithLogger(logger),
//	)
package relicasource

import (
	"context"
	"database/sql"

	msgsearch "github.com/coregx/msgsearch"
	"github.com/coregx/msgsearch/model"
	"github.com/coregx/relica"
)

// Source implements msgsearch.MessageSource using Relica.
type Source struct {
	db    *relica.DB
	table string
}

// New creates a Source reading from the default "messages" table.
func New(sqlDB *sql.DB, driverName string) *Source {
	return &Source{db: relica.WrapDB(sqlDB, driverName), table: "messages"}
}

// NewWithTable creates a Source reading from a custom table.
func NewWithTable(sqlDB *sql.DB, driverName, table string) *Source {
	return &Source{db: relica.WrapDB(sqlDB, driverName), table: table}
}

// FetchAll implements msgsearch.MessageSource. It reads the complete table
// in seq order. An empty table is a legal (empty) corpus, not an error.
func (s *Source) FetchAll(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	err := s.db.WithContext(ctx).
		Select("id", "user_id", "user_name", "timestamp", "message").
		From(s.table).
		OrderBy("seq ASC").
		All(&messages)
	if err != nil {
		return nil, msgsearch.NewErrorWithCause(msgsearch.ErrCodeSource, "failed to read messages table", err)
	}
	return messages, nil
}
