package msgsearch

import "embed"

// MigrationFiles contains the SQL migration files embedded in the binary.
// They create the messages table read by the relicasource adapter. Users can
// apply them with their preferred migration tool (goose, golang-migrate,
// atlas, etc.) or execute them directly.
//
// Example with goose:
//
//	import (
//	    "github.com/pressly/goose/v3"
//	    msgsearch "github.com/coregx/msgsearch"
//	)
//
//	goose.SetBaseFS(msgsearch.MigrationFiles)
//	if err := goose.Up(db, "migrations"); err != nil {
//	    log.Fatal(err)
//	}
//
//go:embed migrations/*.sql
var MigrationFiles embed.FS
