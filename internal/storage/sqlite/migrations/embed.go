package migrations

import "embed"

// FS contains embedded SQLite migrations for invoicing storage.
//
//go:embed *.sql
var FS embed.FS
