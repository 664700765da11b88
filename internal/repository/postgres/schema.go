package postgres

import _ "embed"

// Schema is the idempotent DDL for the whole database. Applied at
// startup when MIGRATE_ON_START is set, or by hand with psql.
//
//go:embed schema.sql
var Schema string
