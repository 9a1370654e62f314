package db

import _ "embed"

// Schema is the full DDL for a fresh database, applied by the e2e test
// harness and by local bootstrap scripts.
//
//go:embed schema.sql
var Schema string
