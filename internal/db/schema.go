package db

import _ "embed"

// Schema creates the training record tables read by the injury risk signals.
// Every statement is idempotent.
//
//go:embed schema.sql
var Schema string
