// Package migrations holds the bun migrations for the questions table.
package migrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()
