package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder is a squirrel statement builder configured for PostgreSQL ($1, $2, ...).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with PostgreSQL placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
