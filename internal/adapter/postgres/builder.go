package postgres

import "github.com/Masterminds/squirrel"

// Builder is the shared statement builder using PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
