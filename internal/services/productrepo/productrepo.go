// Package productrepo queries the products catalog over a pooled Postgres
// connection. It is one of two interchangeable lookup backends; the other is
// the Supabase REST client.
package productrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/storekit/whatsapp-replies-api/internal/products"
)

const schemaName = "whatsapp_replies_api"

// DefaultMatchLimit caps the result set when the caller does not provide a limit.
const DefaultMatchLimit = 10

// likeEscaper neutralizes LIKE wildcards inside the user-supplied term so the
// pattern only ever matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FindByTerm returns products whose name, model, or sku contains term,
// case-insensitively, capped at limit. A blank term and an unmatched term both
// yield an empty result, not an error.
func (r *Repository) FindByTerm(ctx context.Context, term string, limit int) ([]products.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"
	query := fmt.Sprintf(`
		SELECT id, name, model, sku, price::float8 AS price, stock, category, description
		FROM %s.products
		WHERE name ILIKE $1 OR model ILIKE $1 OR sku ILIKE $1
		ORDER BY name, id
		LIMIT $2`, schemaName)

	var matches []products.Product
	if err := queries.Raw(query, pattern, limit).Bind(ctx, r.db, &matches); err != nil {
		return nil, fmt.Errorf("failed to query products for term %q: %w", term, err)
	}
	return matches, nil
}
