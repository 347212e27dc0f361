package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

// Querier is the subset of pgxpool.Pool / pgx.Tx used by the repositories.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogRepo reads the tyre catalog reference table.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository builds the catalog reader. Pass pool or tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// LoadAll returns the whole catalog in position order. Position order matters
// because search suggestions are served in catalog order.
func (r *CatalogRepo) LoadAll(ctx context.Context) ([]entity.CatalogItem, error) {
	query := `
		SELECT product_code, description, category, cmp_set, nbp_gst_18
		FROM catalog_items
		ORDER BY position`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	var items []entity.CatalogItem
	for rows.Next() {
		var (
			item entity.CatalogItem
			cmp  decimal.Decimal
		)
		if err := rows.Scan(&item.Code, &item.Description, &item.Category, &cmp, &item.NBP); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		item.BasePrice = cmp
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	return items, nil
}
