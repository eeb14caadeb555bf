package repo

import (
	"context"
	"database/sql"

	"Railcalc/internal/catalog"
)

// Column names follow the existing carriage table.
const catalogQuery = `SELECT nazvanie, radialnaya, osevaya, mx, my, mzs, mzd
	FROM karetki_rolikovie ORDER BY nazvanie ASC`

type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogDB(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// Items implements catalog.Provider. NULL ratings become absent capacities.
func (r *PostgresCatalogRepository) Items(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.db.QueryContext(ctx, catalogQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []catalog.Item{}
	for rows.Next() {
		var name string
		var radial, axial, mx, my, mzs, mzd sql.NullFloat64
		if err := rows.Scan(&name, &radial, &axial, &mx, &my, &mzs, &mzd); err != nil {
			return nil, err
		}
		items = append(items, catalog.Item{
			Name:   name,
			Radial: nullable(radial),
			Axial:  nullable(axial),
			Mx:     nullable(mx),
			My:     nullable(my),
			Mzs:    nullable(mzs),
			Mzd:    nullable(mzd),
		})
	}
	return items, rows.Err()
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return catalog.Value(v.Float64)
}
