package repos

import (
	"database/sql"
	"strings"

	"dropsmob/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, category, name, description, price, image, featured`

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, errors.Wrapf(err, "get product %s", id)
}

// Search lists products whose name contains q under Unicode case folding,
// optionally restricted to one category. Empty q and category match everything.
func (r *ProductRepo) Search(q string, category domain.Category) ([]domain.Product, error) {
	where := `1 = 1`
	args := []any{}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, string(category))
	}

	rows := []domain.Product{}
	err := r.db.Select(&rows, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE `+where+`
	  ORDER BY featured DESC, created_at, id`, args...)
	if err != nil {
		return nil, errors.Wrap(err, "search products")
	}
	if q == "" {
		return rows, nil
	}

	// SQLite's LOWER only folds ASCII; names here are Portuguese.
	fold := cases.Fold()
	needle := fold.String(q)
	out := []domain.Product{}
	for _, p := range rows {
		if strings.Contains(fold.String(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}
