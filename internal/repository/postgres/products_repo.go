package postgres

import (
	"context"

	"github.com/castanedalj/tienda-backend/internal/models"
	"github.com/castanedalj/tienda-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productsRepo struct{ pool *pgxpool.Pool }

func NewProducts(pool *pgxpool.Pool) repository.Products {
	return &productsRepo{pool: pool}
}

func (r *productsRepo) Create(name string, price float64, category string) (models.Product, error) {
	id := uuid.NewString()
	var p models.Product
	err := r.pool.QueryRow(context.Background(),
		`INSERT INTO products(id, name, price, category) VALUES($1,$2,$3,$4)
		 RETURNING id, name, price, category, created_at`,
		id, name, price, category,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.CreatedAt)
	return p, err
}

func (r *productsRepo) List() ([]models.Product, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, price, category, created_at FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update applies only the provided fields. A no-match id is not an error, the
// statement simply touches zero rows.
func (r *productsRepo) Update(id string, patch models.ProductPatch) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE products
		    SET name     = COALESCE($2, name),
		        price    = COALESCE($3, price),
		        category = COALESCE($4, category)
		  WHERE id = $1`,
		id, patch.Name, patch.Price, patch.Category,
	)
	return err
}

func (r *productsRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id=$1`, id)
	return err
}
