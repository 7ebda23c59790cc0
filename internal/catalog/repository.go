package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, activeOnly bool) ([]Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := `
		SELECT id, name, sort
		FROM categories
		ORDER BY sort, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Sort); err != nil {
			return nil, fmt.Errorf("repository: failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	query := `
		INSERT INTO categories (name, sort)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, c.Name, c.Sort).Scan(&c.ID); err != nil {
		return fmt.Errorf("repository: failed to insert category: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateCategory(ctx context.Context, c *Category) error {
	query := `
		UPDATE categories
		SET name = $1, sort = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, c.Name, c.Sort, c.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to update category %d: %w", c.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// DeleteCategory detaches referencing products before removing the row, in
// one transaction. The update must come first or the FK would block the
// delete.
func (r *postgresRepository) DeleteCategory(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Int64("category_id", id).Msg("repository: failed to rollback category delete")
			}
		}
	}()

	_, err = tx.Exec(ctx, `UPDATE products SET category_id = NULL WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to detach products from category %d: %w", id, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete category %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		err = ErrCategoryNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit category delete: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListProducts(ctx context.Context, activeOnly bool) ([]Product, error) {
	query := `
		SELECT p.id, p.name, p.price, p.description, p.photo_url, p.category_id,
		       COALESCE(c.name, '') AS category_name, p.is_active, p.sort
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
	`
	if activeOnly {
		query += ` WHERE p.is_active`
	}
	query += ` ORDER BY c.sort NULLS LAST, p.sort, p.id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.PhotoURL,
			&p.CategoryID,
			&p.CategoryName,
			&p.IsActive,
			&p.Sort,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

func (r *postgresRepository) CreateProduct(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (name, price, description, photo_url, category_id, is_active, sort)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		p.Name,
		p.Price,
		p.Description,
		p.PhotoURL,
		p.CategoryID,
		p.IsActive,
		p.Sort,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("repository: failed to insert product: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateProduct(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, photo_url = $4,
		    category_id = $5, is_active = $6, sort = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		p.Name,
		p.Price,
		p.Description,
		p.PhotoURL,
		p.CategoryID,
		p.IsActive,
		p.Sort,
		p.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("repository: failed to update product %d: %w", p.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteProduct(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
