package productrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/taskmart/taskmart/internal/domain"
	"github.com/taskmart/taskmart/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const productColumns = `id, name, description, price, discount_rate, quantity, image_url, created_at`

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.DiscountRate,
		&p.Quantity,
		&p.ImageURL,
		&p.CreatedAt,
	)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var p domain.Product
	if err := scanProduct(row, &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DiscountRate, &p.Quantity, &p.ImageURL, &p.CreatedAt); err != nil {
			zap.L().Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (id, name, description, price, discount_rate, quantity, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + productColumns + `
    `
	row := r.db.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.DiscountRate, p.Quantity, p.ImageURL)
	var created domain.Product
	if err := scanProduct(row, &created); err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET name = $2, description = $3, price = $4, discount_rate = $5, quantity = $6, image_url = $7
        WHERE id = $1
        RETURNING ` + productColumns + `
    `
	row := r.db.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.DiscountRate, p.Quantity, p.ImageURL)
	var updated domain.Product
	if err := scanProduct(row, &updated); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to update product", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

// DecrementQuantity atomically reduces stock with a floor check: the update
// only matches while enough stock remains, so concurrent purchases cannot
// drive quantity negative. Returns false when stock was insufficient.
func (r *Repository) DecrementQuantity(ctx context.Context, id string, amount int) (bool, error) {
	query := `
        UPDATE products
        SET quantity = quantity - $2
        WHERE id = $1 AND quantity >= $2
    `
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("failed to decrement product quantity", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementQuantity restores stock. Used to roll back a decrement when a
// later purchase step fails.
func (r *Repository) IncrementQuantity(ctx context.Context, id string, amount int) error {
	query := `
        UPDATE products
        SET quantity = quantity + $2
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id, amount); err != nil {
		zap.L().Error("failed to increment product quantity", zap.Error(err))
		return err
	}
	return nil
}
