package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartql/internal/db"
	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/port"
)

// SQLSTATE numeric_value_out_of_range, raised when quantity leaves the INTEGER range.
const numericValueOutOfRange = "22003"

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if cartID == "" {
		return domain.Cart{}, fmt.Errorf("cartID is empty")
	}

	dbCart, err := r.q.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Cart{}, domain.ErrCartNotFound
		}
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	return r.withItems(ctx, dbCart)
}

func (r *cartRepository) FindOrCreateCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if cartID == "" {
		return domain.Cart{}, fmt.Errorf("cartID is empty")
	}

	dbCart, err := r.q.FindOrCreateCart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.FindOrCreateCart: %w", err)
	}

	return r.withItems(ctx, dbCart)
}

func (r *cartRepository) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	if cartID == "" {
		return fmt.Errorf("cartID is empty")
	}

	err := r.q.AddCartItem(ctx, db.AddCartItemParams{
		CartID:      cartID,
		ID:          item.ID,
		Name:        item.Name,
		Description: toText(item.Description),
		Image:       toText(item.Image),
		Price:       item.Price,
		Quantity:    item.Quantity,
	})
	if err != nil {
		if isOutOfRange(err) {
			return domain.ErrQuantityOutOfRange
		}
		return fmt.Errorf("q.AddCartItem: %w", err)
	}

	return nil
}

func (r *cartRepository) IncrementItem(ctx context.Context, cartID, itemID string, delta int32) (int32, error) {
	if cartID == "" {
		return 0, fmt.Errorf("cartID is empty")
	}

	quantity, err := r.q.IncrementCartItem(ctx, db.IncrementCartItemParams{
		Delta:  delta,
		CartID: cartID,
		ID:     itemID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrCartItemNotFound
		}
		if isOutOfRange(err) {
			return 0, domain.ErrQuantityOutOfRange
		}
		return 0, fmt.Errorf("q.IncrementCartItem: %w", err)
	}

	return quantity, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, itemID string) error {
	if cartID == "" {
		return fmt.Errorf("cartID is empty")
	}

	rowsAffected, err := r.q.DeleteCartItem(ctx, db.DeleteCartItemParams{
		CartID: cartID,
		ID:     itemID,
	})
	if err != nil {
		return fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}

// DecrementItem runs the decrement and the conditional delete in one transaction,
// so the row lock taken by the update covers the delete.
func (r *cartRepository) DecrementItem(ctx context.Context, cartID, itemID string) (bool, error) {
	if cartID == "" {
		return false, fmt.Errorf("cartID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (bool, error) {
		quantity, err := q.IncrementCartItem(ctx, db.IncrementCartItemParams{
			Delta:  -1,
			CartID: cartID,
			ID:     itemID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return false, domain.ErrCartItemNotFound
			}
			return false, fmt.Errorf("q.IncrementCartItem: %w", err)
		}

		if quantity > 0 {
			return false, nil
		}

		rowsAffected, err := q.DeleteDepletedCartItem(ctx, db.DeleteDepletedCartItemParams{
			CartID: cartID,
			ID:     itemID,
		})
		if err != nil {
			return false, fmt.Errorf("q.DeleteDepletedCartItem: %w", err)
		}

		return rowsAffected > 0, nil
	})
}

func (r *cartRepository) withItems(ctx context.Context, dbCart db.Cart) (domain.Cart, error) {
	rows, err := r.q.ListCartItems(ctx, dbCart.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.ListCartItems: %w", err)
	}

	return domain.Cart{
		ID:        dbCart.ID,
		Items:     mapListCartItemsRowsToDomain(rows),
		CreatedAt: dbCart.CreatedAt,
	}, nil
}

func mapListCartItemsRowToDomain(row db.ListCartItemsRow) domain.CartItem {
	return domain.CartItem{
		ID:          row.ID,
		Name:        row.Name,
		Description: fromText(row.Description),
		Image:       fromText(row.Image),
		Price:       row.Price,
		Quantity:    row.Quantity,
		CreatedAt:   row.CreatedAt,
	}
}

func mapListCartItemsRowsToDomain(rows []db.ListCartItemsRow) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(rows))

	for _, row := range rows {
		items = append(items, mapListCartItemsRowToDomain(row))
	}

	return items
}

func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericValueOutOfRange
}

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func fromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
