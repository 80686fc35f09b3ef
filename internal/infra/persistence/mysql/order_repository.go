package mysql

import (
	"context"
	"database/sql"
	"errors"

	domorder "example.com/musicstore/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO orders (username, order_date, first_name, last_name,
            address, city, state, postal_code, country, phone, email, total)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, o.Username, o.OrderDate, o.FirstName, o.LastName,
		o.Address, o.City, o.State, o.PostalCode, o.Country, o.Phone, o.Email, o.Total)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	var o domorder.Order
	err := r.db.QueryRowContext(ctx, `
        SELECT id, username, order_date, first_name, last_name,
               address, city, state, postal_code, country, phone, email, total
        FROM orders
        WHERE id = ?
    `, id).Scan(&o.ID, &o.Username, &o.OrderDate, &o.FirstName, &o.LastName,
		&o.Address, &o.City, &o.State, &o.PostalCode, &o.Country, &o.Phone, &o.Email, &o.Total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}
