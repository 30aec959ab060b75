package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/kdelarosa/deliverytrack/internal/domain/errors"
	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// pgxPool is the subset of pgxpool.Pool the storage uses; pgxmock satisfies
// it in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage connected to the given DSN. The schema is not touched
// here; Bootstrap owns all DDL and runs as an explicit deployment step.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Storage{pool: pool, logger: logger}, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Bootstrap creates the orders schema. Every statement is guarded by
// IF NOT EXISTS, so repeated runs are no-ops.
func (s *Storage) Bootstrap(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT,
            phone_number TEXT NOT NULL,
            delivery_address TEXT NOT NULL,
            delivery_city TEXT NOT NULL DEFAULT 'Manila',
            delivery_postal_code TEXT,
            order_description TEXT,
            order_status TEXT NOT NULL DEFAULT 'PENDING',
            assigned_driver TEXT,
            driver_notes TEXT,
            pickup_time TIMESTAMPTZ,
            delivery_time TIMESTAMPTZ,
            current_latitude NUMERIC(9,6),
            current_longitude NUMERIC(9,6),
            delivery_photo_url TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            created_by TEXT NOT NULL DEFAULT 'System'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(order_status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_driver ON orders(assigned_driver)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

const orderColumns = `id, order_number, customer_name, customer_email, phone_number,
        delivery_address, delivery_city, delivery_postal_code, order_description,
        order_status, assigned_driver, driver_notes, pickup_time, delivery_time,
        current_latitude, current_longitude, delivery_photo_url, created_at, updated_at, created_by`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.PhoneNumber,
		&o.DeliveryAddress, &o.DeliveryCity, &o.DeliveryPostalCode, &o.OrderDescription,
		&o.Status, &o.AssignedDriver, &o.DriverNotes, &o.PickupTime, &o.DeliveryTime,
		&o.CurrentLatitude, &o.CurrentLongitude, &o.DeliveryPhotoURL, &o.CreatedAt, &o.UpdatedAt, &o.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (order_number, customer_name, customer_email, phone_number,
            delivery_address, delivery_city, delivery_postal_code, order_description,
            order_status, assigned_driver, driver_notes, pickup_time, delivery_time,
            current_latitude, current_longitude, delivery_photo_url, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id, created_at, updated_at`

	created := *order
	err := r.storage.pool.QueryRow(ctx, query,
		order.OrderNumber, order.CustomerName, order.CustomerEmail, order.PhoneNumber,
		order.DeliveryAddress, order.DeliveryCity, order.DeliveryPostalCode, order.OrderDescription,
		order.Status, order.AssignedDriver, order.DriverNotes, order.PickupTime, order.DeliveryTime,
		order.CurrentLatitude, order.CurrentLongitude, order.DeliveryPhotoURL, order.CreatedBy,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `UPDATE orders SET customer_name=$1, customer_email=$2, phone_number=$3,
            delivery_address=$4, delivery_city=$5, delivery_postal_code=$6, order_description=$7,
            order_status=$8, assigned_driver=$9, driver_notes=$10, pickup_time=$11, delivery_time=$12,
            current_latitude=$13, current_longitude=$14, delivery_photo_url=$15, created_by=$16,
            updated_at=NOW()
        WHERE id=$17
        RETURNING created_at, updated_at`

	updated := *order
	err := r.storage.pool.QueryRow(ctx, query,
		order.CustomerName, order.CustomerEmail, order.PhoneNumber,
		order.DeliveryAddress, order.DeliveryCity, order.DeliveryPostalCode, order.OrderDescription,
		order.Status, order.AssignedDriver, order.DriverNotes, order.PickupTime, order.DeliveryTime,
		order.CurrentLatitude, order.CurrentLongitude, order.DeliveryPhotoURL, order.CreatedBy,
		order.ID,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id = $1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`

	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("order_status = $%d", len(args)))
	}
	if filter.Driver != "" {
		args = append(args, "%"+filter.Driver+"%")
		conds = append(conds, fmt.Sprintf("assigned_driver ILIKE $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		conds = append(conds, fmt.Sprintf("delivery_city ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.queryOrders(ctx, query, args...)
}

func (r *orderRepository) Search(ctx context.Context, q string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
        WHERE customer_name ILIKE $1 OR order_number ILIKE $1
           OR delivery_address ILIKE $1 OR phone_number ILIKE $1
        ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, "%"+q+"%")
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
