package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookline/shopify-booking-service/internal/domain"
	"github.com/bookline/shopify-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Колонка is_activated записывается только при установленном флаге,
// иначе остается значение по умолчанию (false).
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	columns := []string{
		"shopify_product_title",
		"duration",
		"start_datetime",
		"shopify_product_id",
	}
	values := []any{
		b.ProductTitle,
		b.Duration,
		b.StartDatetime,
		b.ShopifyProductID,
	}

	if b.IsActivated {
		columns = append(columns, "is_activated")
		values = append(values, b.IsActivated)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"shopify_product_title",
		"duration",
		"start_datetime",
		"shopify_product_id",
		"is_activated",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.ProductTitle,
		&b.Duration,
		&b.StartDatetime,
		&b.ShopifyProductID,
		&b.IsActivated,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// List получает бронирования с фильтрацией.
// Фильтры комбинируются через AND, сортировка по времени создания (новые первыми).
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"shopify_product_title",
		"duration",
		"start_datetime",
		"shopify_product_id",
		"is_activated",
		"created_at",
	).
		From("bookings")

	// Фильтрация по календарной дате start_datetime
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("start_datetime::date = ?::date", *filter.Date),
		)
	}

	// Только будущие слоты
	if filter.FutureOnly {
		selectBuilder = selectBuilder.Where(squirrel.Expr("start_datetime > NOW()"))
	}

	// Фильтрация по товару
	if filter.ShopifyProductID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"shopify_product_id": *filter.ShopifyProductID})
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ExistsAtInstant проверяет, занят ли слот: ищет бронирование
// с точным совпадением товара и момента начала
func (r *Repository) ExistsAtInstant(ctx context.Context, shopifyProductID int64, instant time.Time) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"shopify_product_id": shopifyProductID}).
		Where(squirrel.Eq{"start_datetime": instant}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtInstant - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtInstant - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// DeleteByID удаляет бронирование по ID
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ProductTitle,
			&b.Duration,
			&b.StartDatetime,
			&b.ShopifyProductID,
			&b.IsActivated,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
