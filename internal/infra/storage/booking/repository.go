package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/pgerr"
	"github.com/m04kA/SMC-SlotPaymentService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"customer_name",
	"first_name",
	"last_name",
	"email",
	"contact_number",
	"selected_date",
	"selected_time_slot",
	"total_price",
	"make_and_model",
	"registration_no",
	"aware_of_cancellation_policy",
	"how_did_you_hear_about_us",
	"booked_by",
	"payment_method",
	"payment_status",
	"paypal_order_id",
	"capture_id",
	"refund_id",
	"refund_status",
	"refund_amount",
	"refund_reason",
	"refund_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование. ID генерируется вызывающей стороной.
// customer_name пересчитывается перед записью.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	booking.RefreshDerived()

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"first_name",
			"last_name",
			"email",
			"contact_number",
			"selected_date",
			"selected_time_slot",
			"total_price",
			"make_and_model",
			"registration_no",
			"aware_of_cancellation_policy",
			"how_did_you_hear_about_us",
			"booked_by",
			"payment_method",
			"payment_status",
			"paypal_order_id",
			"refund_status",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.FirstName,
			booking.LastName,
			booking.Email,
			booking.ContactNumber,
			booking.SelectedDate.Format(domain.DateFormat),
			booking.SelectedTimeSlot.String(),
			booking.TotalPrice,
			booking.MakeAndModel,
			booking.RegistrationNo,
			booking.AwareOfCancellationPolicy,
			booking.HowDidYouHearAboutUs,
			booking.BookedBy,
			booking.PaymentMethod,
			booking.PaymentStatus,
			booking.PaypalOrderID,
			booking.RefundStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, classify("Create - execute insert", err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByOrderID получает бронирование по ID заказа PayPal (или номеру счета Cash).
// В транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByOrderID", squirrel.Eq{"paypal_order_id": orderID})
}

// GetByCaptureID получает бронирование по ID capture.
// В транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByCaptureID(ctx context.Context, captureID string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCaptureID", squirrel.Eq{"capture_id": captureID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// ExistsCompleted проверяет, есть ли оплаченное бронирование на дату и время
func (r *Repository) ExistsCompleted(ctx context.Context, date time.Time, label domain.TimeLabel) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"selected_date":      date.Format(domain.DateFormat),
			"selected_time_slot": label.String(),
			"payment_status":     domain.PaymentCompleted,
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsCompleted - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsCompleted - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateOrderID сохраняет ID заказа платежного шлюза
func (r *Repository) UpdateOrderID(ctx context.Context, id string, orderID string) error {
	return r.update(ctx, "UpdateOrderID", id, map[string]interface{}{
		"paypal_order_id": orderID,
	})
}

// UpdatePayment сохраняет статус оплаты и ID capture
func (r *Repository) UpdatePayment(ctx context.Context, booking *domain.Booking) error {
	booking.RefreshDerived()
	return r.update(ctx, "UpdatePayment", booking.ID, map[string]interface{}{
		"customer_name":  booking.CustomerName,
		"payment_status": booking.PaymentStatus,
		"capture_id":     booking.CaptureID,
	})
}

// UpdateRefund сохраняет данные возврата
func (r *Repository) UpdateRefund(ctx context.Context, booking *domain.Booking) error {
	booking.RefreshDerived()
	return r.update(ctx, "UpdateRefund", booking.ID, map[string]interface{}{
		"customer_name": booking.CustomerName,
		"refund_id":     booking.RefundID,
		"refund_status": booking.RefundStatus,
		"refund_amount": booking.RefundAmount,
		"refund_reason": booking.RefundReason,
		"refund_date":   booking.RefundDate,
	})
}

func (r *Repository) update(ctx context.Context, op string, id string, fields map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify(op+" - execute update", err)
	}

	return requireAffected(op, result)
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classify("Delete - execute delete", err)
	}

	return requireAffected("Delete", result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking      domain.Booking
		selectedDate time.Time
		timeSlot     string
	)

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.ContactNumber,
		&selectedDate,
		&timeSlot,
		&booking.TotalPrice,
		&booking.MakeAndModel,
		&booking.RegistrationNo,
		&booking.AwareOfCancellationPolicy,
		&booking.HowDidYouHearAboutUs,
		&booking.BookedBy,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.PaypalOrderID,
		&booking.CaptureID,
		&booking.RefundID,
		&booking.RefundStatus,
		&booking.RefundAmount,
		&booking.RefundReason,
		&booking.RefundDate,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.SelectedDate = domain.NormalizeDate(selectedDate)
	booking.SelectedTimeSlot = domain.TimeLabel(timeSlot)

	return &booking, nil
}

func requireAffected(op string, result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// classify переводит ошибки PostgreSQL в ошибки репозитория
func classify(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrDuplicateOrderID, op, err)
	case pgerr.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}
