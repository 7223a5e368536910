package extensionsession

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/voltride/VR-CustomerPortal/internal/domain"
	"github.com/voltride/VR-CustomerPortal/pkg/psqlbuilder"
	"github.com/voltride/VR-CustomerPortal/pkg/types"
)

// Repository репозиторий сессий пролонгации. На одно бронирование существует
// не более одной сессии: новая проверка доступности вытесняет предыдущую.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var sessionColumns = []string{
	"id",
	"booking_id",
	"customer_id",
	"step",
	"new_end_date",
	"new_end_time",
	"additional_days",
	"total_amount",
	"agency_payment_available",
	"payment_method",
	"extension_number",
	"payment_status",
	"last_error",
	"submitting",
	"created_at",
	"updated_at",
}

// Save вставляет сессию, замещая предыдущую сессию этого бронирования
func (r *Repository) Save(ctx context.Context, session *domain.ExtensionSession) error {
	query, args, err := psqlbuilder.Insert("extension_sessions").
		Columns(
			"id",
			"booking_id",
			"customer_id",
			"step",
			"new_end_date",
			"new_end_time",
			"additional_days",
			"total_amount",
			"agency_payment_available",
			"payment_method",
			"extension_number",
			"payment_status",
			"last_error",
			"submitting",
		).
		Values(
			session.ID,
			session.BookingID,
			session.CustomerID,
			string(session.Step),
			session.NewEndDate.String(),
			session.NewEndTime.String(),
			session.AdditionalDays,
			session.TotalAmount,
			session.AgencyPaymentAvailable,
			paymentMethodValue(session.PaymentMethod),
			session.ExtensionNumber,
			session.PaymentStatus,
			session.LastError,
			session.Submitting,
		).
		Suffix(`ON CONFLICT (booking_id) DO UPDATE SET
			id = EXCLUDED.id,
			customer_id = EXCLUDED.customer_id,
			step = EXCLUDED.step,
			new_end_date = EXCLUDED.new_end_date,
			new_end_time = EXCLUDED.new_end_time,
			additional_days = EXCLUDED.additional_days,
			total_amount = EXCLUDED.total_amount,
			agency_payment_available = EXCLUDED.agency_payment_available,
			payment_method = EXCLUDED.payment_method,
			extension_number = EXCLUDED.extension_number,
			payment_status = EXCLUDED.payment_status,
			last_error = EXCLUDED.last_error,
			submitting = EXCLUDED.submitting,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByBookingID получает сессию пролонгации бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.ExtensionSession, error) {
	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("extension_sessions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSession(r.db.QueryRowContext(ctx, query, args...))
}

// Update полностью обновляет сессию по ID
func (r *Repository) Update(ctx context.Context, session *domain.ExtensionSession) error {
	query, args, err := psqlbuilder.Update("extension_sessions").
		Set("step", string(session.Step)).
		Set("new_end_date", session.NewEndDate.String()).
		Set("new_end_time", session.NewEndTime.String()).
		Set("additional_days", session.AdditionalDays).
		Set("total_amount", session.TotalAmount).
		Set("agency_payment_available", session.AgencyPaymentAvailable).
		Set("payment_method", paymentMethodValue(session.PaymentMethod)).
		Set("extension_number", session.ExtensionNumber).
		Set("payment_status", session.PaymentStatus).
		Set("last_error", session.LastError).
		Set("submitting", session.Submitting).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": session.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// BeginSubmit атомарно помечает сессию как подтверждаемую. Возвращает
// ErrAlreadySubmitting, если по сессии уже идет подтверждение: повторная
// отправка с той же страницы не должна породить второй запрос к платформе.
func (r *Repository) BeginSubmit(ctx context.Context, sessionID string) error {
	query, args, err := psqlbuilder.Update("extension_sessions").
		Set("submitting", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sessionID, "submitting": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: BeginSubmit - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: BeginSubmit - execute update: %v", ErrExecQuery, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: BeginSubmit - rows affected: %v", ErrExecQuery, err)
	}
	if rows == 0 {
		return ErrAlreadySubmitting
	}
	return nil
}

// DeleteByBookingID удаляет сессию бронирования (после завершения потока)
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	query, args, err := psqlbuilder.Delete("extension_sessions").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) scanSession(row *sql.Row) (*domain.ExtensionSession, error) {
	var (
		session       domain.ExtensionSession
		step          string
		newEndDate    string
		newEndTime    string
		paymentMethod sql.NullString
	)

	err := row.Scan(
		&session.ID,
		&session.BookingID,
		&session.CustomerID,
		&step,
		&newEndDate,
		&newEndTime,
		&session.AdditionalDays,
		&session.TotalAmount,
		&session.AgencyPaymentAvailable,
		&paymentMethod,
		&session.ExtensionNumber,
		&session.PaymentStatus,
		&session.LastError,
		&session.Submitting,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan session: %v", ErrScanRow, err)
	}

	session.Step = domain.ExtensionStep(step)
	if !session.Step.IsValid() {
		return nil, fmt.Errorf("%w: unknown workflow step %q", ErrScanRow, step)
	}
	session.NewEndDate = types.DateString(newEndDate)
	session.NewEndTime = types.TimeString(newEndTime)
	if paymentMethod.Valid {
		method := domain.PaymentMethod(paymentMethod.String)
		session.PaymentMethod = &method
	}

	return &session, nil
}

func paymentMethodValue(m *domain.PaymentMethod) interface{} {
	if m == nil {
		return nil
	}
	return string(*m)
}
