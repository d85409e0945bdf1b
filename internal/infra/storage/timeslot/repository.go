package timeslot

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

// Repository репозиторий календаря слотов (таблицы time_slots и time_slot_records)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByDate получает запись календаря на дату вместе с записями слотов.
// В транзакции строка дня блокируется (FOR UPDATE), что сериализует запись в один день.
func (r *Repository) FindByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "slot_date", "created_at", "updated_at").
		From("time_slots").
		Where(squirrel.Eq{"slot_date": domain.NormalizeDate(date).Format(domain.DateFormat)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - build select query: %v", ErrBuildQuery, err)
	}

	var (
		entry   domain.TimeSlotEntry
		slotDay time.Time
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&slotDay,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, classify("FindByDate - scan entry", err, ErrScanRow)
	}
	entry.Date = domain.NormalizeDate(slotDay)

	records, err := r.getRecords(ctx, executor, entry.ID)
	if err != nil {
		return nil, err
	}
	entry.Records = records

	return &entry, nil
}

// EnsureByDate возвращает запись календаря на дату, создавая пустую при необходимости.
// Записи слотов не создаются.
func (r *Repository) EnsureByDate(ctx context.Context, date time.Time) (*domain.TimeSlotEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns("slot_date").
		Values(domain.NormalizeDate(date).Format(domain.DateFormat)).
		Suffix("ON CONFLICT (slot_date) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EnsureByDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, classify("EnsureByDate - execute insert", err, ErrExecQuery)
	}

	return r.FindByDate(ctx, date)
}

// SaveRecord сохраняет запись слота (upsert по time_slot_id + time_label)
func (r *Repository) SaveRecord(ctx context.Context, entryID int64, record *domain.SlotRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slot_records").
		Columns("time_slot_id", "time_label", "booked_by", "blocked_by").
		Values(entryID, record.Time.String(), record.BookedBy, record.BlockedBy).
		Suffix("ON CONFLICT (time_slot_id, time_label) DO UPDATE SET " +
			"booked_by = EXCLUDED.booked_by, blocked_by = EXCLUDED.blocked_by RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveRecord - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return classify("SaveRecord - execute upsert", err, ErrExecQuery)
	}

	touchQuery, touchArgs, err := psqlbuilder.Update("time_slots").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entryID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveRecord - build touch query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, touchQuery, touchArgs...); err != nil {
		return classify("SaveRecord - touch entry", err, ErrExecQuery)
	}

	return nil
}

func (r *Repository) getRecords(ctx context.Context, executor DBExecutor, entryID int64) ([]domain.SlotRecord, error) {
	query, args, err := psqlbuilder.Select("id", "time_label", "booked_by", "blocked_by").
		From("time_slot_records").
		Where(squirrel.Eq{"time_slot_id": entryID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getRecords - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("getRecords - execute query", err, ErrExecQuery)
	}
	defer rows.Close()

	records := make([]domain.SlotRecord, 0)
	for rows.Next() {
		var (
			record domain.SlotRecord
			label  string
		)
		if err := rows.Scan(&record.ID, &label, &record.BookedBy, &record.BlockedBy); err != nil {
			return nil, fmt.Errorf("%w: getRecords - scan record: %v", ErrScanRow, err)
		}
		record.Time = domain.TimeLabel(label)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getRecords - rows iteration: %v", ErrScanRow, err)
	}

	return records, nil
}

// classify переводит ошибки PostgreSQL в ошибки репозитория
func classify(op string, err error, fallback error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrDuplicateRecord, op, err)
	case pgerr.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrConcurrentUpdate, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", fallback, op, err)
	}
}
