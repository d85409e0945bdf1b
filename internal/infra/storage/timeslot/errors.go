package timeslot

import "errors"

var (
	// ErrEntryNotFound возвращается, когда на дату нет записи календаря
	ErrEntryNotFound = errors.New("timeslot.repository: time slot entry not found")

	// ErrDuplicateRecord возвращается при нарушении уникальности (time_slot_id, time_label)
	ErrDuplicateRecord = errors.New("timeslot.repository: duplicate slot record")

	// ErrConcurrentUpdate возвращается при конфликте сериализуемых транзакций
	ErrConcurrentUpdate = errors.New("timeslot.repository: concurrent update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeslot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeslot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeslot.repository: failed to scan row")
)
