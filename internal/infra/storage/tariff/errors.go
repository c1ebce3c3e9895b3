package tariff

import "errors"

var (
	// ErrRateNotFound возвращается, когда для количества кругов нет тарифа
	ErrRateNotFound = errors.New("tariff.repository: rate not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tariff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tariff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tariff.repository: failed to scan row")
)
