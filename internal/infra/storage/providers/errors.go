package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда исполнитель не найден
	ErrProviderNotFound = errors.New("providers.repository: provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("providers.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("providers.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("providers.repository: failed to scan row")

	// ErrInvalidSkillLevel возвращается при неизвестном уровне квалификации в данных
	ErrInvalidSkillLevel = errors.New("providers.repository: invalid skill level")
)
