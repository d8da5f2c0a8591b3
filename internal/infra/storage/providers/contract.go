package providers

import (
	"github.com/m04kA/SMC-MatchingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий работает одинаково с *sql.DB и с обёрткой метрик
type DBExecutor = dbmetrics.DBExecutor
