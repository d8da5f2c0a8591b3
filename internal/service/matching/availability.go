package matching

import (
	"time"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// isAvailable проверяет, что исполнитель доступен в запрошенный интервал
// Рассматриваются только окна на ту же календарную дату (год, месяц, день);
// время суток и таймзона даты игнорируются. Интервал должен целиком
// помещаться в ОДНО окно: два смежных окна не склеиваются
func isAvailable(provider *domain.Provider, date time.Time, startTime, endTime types.TimeString) bool {
	for _, window := range provider.Availability {
		if !isSameDay(window.Date, date) {
			continue
		}

		// Окна с битым временем из хранилища пропускаем, а не трактуем как 00:00
		if window.StartTime.Validate() != nil || window.EndTime.Validate() != nil {
			continue
		}

		// window.start <= request.start && window.end >= request.end
		if !window.StartTime.IsAfter(startTime) && !window.EndTime.IsBefore(endTime) {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
