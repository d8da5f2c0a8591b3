package geosearch

// searchRequest запрос радиусного поиска
type searchRequest struct {
	Lat            float64 `json:"lat"`
	Long           float64 `json:"long"`
	DistanceMeters float64 `json:"distancemeters"`
}

// searchResponse envelope ответа сервиса гео-поиска
type searchResponse struct {
	Data  []providerRow  `json:"data"`
	Error *errorResponse `json:"error"`
}

// errorResponse модель ошибки от сервиса гео-поиска
type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// providerRow строка результата: поля исполнителя плюс расстояние,
// посчитанное на стороне сервиса (в метрах)
type providerRow struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Rating            float64           `json:"rating"`
	CompletedJobs     int               `json:"completed_jobs"`
	MaxTravelDistance float64           `json:"max_travel_distance"`
	Latitude          float64           `json:"latitude"`
	Longitude         float64           `json:"longitude"`
	DistanceMeters    float64           `json:"distance_meters"`
	Capabilities      []capabilityRow   `json:"capabilities"`
	Availability      []availabilityRow `json:"availability"`
}

type capabilityRow struct {
	ServiceID  string `json:"service_id"`
	SkillLevel string `json:"skill_level"`
}

type availabilityRow struct {
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
