package geo

import "math"

// EarthRadiusMiles средний радиус Земли в милях
const EarthRadiusMiles = 3958.8

// metersPerMile коэффициент перевода миль в метры
const metersPerMile = 1609.34

// DistanceMiles вычисляет расстояние по дуге большого круга между двумя точками
// (формула гаверсинуса). Координаты в градусах WGS84, результат в милях.
// Валидация диапазонов координат выполняется на уровне запроса, не здесь.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// MilesToMeters переводит мили в метры
func MilesToMeters(miles float64) float64 {
	return miles * metersPerMile
}

// MetersToMiles переводит метры в мили
func MetersToMiles(meters float64) float64 {
	return meters / metersPerMile
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
