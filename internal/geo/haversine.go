package geo

import (
	"math"

	"github.com/shenikar/campus_geofence/internal/models"
)

// EarthRadiusMeters - средний радиус Земли
const EarthRadiusMeters = 6371000

// Distance возвращает расстояние по большому кругу между двумя точками в метрах
func Distance(a, b models.Coordinate) float64 {
	if a == b {
		return 0
	}
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// погрешность округления может вывести h за [0, 1]
	h = math.Min(1, math.Max(0, h))
	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Within сообщает, лежит ли точка в замкнутом круге геозоны (граница считается внутри)
func Within(p models.Coordinate, fence models.Geofence) bool {
	return Distance(p, fence.Center) <= fence.RadiusMeters
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
