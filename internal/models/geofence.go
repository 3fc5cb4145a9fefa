package models

import (
	"fmt"
	"math"
)

// Coordinate - точка на сфере в градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String возвращает координаты в формате "lat, lng" с точностью до 4 знаков
func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}

// Geofence - круговая граница кампуса
type Geofence struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

// Validate проверяет, что радиус конечен и положителен, а центр лежит в допустимых границах.
// NaN не проходит ни одно сравнение, поэтому проверки записаны через отрицание.
func (g Geofence) Validate() error {
	if !(g.RadiusMeters > 0) || math.IsInf(g.RadiusMeters, 0) {
		return fmt.Errorf("%w: radius must be positive and finite, got %v", ErrInvalidGeofence, g.RadiusMeters)
	}
	if !(g.Center.Latitude >= -90 && g.Center.Latitude <= 90) {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidGeofence)
	}
	if !(g.Center.Longitude >= -180 && g.Center.Longitude <= 180) {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidGeofence)
	}
	return nil
}
