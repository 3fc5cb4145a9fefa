package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeofenceValidate(t *testing.T) {
	center := Coordinate{Latitude: 34.0522, Longitude: -118.2437}

	tests := []struct {
		name    string
		fence   Geofence
		wantErr bool
	}{
		{"valid", Geofence{Center: center, RadiusMeters: 100}, false},
		{"zero radius", Geofence{Center: center, RadiusMeters: 0}, true},
		{"negative radius", Geofence{Center: center, RadiusMeters: -5}, true},
		{"NaN radius", Geofence{Center: center, RadiusMeters: math.NaN()}, true},
		{"infinite radius", Geofence{Center: center, RadiusMeters: math.Inf(1)}, true},
		{"latitude above range", Geofence{Center: Coordinate{Latitude: 90.5, Longitude: 0}, RadiusMeters: 10}, true},
		{"NaN latitude", Geofence{Center: Coordinate{Latitude: math.NaN(), Longitude: 0}, RadiusMeters: 10}, true},
		{"longitude below range", Geofence{Center: Coordinate{Latitude: 0, Longitude: -180.1}, RadiusMeters: 10}, true},
		{"NaN longitude", Geofence{Center: Coordinate{Latitude: 0, Longitude: math.NaN()}, RadiusMeters: 10}, true},
		{"poles and antimeridian", Geofence{Center: Coordinate{Latitude: -90, Longitude: 180}, RadiusMeters: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fence.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGeofence)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
