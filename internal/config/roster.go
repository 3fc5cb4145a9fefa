package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenikar/campus_geofence/internal/models"
)

type rosterEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DemoRoster - стартовый набор студентов для симуляции
func DemoRoster() []models.Student {
	return []models.Student{
		{ID: "STU-001", Name: "Alice Johnson", Position: models.Coordinate{Latitude: 34.0522, Longitude: -118.2437}},
		{ID: "STU-002", Name: "Bob Williams", Position: models.Coordinate{Latitude: 34.0524, Longitude: -118.2435}},
		{ID: "STU-003", Name: "Charlie Brown", Position: models.Coordinate{Latitude: 34.0519, Longitude: -118.2440}},
		{ID: "STU-004", Name: "Diana Miller", Position: models.Coordinate{Latitude: 34.0530, Longitude: -118.2430}},
	}
}

// LoadRoster читает JSON-список студентов; без пути возвращает демо-набор
func LoadRoster(path string) ([]models.Student, error) {
	if path == "" {
		return DemoRoster(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var entries []rosterEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	students := make([]models.Student, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("roster entry %d has no id", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("roster entry %d: %w: %s", i, models.ErrStudentExists, e.ID)
		}
		seen[e.ID] = struct{}{}
		students = append(students, models.Student{
			ID:       e.ID,
			Name:     e.Name,
			Position: models.Coordinate{Latitude: e.Latitude, Longitude: e.Longitude},
		})
	}
	return students, nil
}
