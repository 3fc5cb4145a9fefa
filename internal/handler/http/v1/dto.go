package v1

import (
	"time"

	"github.com/google/uuid"
)

// CoordinateDTO DTO точки на карте
// @Description DTO точки на карте
type CoordinateDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// UpdateGeofenceRequest DTO для перемещения геозоны
// @Description DTO для перемещения геозоны
type UpdateGeofenceRequest struct {
	Name         string        `json:"name" validate:"required,min=2,max=255"`
	Center       CoordinateDTO `json:"center"`
	RadiusMeters float64       `json:"radius_meters" validate:"required,gt=0"`
}

// GeofenceResponse DTO для ответа с геозоной
// @Description DTO для ответа с геозоной
type GeofenceResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Center       CoordinateDTO `json:"center"`
	RadiusMeters float64       `json:"radius_meters"`
}

// EnrollStudentRequest DTO для добавления студента
// @Description DTO для добавления студента
type EnrollStudentRequest struct {
	ID       string        `json:"id" validate:"required,max=64"`
	Name     string        `json:"name" validate:"required,min=2,max=255"`
	Position CoordinateDTO `json:"position"`
}

// StudentResponse DTO студента на карте
// @Description DTO студента на карте
type StudentResponse struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Position          CoordinateDTO `json:"position"`
	Status            string        `json:"status" enums:"safe,breached,unknown"`
	PendingEvaluation bool          `json:"pending_evaluation"`
}

// MembershipCounts DTO количества студентов по статусам
// @Description DTO количества студентов по статусам
type MembershipCounts struct {
	Inside  int `json:"inside"`
	Outside int `json:"outside"`
	Unknown int `json:"unknown"`
}

// SnapshotResponse DTO живого состояния мониторинга
// @Description DTO живого состояния мониторинга
type SnapshotResponse struct {
	Geofence GeofenceResponse  `json:"geofence"`
	Students []StudentResponse `json:"students"`
	Counts   MembershipCounts  `json:"counts"`
	Active   bool              `json:"active"`
}

// SessionResponse DTO одной сессии
// @Description DTO одной сессии
type SessionResponse struct {
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`
}

// DayGroupResponse DTO сессий за день
// @Description DTO сессий за день
type DayGroupResponse struct {
	Date     string            `json:"date"`
	Sessions []SessionResponse `json:"sessions"`
}

// StudentSessionsResponse DTO журнала студента
// @Description DTO журнала студента
type StudentSessionsResponse struct {
	StudentID string             `json:"student_id"`
	Total     int                `json:"total"`
	Days      []DayGroupResponse `json:"days"`
}

// AttendanceResponse DTO посещаемости за месяц
// @Description DTO посещаемости за месяц
type AttendanceResponse struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Month       string `json:"month"`
	DaysPresent int    `json:"days_present"`
	WorkingDays int    `json:"working_days"`
	Percentage  int    `json:"percentage"`
	Good        bool   `json:"good"`
}

// DailyRosterResponse DTO посещаемости за день
// @Description DTO посещаемости за день
type DailyRosterResponse struct {
	Date     string            `json:"date"`
	Attended []StudentResponse `json:"attended"`
	Absent   []StudentResponse `json:"absent"`
}

// CalendarResponse DTO дней с посещениями
// @Description DTO дней с посещениями
type CalendarResponse struct {
	Month string   `json:"month"`
	Dates []string `json:"dates"`
}

// AlertResponse DTO уведомления о нарушении
// @Description DTO уведомления о нарушении
type AlertResponse struct {
	ID          uuid.UUID `json:"id"`
	BreachID    uuid.UUID `json:"breach_id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Time        time.Time `json:"time"`
}

// BreachEventResponse DTO события выхода за пределы кампуса
// @Description DTO события выхода за пределы кампуса
type BreachEventResponse struct {
	ID          uuid.UUID     `json:"id"`
	StudentID   string        `json:"student_id"`
	StudentName string        `json:"student_name"`
	Timestamp   time.Time     `json:"timestamp"`
	Position    CoordinateDTO `json:"position"`
	Message     string        `json:"message"`
}

// MonitorStatusResponse DTO состояния мониторинга
// @Description DTO состояния мониторинга
type MonitorStatusResponse struct {
	Active       bool      `json:"active"`
	StartHour    int       `json:"start_hour"`
	EndHour      int       `json:"end_hour"`
	TickInterval string    `json:"tick_interval"`
	Now          time.Time `json:"now"`
}
