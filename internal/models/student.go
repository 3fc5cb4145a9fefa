package models

import "time"

// Membership - положение студента относительно геозоны
type Membership int

const (
	MembershipUnknown Membership = iota
	MembershipInside
	MembershipOutside
)

// String возвращает метку статуса, которую показывает дашборд
func (m Membership) String() string {
	switch m {
	case MembershipInside:
		return "safe"
	case MembershipOutside:
		return "breached"
	default:
		return "unknown"
	}
}

// Student - отслеживаемый студент
type Student struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Position          Coordinate `json:"position"`
	Membership        Membership `json:"-"`
	PendingEvaluation bool       `json:"pending_evaluation"`
}

// Snapshot - согласованный срез живого состояния для внешней карты
type Snapshot struct {
	Geofence Geofence  `json:"geofence"`
	Students []Student `json:"students"`
	Active   bool      `json:"active"`
}

// Count возвращает число студентов с указанным статусом
func (s Snapshot) Count(m Membership) int {
	n := 0
	for _, st := range s.Students {
		if st.Membership == m {
			n++
		}
	}
	return n
}

// MonitorStatus - состояние планировщика мониторинга
type MonitorStatus struct {
	Active       bool          `json:"active"`
	StartHour    int           `json:"start_hour"`
	EndHour      int           `json:"end_hour"`
	TickInterval time.Duration `json:"tick_interval"`
	Now          time.Time     `json:"now"`
}
