package v1

import "github.com/shenikar/campus_geofence/internal/models"

func toCoordinateDTO(c models.Coordinate) CoordinateDTO {
	return CoordinateDTO{Latitude: c.Latitude, Longitude: c.Longitude}
}

func toCoordinateModel(c CoordinateDTO) models.Coordinate {
	return models.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}

// DTOToGeofenceModel преобразует запрос перемещения геозоны в доменную модель
func DTOToGeofenceModel(dto UpdateGeofenceRequest) models.Geofence {
	return models.Geofence{
		Name:         dto.Name,
		Center:       toCoordinateModel(dto.Center),
		RadiusMeters: dto.RadiusMeters,
	}
}

// DTOToStudentModel преобразует запрос добавления студента в доменную модель
func DTOToStudentModel(dto EnrollStudentRequest) models.Student {
	return models.Student{
		ID:       dto.ID,
		Name:     dto.Name,
		Position: toCoordinateModel(dto.Position),
	}
}

func ModelToGeofenceResponse(g models.Geofence) GeofenceResponse {
	return GeofenceResponse{
		ID:           g.ID,
		Name:         g.Name,
		Center:       toCoordinateDTO(g.Center),
		RadiusMeters: g.RadiusMeters,
	}
}

func ModelToStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{
		ID:                s.ID,
		Name:              s.Name,
		Position:          toCoordinateDTO(s.Position),
		Status:            s.Membership.String(),
		PendingEvaluation: s.PendingEvaluation,
	}
}

// ModelsToStudentResponses преобразует слайс моделей в слайс DTO
func ModelsToStudentResponses(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i, s := range students {
		responses[i] = ModelToStudentResponse(s)
	}
	return responses
}

func ModelToSnapshotResponse(s models.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Geofence: ModelToGeofenceResponse(s.Geofence),
		Students: ModelsToStudentResponses(s.Students),
		Counts: MembershipCounts{
			Inside:  s.Count(models.MembershipInside),
			Outside: s.Count(models.MembershipOutside),
			Unknown: s.Count(models.MembershipUnknown),
		},
		Active: s.Active,
	}
}

// ModelToStudentSessionsResponse сохраняет порядок групп: даты по убыванию, сессии по возрастанию
func ModelToStudentSessionsResponse(studentID string, groups []models.DayGroup) StudentSessionsResponse {
	resp := StudentSessionsResponse{
		StudentID: studentID,
		Days:      make([]DayGroupResponse, len(groups)),
	}
	for i, g := range groups {
		sessions := make([]SessionResponse, len(g.Sessions))
		for j, s := range g.Sessions {
			sessions[j] = SessionResponse{EntryTime: s.EntryTime, ExitTime: s.ExitTime}
		}
		resp.Days[i] = DayGroupResponse{Date: g.Date, Sessions: sessions}
		resp.Total += len(sessions)
	}
	return resp
}

func ModelToAttendanceResponse(r *models.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		Month:       r.Period,
		DaysPresent: r.DaysPresent,
		WorkingDays: r.WorkingDays,
		Percentage:  r.Percentage,
		Good:        r.Good,
	}
}

func ModelsToAttendanceResponses(records []*models.AttendanceRecord) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(records))
	for i, r := range records {
		responses[i] = ModelToAttendanceResponse(r)
	}
	return responses
}

func ModelToDailyRosterResponse(r *models.DailyRoster) DailyRosterResponse {
	return DailyRosterResponse{
		Date:     r.Date,
		Attended: ModelsToStudentResponses(r.Attended),
		Absent:   ModelsToStudentResponses(r.Absent),
	}
}

func ModelsToAlertResponses(alerts []models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertResponse{
			ID:          a.ID,
			BreachID:    a.BreachID,
			StudentID:   a.StudentID,
			StudentName: a.StudentName,
			Status:      a.Status,
			Message:     a.Message,
			Time:        a.Time,
		}
	}
	return responses
}

func ModelsToBreachEventResponses(events []models.BreachEvent) []BreachEventResponse {
	responses := make([]BreachEventResponse, len(events))
	for i, ev := range events {
		responses[i] = BreachEventResponse{
			ID:          ev.ID,
			StudentID:   ev.StudentID,
			StudentName: ev.StudentName,
			Timestamp:   ev.Timestamp,
			Position:    toCoordinateDTO(ev.Position),
			Message:     ev.Message,
		}
	}
	return responses
}

func ModelToMonitorStatusResponse(s models.MonitorStatus) MonitorStatusResponse {
	return MonitorStatusResponse{
		Active:       s.Active,
		StartHour:    s.StartHour,
		EndHour:      s.EndHour,
		TickInterval: s.TickInterval.String(),
		Now:          s.Now,
	}
}
