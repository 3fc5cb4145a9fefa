package service

//go:generate mockgen -destination=mocks/mock_attendance.go -package=mocks github.com/shenikar/campus_geofence/internal/service AttendanceService

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	dateLayout = "2006-01-02"
	// goodAttendancePercent - порог, с которого посещаемость считается хорошей
	goodAttendancePercent = 75
)

// StudentDirectory - источник списка отслеживаемых студентов
type StudentDirectory interface {
	Snapshot(ctx context.Context) models.Snapshot
	Student(ctx context.Context, id string) (models.Student, error)
}

// AttendanceService определяет контракт отчётов о посещаемости.
// Все значения пересчитываются из журнала сессий при каждом вызове.
type AttendanceService interface {
	CountDistinctDaysPresent(studentID string, ym models.YearMonth) int
	AttendancePercentage(studentID string, ym models.YearMonth, workingDays int) (int, error)
	DayGroups(ctx context.Context, studentID string) ([]models.DayGroup, error)
	StudentAttendance(ctx context.Context, studentID string, ym models.YearMonth, workingDays int) (*models.AttendanceRecord, error)
	MonthlyReport(ctx context.Context, ym models.YearMonth, workingDays int) ([]*models.AttendanceRecord, error)
	DailyRoster(ctx context.Context, date string) (*models.DailyRoster, error)
	Calendar(ctx context.Context, ym models.YearMonth) ([]string, error)
}

type attendanceService struct {
	sessions SessionStore
	students StudentDirectory
	loc      *time.Location
	logger   *logrus.Logger
}

func NewAttendanceService(sessions SessionStore, students StudentDirectory, loc *time.Location, logger *logrus.Logger) AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &attendanceService{
		sessions: sessions,
		students: students,
		loc:      loc,
		logger:   logger,
	}
}

// presentDates возвращает множество дат месяца, в которые у студента был вход
func (s *attendanceService) presentDates(studentID string, ym models.YearMonth) map[string]struct{} {
	dates := make(map[string]struct{})
	for _, session := range s.sessions.GetLog(studentID) {
		entry := session.EntryTime.In(s.loc)
		if ym.Contains(entry) {
			dates[entry.Format(dateLayout)] = struct{}{}
		}
	}
	return dates
}

// CountDistinctDaysPresent считает различные даты месяца с хотя бы одним входом
func (s *attendanceService) CountDistinctDaysPresent(studentID string, ym models.YearMonth) int {
	return len(s.presentDates(studentID, ym))
}

// AttendancePercentage возвращает round(100 * дни / рабочие дни), не больше 100
func (s *attendanceService) AttendancePercentage(studentID string, ym models.YearMonth, workingDays int) (int, error) {
	if workingDays <= 0 {
		return 0, fmt.Errorf("service: %w: got %d", models.ErrInvalidWorkingDays, workingDays)
	}
	return percentage(s.CountDistinctDaysPresent(studentID, ym), workingDays), nil
}

func percentage(days, workingDays int) int {
	if days >= workingDays {
		return 100
	}
	return int(math.Round(100 * float64(days) / float64(workingDays)))
}

// DayGroups возвращает журнал студента, сгруппированный по дням
func (s *attendanceService) DayGroups(ctx context.Context, studentID string) ([]models.DayGroup, error) {
	if _, err := s.students.Student(ctx, studentID); err != nil {
		return nil, fmt.Errorf("service: could not get sessions: %w", err)
	}
	return s.sessions.GroupByDay(studentID), nil
}

// StudentAttendance формирует запись о посещаемости одного студента за месяц
func (s *attendanceService) StudentAttendance(ctx context.Context, studentID string, ym models.YearMonth, workingDays int) (*models.AttendanceRecord, error) {
	student, err := s.students.Student(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get attendance: %w", err)
	}
	return s.record(student, ym, workingDays)
}

func (s *attendanceService) record(student models.Student, ym models.YearMonth, workingDays int) (*models.AttendanceRecord, error) {
	if workingDays <= 0 {
		return nil, fmt.Errorf("service: %w: got %d", models.ErrInvalidWorkingDays, workingDays)
	}
	days := s.CountDistinctDaysPresent(student.ID, ym)
	pct := percentage(days, workingDays)
	return &models.AttendanceRecord{
		StudentID:   student.ID,
		StudentName: student.Name,
		Period:      ym.String(),
		DaysPresent: days,
		WorkingDays: workingDays,
		Percentage:  pct,
		Good:        pct >= goodAttendancePercent,
	}, nil
}

// MonthlyReport формирует отчёт по всем студентам за месяц
func (s *attendanceService) MonthlyReport(ctx context.Context, ym models.YearMonth, workingDays int) ([]*models.AttendanceRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "attendance",
		"method":       "MonthlyReport",
		"period":       ym.String(),
		"working_days": workingDays,
	})

	if workingDays <= 0 {
		log.Warn("Rejected attendance report request")
		return nil, fmt.Errorf("service: %w: got %d", models.ErrInvalidWorkingDays, workingDays)
	}

	students := s.students.Snapshot(ctx).Students
	report := make([]*models.AttendanceRecord, 0, len(students))
	for _, student := range students {
		rec, err := s.record(student, ym, workingDays)
		if err != nil {
			log.WithError(err).Warn("Rejected attendance report request")
			return nil, err
		}
		report = append(report, rec)
	}

	log.WithField("count", len(report)).Info("Attendance report built")
	return report, nil
}

// DailyRoster делит студентов на присутствовавших и отсутствовавших в указанную дату
func (s *attendanceService) DailyRoster(ctx context.Context, date string) (*models.DailyRoster, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %q", models.ErrInvalidDate, date)
	}
	key := day.Format(dateLayout)

	roster := &models.DailyRoster{
		Date:     key,
		Attended: make([]models.Student, 0),
		Absent:   make([]models.Student, 0),
	}
	for _, student := range s.students.Snapshot(ctx).Students {
		if s.enteredOn(student.ID, key) {
			roster.Attended = append(roster.Attended, student)
		} else {
			roster.Absent = append(roster.Absent, student)
		}
	}
	return roster, nil
}

func (s *attendanceService) enteredOn(studentID, date string) bool {
	for _, session := range s.sessions.GetLog(studentID) {
		if session.EntryTime.In(s.loc).Format(dateLayout) == date {
			return true
		}
	}
	return false
}

// Calendar возвращает отсортированные даты месяца, в которые был хотя бы один вход
func (s *attendanceService) Calendar(ctx context.Context, ym models.YearMonth) ([]string, error) {
	all := make(map[string]struct{})
	for _, student := range s.students.Snapshot(ctx).Students {
		for date := range s.presentDates(student.ID, ym) {
			all[date] = struct{}{}
		}
	}

	dates := make([]string, 0, len(all))
	for date := range all {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}
