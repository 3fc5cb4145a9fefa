package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/shenikar/campus_geofence/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	students []models.Student
}

func (d *fakeDirectory) Snapshot(_ context.Context) models.Snapshot {
	return models.Snapshot{Students: d.students}
}

func (d *fakeDirectory) Student(_ context.Context, id string) (models.Student, error) {
	for _, s := range d.students {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Student{}, fmt.Errorf("%w: %s", models.ErrStudentNotFound, id)
}

var november = models.YearMonth{Year: 2023, Month: time.November}

func day(month time.Month, d, hour int) time.Time {
	return time.Date(2023, month, d, hour, 0, 0, 0, time.UTC)
}

func newTestAttendance(t *testing.T) (AttendanceService, *repository.SessionLogRepository) {
	t.Helper()
	repo := repository.NewSessionLogRepository(time.UTC)
	dir := &fakeDirectory{students: []models.Student{
		{ID: "STU-001", Name: "Alice Johnson"},
		{ID: "STU-002", Name: "Bob Williams"},
		{ID: "STU-003", Name: "Charlie Brown"},
	}}
	return NewAttendanceService(repo, dir, time.UTC, quietLogger()), repo
}

func addSession(t *testing.T, repo *repository.SessionLogRepository, id string, entry time.Time) {
	t.Helper()
	require.NoError(t, repo.OpenSession(id, entry))
	require.NoError(t, repo.CloseOpenSession(id, entry.Add(time.Hour)))
}

func TestCountDistinctDaysPresent_DedupByDate(t *testing.T) {
	svc, repo := newTestAttendance(t)
	addSession(t, repo, "STU-001", day(time.November, 1, 9))
	addSession(t, repo, "STU-001", day(time.November, 1, 11))
	addSession(t, repo, "STU-001", day(time.November, 1, 14))

	assert.Equal(t, 1, svc.CountDistinctDaysPresent("STU-001", november))
}

func TestCountDistinctDaysPresent_OnlyRequestedMonth(t *testing.T) {
	svc, repo := newTestAttendance(t)
	addSession(t, repo, "STU-001", day(time.October, 26, 9))
	addSession(t, repo, "STU-001", day(time.October, 27, 9))
	addSession(t, repo, "STU-001", day(time.November, 1, 9))
	addSession(t, repo, "STU-001", day(time.November, 2, 9))

	assert.Equal(t, 2, svc.CountDistinctDaysPresent("STU-001", november))
	assert.Equal(t, 2, svc.CountDistinctDaysPresent("STU-001", models.YearMonth{Year: 2023, Month: time.October}))
	assert.Equal(t, 0, svc.CountDistinctDaysPresent("STU-001", models.YearMonth{Year: 2022, Month: time.November}))
}

func TestCountDistinctDaysPresent_OpenSessionCounts(t *testing.T) {
	svc, repo := newTestAttendance(t)
	require.NoError(t, repo.OpenSession("STU-001", day(time.November, 3, 9)))

	assert.Equal(t, 1, svc.CountDistinctDaysPresent("STU-001", november))
}

func TestAttendancePercentage(t *testing.T) {
	svc, repo := newTestAttendance(t)
	for d := 1; d <= 15; d++ {
		addSession(t, repo, "STU-001", day(time.November, d, 9))
	}

	tests := []struct {
		name        string
		workingDays int
		want        int
		wantErr     error
	}{
		{"fifteen of twenty", 20, 75, nil},
		{"rounds to nearest", 22, 68, nil},
		{"clamped when fewer working days", 10, 100, nil},
		{"exact", 15, 100, nil},
		{"zero working days", 0, 0, models.ErrInvalidWorkingDays},
		{"negative working days", -3, 0, models.ErrInvalidWorkingDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.AttendancePercentage("STU-001", november, tt.workingDays)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudentAttendance(t *testing.T) {
	svc, repo := newTestAttendance(t)
	for d := 1; d <= 14; d++ {
		addSession(t, repo, "STU-002", day(time.November, d, 9))
	}

	rec, err := svc.StudentAttendance(context.Background(), "STU-002", november, 20)
	require.NoError(t, err)
	assert.Equal(t, &models.AttendanceRecord{
		StudentID:   "STU-002",
		StudentName: "Bob Williams",
		Period:      "2023-11",
		DaysPresent: 14,
		WorkingDays: 20,
		Percentage:  70,
		Good:        false,
	}, rec)

	_, err = svc.StudentAttendance(context.Background(), "STU-404", november, 20)
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
}

func TestMonthlyReport(t *testing.T) {
	svc, repo := newTestAttendance(t)
	for d := 1; d <= 15; d++ {
		addSession(t, repo, "STU-001", day(time.November, d, 9))
	}
	addSession(t, repo, "STU-002", day(time.November, 1, 9))

	report, err := svc.MonthlyReport(context.Background(), november, 20)
	require.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, 75, report[0].Percentage)
	assert.True(t, report[0].Good)
	assert.Equal(t, 1, report[1].DaysPresent)
	assert.Equal(t, 5, report[1].Percentage)
	assert.Equal(t, 0, report[2].DaysPresent)

	_, err = svc.MonthlyReport(context.Background(), november, 0)
	assert.ErrorIs(t, err, models.ErrInvalidWorkingDays)
}

func TestMonthlyReport_EmptyRosterRejectsWorkingDays(t *testing.T) {
	repo := repository.NewSessionLogRepository(time.UTC)
	svc := NewAttendanceService(repo, &fakeDirectory{}, time.UTC, quietLogger())

	_, err := svc.MonthlyReport(context.Background(), november, 0)
	assert.ErrorIs(t, err, models.ErrInvalidWorkingDays)

	report, err := svc.MonthlyReport(context.Background(), november, 20)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestDailyRoster(t *testing.T) {
	svc, repo := newTestAttendance(t)
	addSession(t, repo, "STU-001", day(time.November, 1, 9))
	addSession(t, repo, "STU-002", day(time.November, 2, 9))

	roster, err := svc.DailyRoster(context.Background(), "2023-11-01")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-01", roster.Date)
	require.Len(t, roster.Attended, 1)
	assert.Equal(t, "STU-001", roster.Attended[0].ID)
	assert.Len(t, roster.Absent, 2)

	_, err = svc.DailyRoster(context.Background(), "01/11/2023")
	assert.ErrorIs(t, err, models.ErrInvalidDate)
}

func TestCalendar(t *testing.T) {
	svc, repo := newTestAttendance(t)
	addSession(t, repo, "STU-001", day(time.November, 3, 9))
	addSession(t, repo, "STU-002", day(time.November, 1, 9))
	addSession(t, repo, "STU-003", day(time.November, 3, 10))
	addSession(t, repo, "STU-003", day(time.October, 30, 10))

	dates, err := svc.Calendar(context.Background(), november)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-11-01", "2023-11-03"}, dates)
}

func TestDayGroups_UnknownStudent(t *testing.T) {
	svc, _ := newTestAttendance(t)

	_, err := svc.DayGroups(context.Background(), "STU-404")
	assert.ErrorIs(t, err, models.ErrStudentNotFound)
}
