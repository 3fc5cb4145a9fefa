package models

import (
	"fmt"
	"time"
)

// YearMonth - календарный месяц отчёта
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth разбирает строку вида 2023-11
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Contains сообщает, попадает ли момент t (в его собственной зоне) в месяц
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AttendanceRecord - вычисляемое представление посещаемости за месяц
type AttendanceRecord struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Period      string `json:"period"`
	DaysPresent int    `json:"days_present"`
	WorkingDays int    `json:"working_days"`
	Percentage  int    `json:"percentage"`
	Good        bool   `json:"good"`
}

// DailyRoster - кто был и кого не было в конкретный день
type DailyRoster struct {
	Date     string    `json:"date"`
	Attended []Student `json:"attended"`
	Absent   []Student `json:"absent"`
}
