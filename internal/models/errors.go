package models

import "errors"

var (
	// ErrInvariantViolation - попытка открыть сессию при уже открытой
	ErrInvariantViolation = errors.New("session invariant violation")
	// ErrNoOpenSession - попытка закрыть сессию, которой нет
	ErrNoOpenSession = errors.New("no open session")
	// ErrInvalidWorkingDays - число рабочих дней <= 0
	ErrInvalidWorkingDays = errors.New("working days must be positive")
	// ErrNotificationFailure - сбой или таймаут сервиса уведомлений
	ErrNotificationFailure = errors.New("notification failure")

	ErrStudentNotFound  = errors.New("student not found")
	ErrStudentExists    = errors.New("student already exists")
	ErrInvalidGeofence  = errors.New("invalid geofence")
	ErrInvalidYearMonth = errors.New("invalid year-month")
	ErrInvalidDate      = errors.New("invalid date")
)
