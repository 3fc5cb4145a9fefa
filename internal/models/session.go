package models

import "time"

// Session - один непрерывный интервал пребывания внутри геозоны
type Session struct {
	EntryTime time.Time  `json:"entry_time"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`
}

// IsOpen сообщает, что выход ещё не зафиксирован
func (s Session) IsOpen() bool {
	return s.ExitTime == nil
}

// DayGroup - сессии одного календарного дня
type DayGroup struct {
	Date     string    `json:"date"`
	Sessions []Session `json:"sessions"`
}
