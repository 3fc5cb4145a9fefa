package models

import (
	"time"

	"github.com/google/uuid"
)

// BreachEvent фиксирует переход Inside -> Outside. После создания не изменяется.
type BreachEvent struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	Timestamp   time.Time  `json:"timestamp"`
	Position    Coordinate `json:"position"`
	Message     string     `json:"message"`
}

// NotificationRequest - запрос к сервису генерации уведомлений
type NotificationRequest struct {
	IsBreaching         bool   `json:"isBreaching"`
	StudentName         string `json:"studentName"`
	StudentID           string `json:"studentId"`
	LocationCoordinates string `json:"locationCoordinates"`
	TimeOfBreach        string `json:"timeOfBreach"`
}

// NotificationResponse - ответ сервиса генерации уведомлений
type NotificationResponse struct {
	Status              string `json:"status"`
	NotificationMessage string `json:"notificationMessage"`
}

// Alert - уведомление о нарушении, показанное преподавателю
type Alert struct {
	ID          uuid.UUID `json:"id"`
	BreachID    uuid.UUID `json:"breach_id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Time        time.Time `json:"time"`
}
