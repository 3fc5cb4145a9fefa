package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Живое состояние и журнал студентов
	students := api.Group("/students")
	{
		students.GET("", h.listStudents)
		students.POST("", h.enrollStudent)
		students.GET("/:id", h.getStudent)
		students.GET("/:id/sessions", h.getStudentSessions)
		students.GET("/:id/attendance", h.getStudentAttendance)
	}

	api.GET("/geofence", h.getGeofence)
	api.PUT("/geofence", h.updateGeofence)

	// Отчёты о посещаемости
	attendance := api.Group("/attendance")
	{
		attendance.GET("/report", h.getMonthlyReport)
		attendance.GET("/roster", h.getDailyRoster)
		attendance.GET("/calendar", h.getCalendar)
	}

	monitor := api.Group("/monitor")
	{
		monitor.GET("/status", h.getMonitorStatus)
		monitor.GET("/stream", h.streamSnapshots)
	}

	api.GET("/alerts", h.listAlerts)
	api.GET("/breaches", h.listBreaches)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
