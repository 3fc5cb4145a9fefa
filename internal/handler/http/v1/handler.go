package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/campus_geofence/internal/config"
	"github.com/shenikar/campus_geofence/internal/models"
	"github.com/shenikar/campus_geofence/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	monitor    service.MonitorService
	attendance service.AttendanceService
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
}

func NewHandler(monitor service.MonitorService, attendance service.AttendanceService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		monitor:    monitor,
		attendance: attendance,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
	}
}

// @Summary Get live monitoring state
// @Description Get the geofence, every monitored student with status and counts per status
// @Tags Students
// @Produce json
// @Success 200 {object} SnapshotResponse
// @Router /students [get]
func (h *Handler) listStudents(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToSnapshotResponse(h.monitor.Snapshot(c.Request.Context())))
}

// @Summary Enroll a student
// @Description Add a student to monitoring. The student starts with unknown status and an empty log.
// @Tags Students
// @Accept json
// @Produce json
// @Param student body EnrollStudentRequest true "Student enrollment request"
// @Success 201 {object} StudentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Student already enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students [post]
func (h *Handler) enrollStudent(c *gin.Context) {
	var input EnrollStudentRequest
	log := h.logger.WithField("method", "enrollStudent")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := DTOToStudentModel(input)
	if err := h.monitor.Enroll(c.Request.Context(), student); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToStudentResponse(student))
}

// @Summary Get student by ID
// @Description Get a single monitored student with current position and status
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} StudentResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id} [get]
func (h *Handler) getStudent(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getStudent").WithField("id", id)

	student, err := h.monitor.Student(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStudentResponse(student))
}

// @Summary Get student sessions grouped by day
// @Description Get the session log of a student grouped by entry date. Dates are newest first, sessions within a day oldest first.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} StudentSessionsResponse
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id}/sessions [get]
func (h *Handler) getStudentSessions(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getStudentSessions").WithField("id", id)

	groups, err := h.attendance.DayGroups(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStudentSessionsResponse(id, groups))
}

// @Summary Get monthly attendance of a student
// @Description Distinct days present in the month and the percentage of working days, capped at 100
// @Tags Attendance
// @Produce json
// @Param id path string true "Student ID"
// @Param month query string false "Month in YYYY-MM format, current month by default"
// @Param workingDays query int false "Number of working days" default(20)
// @Success 200 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid month or working days"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{id}/attendance [get]
func (h *Handler) getStudentAttendance(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getStudentAttendance").WithField("id", id)

	ym, workingDays, err := h.parseReportQuery(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	record, err := h.attendance.StudentAttendance(c.Request.Context(), id, ym, workingDays)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAttendanceResponse(record))
}

// @Summary Get the geofence
// @Tags Geofence
// @Produce json
// @Success 200 {object} GeofenceResponse
// @Router /geofence [get]
func (h *Handler) getGeofence(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToGeofenceResponse(h.monitor.Geofence(c.Request.Context())))
}

// @Summary Move the geofence
// @Description Re-center or resize the campus geofence. The new boundary applies from the next tick.
// @Tags Geofence
// @Accept json
// @Produce json
// @Param geofence body UpdateGeofenceRequest true "Geofence update request"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofence [put]
func (h *Handler) updateGeofence(c *gin.Context) {
	var input UpdateGeofenceRequest
	log := h.logger.WithField("method", "updateGeofence")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.monitor.UpdateGeofence(c.Request.Context(), DTOToGeofenceModel(input)); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(h.monitor.Geofence(c.Request.Context())))
}

// @Summary Get monthly attendance report
// @Description Attendance of every monitored student for the month
// @Tags Attendance
// @Produce json
// @Param month query string false "Month in YYYY-MM format, current month by default"
// @Param workingDays query int false "Number of working days" default(20)
// @Success 200 {array} AttendanceResponse
// @Failure 400 {object} map[string]string "Invalid month or working days"
// @Router /attendance/report [get]
func (h *Handler) getMonthlyReport(c *gin.Context) {
	log := h.logger.WithField("method", "getMonthlyReport")

	ym, workingDays, err := h.parseReportQuery(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	report, err := h.attendance.MonthlyReport(c.Request.Context(), ym, workingDays)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttendanceResponses(report))
}

// @Summary Get daily roster
// @Description Students who entered the campus on the date and students who did not
// @Tags Attendance
// @Produce json
// @Param date query string false "Date in YYYY-MM-DD format, today by default"
// @Success 200 {object} DailyRosterResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /attendance/roster [get]
func (h *Handler) getDailyRoster(c *gin.Context) {
	log := h.logger.WithField("method", "getDailyRoster")
	date := c.DefaultQuery("date", h.now().Format(time.DateOnly))

	roster, err := h.attendance.DailyRoster(c.Request.Context(), date)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDailyRosterResponse(roster))
}

// @Summary Get attendance calendar
// @Description Dates in the month on which at least one student entered the campus
// @Tags Attendance
// @Produce json
// @Param month query string false "Month in YYYY-MM format, current month by default"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Router /attendance/calendar [get]
func (h *Handler) getCalendar(c *gin.Context) {
	log := h.logger.WithField("method", "getCalendar")

	ym, err := h.parseMonth(c)
	if err != nil {
		h.writeError(c, log, err)
		return
	}

	dates, err := h.attendance.Calendar(c.Request.Context(), ym)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, CalendarResponse{Month: ym.String(), Dates: dates})
}

// @Summary Get breach alerts
// @Description Notifications produced for breaches, newest first
// @Tags Alerts
// @Produce json
// @Success 200 {array} AlertResponse
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToAlertResponses(h.monitor.Alerts(c.Request.Context())))
}

// @Summary Get breach events
// @Description Recent campus exits in order of occurrence
// @Tags Alerts
// @Produce json
// @Success 200 {array} BreachEventResponse
// @Router /breaches [get]
func (h *Handler) listBreaches(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToBreachEventResponses(h.monitor.BreachEvents(c.Request.Context())))
}

// @Summary Get monitoring status
// @Tags Monitor
// @Produce json
// @Success 200 {object} MonitorStatusResponse
// @Router /monitor/status [get]
func (h *Handler) getMonitorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToMonitorStatusResponse(h.monitor.Status(c.Request.Context())))
}

// @Summary Stream live monitoring state
// @Description Server-sent events. A "snapshot" event is sent on connect and after every change.
// @Tags Monitor
// @Produce text/event-stream
// @Success 200 {object} SnapshotResponse
// @Router /monitor/stream [get]
func (h *Handler) streamSnapshots(c *gin.Context) {
	log := h.logger.WithField("method", "streamSnapshots")
	updates, unsubscribe := h.monitor.Subscribe()
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("snapshot", ModelToSnapshotResponse(h.monitor.Snapshot(c.Request.Context())))
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			log.Debug("Stream client disconnected")
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent("snapshot", ModelToSnapshotResponse(snap))
			c.Writer.Flush()
		}
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError переводит доменные ошибки в HTTP-статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrStudentNotFound):
		log.WithError(err).Warn("Student not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
	case errors.Is(err, models.ErrStudentExists):
		log.WithError(err).Warn("Student already enrolled")
		c.JSON(http.StatusConflict, gin.H{"error": "student already enrolled"})
	case errors.Is(err, models.ErrInvalidWorkingDays),
		errors.Is(err, models.ErrInvalidYearMonth),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidGeofence):
		log.WithError(err).Warn("Rejected request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) now() time.Time {
	loc := time.Local
	if h.cfg != nil && h.cfg.Location != nil {
		loc = h.cfg.Location
	}
	return time.Now().In(loc)
}

func (h *Handler) parseMonth(c *gin.Context) (models.YearMonth, error) {
	month, ok := c.GetQuery("month")
	if !ok {
		now := h.now()
		return models.YearMonth{Year: now.Year(), Month: now.Month()}, nil
	}
	return models.ParseYearMonth(month)
}

func (h *Handler) parseReportQuery(c *gin.Context) (models.YearMonth, int, error) {
	ym, err := h.parseMonth(c)
	if err != nil {
		return models.YearMonth{}, 0, err
	}

	workingDays := 20
	if h.cfg != nil && h.cfg.DefaultWorkingDays > 0 {
		workingDays = h.cfg.DefaultWorkingDays
	}
	if raw, ok := c.GetQuery("workingDays"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.YearMonth{}, 0, models.ErrInvalidWorkingDays
		}
		workingDays = n
	}
	return ym, workingDays, nil
}
