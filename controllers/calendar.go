// controllers/calendar.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

const (
	colorOpen   = "#0d6efd"
	colorClosed = "#6c757d"
)

// CalendarEvent is the tuple the calendar widget consumes.
type CalendarEvent struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Color string    `json:"color"`
}

// GetEvents exports appointments as calendar events, optionally limited to
// the widget's visible window (?start=&end=, RFC 3339 or YYYY-MM-DD).
func GetEvents(c *gin.Context) {
	query := config.DB.Order("start_time")

	if start := c.Query("start"); start != "" {
		startTime, err := parseEventBound(start)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start bound")
			return
		}
		query = query.Where("end_time >= ?", startTime)
	}
	if end := c.Query("end"); end != "" {
		endTime, err := parseEventBound(end)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end bound")
			return
		}
		query = query.Where("start_time <= ?", endTime)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	closed := closedAppointmentSet(appointments)

	events := make([]CalendarEvent, 0, len(appointments))
	for _, appt := range appointments {
		color := colorOpen
		if closed[appt.ID] {
			color = colorClosed
		}
		events = append(events, CalendarEvent{
			ID:    appt.ID,
			Title: eventTitle(appt),
			Start: appt.StartTime.Format(time.RFC3339),
			End:   appt.EndTime.Format(time.RFC3339),
			Color: color,
		})
	}

	c.JSON(http.StatusOK, events)
}

func eventTitle(appt models.Appointment) string {
	parts := make([]string, 0, 3)
	if appt.CustomerName != "" {
		parts = append(parts, appt.CustomerName)
	}
	if appt.Plate != "" {
		parts = append(parts, appt.Plate)
	}
	if appt.Services != "" {
		parts = append(parts, appt.Services)
	}
	return strings.Join(parts, " - ")
}

func closedAppointmentSet(appointments []models.Appointment) map[uuid.UUID]bool {
	ids := make([]uuid.UUID, 0, len(appointments))
	for _, appt := range appointments {
		ids = append(ids, appt.ID)
	}
	closed := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return closed
	}

	var sold []uuid.UUID
	config.DB.Model(&models.ServiceSale{}).
		Where("appointment_id IN ?", ids).
		Pluck("appointment_id", &sold)
	for _, id := range sold {
		closed[id] = true
	}
	return closed
}

func parseEventBound(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
