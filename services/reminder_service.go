// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

// ReminderService messages customers the day before their appointment.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder pass every day at 7 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 7 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders notifies every appointment scheduled for tomorrow that
// has a phone number and no previous successful reminder.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Where("start_time >= ? AND start_time < ? AND phone <> ''", tomorrow, dayAfter).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		var sent int64
		s.db.Model(&models.ReminderLog{}).
			Where("appointment_id = ? AND status = ?", appt.ID, "sent").
			Count(&sent)
		if sent > 0 {
			continue
		}
		s.sendReminder(appt)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	message := fmt.Sprintf("Hola %s, te esperamos mañana a las %s para: %s.",
		appt.CustomerName, appt.StartTime.Format("15:04"), appt.Services)

	// WhatsApp when the phone is E.164, SMS otherwise
	channel := "sms"
	to := appt.Phone
	if strings.HasPrefix(appt.Phone, "+") {
		to = "whatsapp:" + appt.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", appt.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", appt.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", appt.Phone)
	}

	reminderLog := models.ReminderLog{
		AppointmentID: appt.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.ID, err)
	}
}
