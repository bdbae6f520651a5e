package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/routes"
	"github.com/elsebastiann/agenda-detalling/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.VehicleType{},
		&models.ServicePrice{},
		&models.Appointment{},
		&models.ServiceSale{},
		&models.Client{},
		&models.PaymentMethod{},
		&models.ExpenseCategory{},
		&models.Expense{},
		&models.ReminderLog{},
	)

	if err := services.Seed(config.DB); err != nil {
		log.Printf("Seed failed: %v", err)
	}
}

func main() {
	if os.Getenv("REMINDERS_ENABLED") == "true" {
		services.NewReminderService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
