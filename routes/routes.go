package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/controllers"
	"github.com/elsebastiann/agenda-detalling/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		vehicleTypes := api.Group("/vehicle-types")
		{
			vehicleTypes.POST("", controllers.CreateVehicleType)
			vehicleTypes.GET("", controllers.GetVehicleTypes)
			vehicleTypes.PUT("/:id", controllers.UpdateVehicleType)
			vehicleTypes.DELETE("/:id", controllers.DeleteVehicleType)
		}

		servicePrices := api.Group("/service-prices")
		{
			servicePrices.POST("", controllers.CreateServicePrice)
			servicePrices.GET("", controllers.GetServicePrices)
			servicePrices.PUT("/:id", controllers.UpdateServicePrice)
			servicePrices.DELETE("/:id", controllers.DeleteServicePrice)
		}

		paymentMethods := api.Group("/payment-methods")
		{
			paymentMethods.POST("", controllers.CreatePaymentMethod)
			paymentMethods.GET("", controllers.GetPaymentMethods)
			paymentMethods.PUT("/:id", controllers.UpdatePaymentMethod)
			paymentMethods.DELETE("/:id", controllers.DeletePaymentMethod)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
			appointments.POST("/:id/close", controllers.CloseAppointment)
		}

		api.POST("/estimates", controllers.Estimate)

		// Sale ledger (read-only)
		sales := api.Group("/sales")
		{
			sales.GET("", controllers.GetSales)
			sales.GET("/:id", controllers.GetSale)
		}

		// Expense ledger
		api.POST("/expense-categories", controllers.CreateExpenseCategory)
		api.GET("/expense-categories", controllers.GetExpenseCategories)
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
		}

		// Client directory
		clients := api.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.GET("/:plate", controllers.GetClient)
		}

		// Calendar feed
		api.GET("/events", controllers.GetEvents)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetReportSummary)
		api.GET("/reports/sales.csv", reportController.ExportSalesCSV)
		api.GET("/reports/expenses.csv", reportController.ExportExpensesCSV)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
