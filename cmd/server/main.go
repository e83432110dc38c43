package main

import (
	"os"
	"time"

	"go-card-ledger/internal/config"
	"go-card-ledger/internal/database"
	"go-card-ledger/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log := config.GetLogger()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found")
	}

	database.Connect()
	r := gin.Default()

	// The companion app runs from a local dev server or a file:// webview,
	// so CORS stays open for the expected origins
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	api := r.Group("/api")
	{
		// Contact book
		api.GET("/customers", handlers.GetCustomers)
		api.POST("/customers", handlers.AddCustomer)
		api.GET("/customers/:id", handlers.GetCustomer)
		api.PUT("/customers/:id", handlers.UpdateCustomer)
		api.DELETE("/customers/:id", handlers.DeleteCustomer)
		api.GET("/customers/:id/transactions", handlers.GetCustomerTransactions)
		api.GET("/customers/:id/payments", handlers.GetCustomerPayments)
		api.GET("/customers/:id/stats", handlers.GetCustomerStats)

		// Sales ledger
		api.GET("/transactions", handlers.GetTransactions)
		api.POST("/transactions", handlers.AddTransaction)
		api.GET("/transactions/:id", handlers.GetTransaction)
		api.GET("/payments", handlers.GetPayments)
		api.POST("/payments", handlers.AddPayment)

		// Analytics
		api.GET("/reports/dashboard", handlers.GetDashboard)
		api.GET("/reports/rankings", handlers.GetRankings)
		api.GET("/reports/revenue", handlers.GetRevenueChart)
		api.GET("/reports/payment-status", handlers.GetPaymentStatus)
		api.GET("/reports/top-products", handlers.GetTopProducts)

		// Exports
		api.GET("/export/customers.csv", handlers.ExportCustomersCSV)
		api.GET("/export/transactions.csv", handlers.ExportTransactionsCSV)
		api.GET("/export/summary.txt", handlers.ExportSummary)
		api.GET("/export/report.xlsx", handlers.ExportXLSX)

		// Owner profile + card scanning
		api.GET("/profile", handlers.GetProfile)
		api.PUT("/profile", handlers.UpdateProfile)
		api.POST("/scan-card", handlers.ScanCard)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("🚀 Server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
