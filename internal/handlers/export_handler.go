package handlers

import (
	"net/http"

	"go-card-ledger/internal/database"
	"go-card-ledger/internal/export"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/export/customers.csv ---
func ExportCustomersCSV(c *gin.Context) {
	csv := export.CustomersCSV(database.Customers(), database.Transactions())
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// --- GET: /api/export/transactions.csv ---
func ExportTransactionsCSV(c *gin.Context) {
	csv := export.TransactionsCSV(database.Transactions(), database.Customers())
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// --- GET: /api/export/summary.txt ---
func ExportSummary(c *gin.Context) {
	report := export.SummaryReport(database.Customers(), database.Transactions(), database.Profile())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// --- GET: /api/export/report.xlsx ---
func ExportXLSX(c *gin.Context) {
	buf, err := export.ReportXLSX(database.Customers(), database.Transactions(), database.Profile())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="business-report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
