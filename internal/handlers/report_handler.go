package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go-card-ledger/internal/analytics"
	"go-card-ledger/internal/database"

	"github.com/gin-gonic/gin"
)

// parseDateRange reads the optional ?start=YYYY-MM-DD&end=YYYY-MM-DD pair.
// The end date is inclusive, so it is pushed to the end of that day.
func parseDateRange(c *gin.Context) (start, end *time.Time, ok bool) {
	if s := c.Query("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be in YYYY-MM-DD format"})
			return nil, nil, false
		}
		start = &parsed
	}
	if e := c.Query("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be in YYYY-MM-DD format"})
			return nil, nil, false
		}
		parsed = parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		end = &parsed
	}
	return start, end, true
}

// --- GET: /api/reports/dashboard ---
func GetDashboard(c *gin.Context) {
	stats := analytics.GetDashboardStats(database.Customers(), database.Transactions(), time.Now().UTC())
	c.JSON(http.StatusOK, stats)
}

// --- GET: /api/reports/rankings?month=&year= ---
// Defaults to the current month when no period is given
func GetRankings(c *gin.Context) {
	now := time.Now().UTC()
	month := now.Month()
	year := now.Year()

	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		month = time.Month(parsed)
	}
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year is invalid"})
			return
		}
		year = parsed
	}

	rankings := analytics.GetMonthlyRankings(database.Customers(), database.Transactions(), month, year)
	c.JSON(http.StatusOK, rankings)
}

// --- GET: /api/reports/revenue?months=6&start=&end= ---
func GetRevenueChart(c *gin.Context) {
	months := 6
	if m := c.Query("months"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive number"})
			return
		}
		months = parsed
	}

	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	chart := analytics.GetRevenueChartData(database.Transactions(), months, start, end, time.Now().UTC())
	c.JSON(http.StatusOK, chart)
}

// --- GET: /api/reports/payment-status?start=&end= ---
func GetPaymentStatus(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	data := analytics.GetPaymentStatusData(database.Transactions(), start, end)
	c.JSON(http.StatusOK, data)
}

// --- GET: /api/reports/top-products?limit=5&start=&end= ---
func GetTopProducts(c *gin.Context) {
	limit := 5
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = parsed
	}

	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	products := analytics.GetTopProducts(database.Transactions(), limit, start, end)
	c.JSON(http.StatusOK, products)
}
