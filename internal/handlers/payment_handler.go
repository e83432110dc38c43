package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go-card-ledger/internal/database"
	"go-card-ledger/internal/ledger"
	"go-card-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

type PaymentRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	CustomerID    string  `json:"customer_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date"` // "2006-01-02", defaults to today
	Method        string  `json:"method" binding:"omitempty,oneof=cash upi bank other"`
	Notes         string  `json:"notes"`
}

// --- GET: /api/payments ---
func GetPayments(c *gin.Context) {
	c.JSON(http.StatusOK, database.Payments())
}

// --- POST: /api/payments ---
// The overpayment guard lives HERE, not in the ledger: the payment form
// rejects anything above the pending amount before the core ever sees it.
func AddPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data"})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be in YYYY-MM-DD format"})
			return
		}
		date = parsed
	}

	method := req.Method
	if method == "" {
		method = models.MethodCash
	}

	customerID := req.CustomerID
	transaction := ledger.GetTransaction(req.TransactionID)
	if transaction != nil {
		// Keep the denormalized copy in sync with the transaction
		customerID = transaction.CustomerID

		if pending := transaction.Pending(); req.Amount > pending {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Payment of %.2f exceeds the pending amount of %.2f", req.Amount, pending),
			})
			return
		}
	}

	payment, err := ledger.AddPayment(models.Payment{
		TransactionID: req.TransactionID,
		CustomerID:    customerID,
		Amount:        req.Amount,
		Date:          date,
		Method:        method,
		Notes:         req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment"})
		return
	}

	c.JSON(http.StatusCreated, payment)
}
