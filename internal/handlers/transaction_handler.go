package handlers

import (
	"net/http"
	"time"

	"go-card-ledger/internal/database"
	"go-card-ledger/internal/ledger"
	"go-card-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductItemRequest is one line of the sale form. The server computes the
// line total itself — the client's math is never trusted.
type ProductItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

type TransactionRequest struct {
	CustomerID string               `json:"customer_id" binding:"required"`
	Date       string               `json:"date"` // "2006-01-02", defaults to today
	Products   []ProductItemRequest `json:"products" binding:"required,min=1,dive"`
	AmountPaid float64              `json:"amount_paid" binding:"gte=0"`
	Notes      string               `json:"notes"`
}

// --- GET: /api/transactions ---
func GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, database.Transactions())
}

// --- POST: /api/transactions ---
func AddTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction data"})
		return
	}

	// The sale must belong to a real customer
	if ledger.GetCustomer(req.CustomerID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
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

	// Build the line items and the grand total
	var totalAmount float64
	products := make([]models.ProductItem, 0, len(req.Products))
	for _, p := range req.Products {
		lineTotal := p.Quantity * p.UnitPrice
		products = append(products, models.ProductItem{
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Total:     lineTotal,
		})
		totalAmount += lineTotal
	}

	// An initial payment larger than the sale makes no sense
	if req.AmountPaid > totalAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Initial payment cannot exceed the total amount"})
		return
	}

	transaction, err := ledger.AddTransaction(models.Transaction{
		CustomerID:  req.CustomerID,
		Date:        date,
		Products:    products,
		TotalAmount: totalAmount,
		AmountPaid:  req.AmountPaid,
		Notes:       req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save transaction"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// --- GET: /api/transactions/:id ---
func GetTransaction(c *gin.Context) {
	transaction := ledger.GetTransaction(c.Param("id"))
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}
