package handlers

import (
	"net/http"

	"go-card-ledger/internal/analytics"
	"go-card-ledger/internal/database"
	"go-card-ledger/internal/ledger"
	"go-card-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

// CustomerRequest is what the contact form sends (often pre-filled by the
// card scanner)
type CustomerRequest struct {
	Name         string `json:"name" binding:"required"`
	BusinessName string `json:"business_name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
	CardImageURI string `json:"card_image_uri"`
}

// --- GET: /api/customers ---
func GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, database.Customers())
}

// --- POST: /api/customers ---
func AddCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	customer, err := ledger.AddCustomer(models.Customer{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Address:      req.Address,
		BusinessType: req.BusinessType,
		CardImageURI: req.CardImageURI,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// --- GET: /api/customers/:id ---
func GetCustomer(c *gin.Context) {
	customer := ledger.GetCustomer(c.Param("id"))
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// --- PUT: /api/customers/:id ---
// Partial update: only the fields present in the JSON get changed
func UpdateCustomer(c *gin.Context) {
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	customer, err := ledger.UpdateCustomer(c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// --- DELETE: /api/customers/:id ---
// Also wipes the customer's transactions and payments (the ledger keeps
// referential integrity, no orphans)
func DeleteCustomer(c *gin.Context) {
	if err := ledger.DeleteCustomer(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// --- GET: /api/customers/:id/transactions ---
func GetCustomerTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, ledger.CustomerTransactions(c.Param("id")))
}

// --- GET: /api/customers/:id/payments ---
func GetCustomerPayments(c *gin.Context) {
	c.JSON(http.StatusOK, ledger.CustomerPayments(c.Param("id")))
}

// --- GET: /api/customers/:id/stats ---
// Lifetime purchase totals + top products for the detail screen
func GetCustomerStats(c *gin.Context) {
	stats := analytics.GetCustomerStats(c.Param("id"), database.Transactions())
	c.JSON(http.StatusOK, stats)
}
