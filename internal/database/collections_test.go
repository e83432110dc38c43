package database

import (
	"testing"

	"go-card-ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Blob{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	DB = db
}

func TestCustomersRoundTrip(t *testing.T) {
	setupTestDB(t)

	if got := Customers(); len(got) != 0 {
		t.Fatalf("expected empty collection before first save, got %d", len(got))
	}

	customers := []models.Customer{
		{ID: "c1", Name: "Ravi Kumar", BusinessName: "Kumar Textiles"},
		{ID: "c2", Name: "Anita Shah"},
	}
	if err := SaveCustomers(customers); err != nil {
		t.Fatalf("SaveCustomers: %v", err)
	}

	got := Customers()
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(got))
	}
	if got[0].Name != "Ravi Kumar" || got[1].ID != "c2" {
		t.Fatalf("round trip mangled the collection: %+v", got)
	}

	// Saving again replaces the whole blob, no merging
	if err := SaveCustomers(customers[:1]); err != nil {
		t.Fatalf("SaveCustomers (overwrite): %v", err)
	}
	if got := Customers(); len(got) != 1 {
		t.Fatalf("expected overwrite to leave 1 customer, got %d", len(got))
	}
}

func TestCorruptBlobDegradesToEmpty(t *testing.T) {
	setupTestDB(t)

	if err := DB.Create(&Blob{Key: KeyTransactions, Value: []byte("{not json")}).Error; err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	if got := Transactions(); len(got) != 0 {
		t.Fatalf("corrupt blob should read as empty, got %d entries", len(got))
	}
}

func TestProfileDefaults(t *testing.T) {
	setupTestDB(t)

	profile := Profile()
	if profile.Currency != "INR" {
		t.Fatalf("expected default currency INR, got %q", profile.Currency)
	}

	if err := SaveProfile(models.UserProfile{Name: "Asha", BusinessName: "Asha Stores", Currency: "USD"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	profile = Profile()
	if profile.Currency != "USD" || profile.BusinessName != "Asha Stores" {
		t.Fatalf("profile did not round trip: %+v", profile)
	}
}
