package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/farmstock-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBatchRepositoryTest(t *testing.T) (*GormBatchRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:batch_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.AnimalType{},
		&models.Batch{},
		&models.Expense{},
		&models.FeedingRecord{},
	); err != nil {
		t.Fatalf("migrate batch tables failed: %v", err)
	}
	return NewBatchRepository(db), db
}

func createRepoBatch(t *testing.T, db *gorm.DB, serial string, arrival time.Time, moved bool) *models.Batch {
	t.Helper()
	animalType := &models.AnimalType{Code: "goat-" + serial, Name: "山羊"}
	if err := db.Create(animalType).Error; err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	batch := &models.Batch{
		AnimalTypeID:    animalType.ID,
		ArrivalDate:     arrival,
		SerialNumber:    serial,
		InitialQuantity: 10,
		CurrentQuantity: 10,
		IsMovedToShop:   moved,
	}
	if err := db.Create(batch).Error; err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	return batch
}

func TestBatchRepositorySumLedgers(t *testing.T) {
	repo, db := setupBatchRepositoryTest(t)
	batch := createRepoBatch(t, db, "SUM-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false)

	expenses := []models.Expense{
		{BatchID: batch.ID, Description: "购苗", Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("60.25"))},
		{BatchID: batch.ID, Description: "兽药", Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("39.75"))},
	}
	for i := range expenses {
		if err := db.Create(&expenses[i]).Error; err != nil {
			t.Fatalf("create expense failed: %v", err)
		}
	}
	feeding := models.FeedingRecord{BatchID: batch.ID, Bags: 2, Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("40.00"))}
	if err := db.Create(&feeding).Error; err != nil {
		t.Fatalf("create feeding failed: %v", err)
	}

	gotExpenses, err := repo.SumExpenses(batch.ID)
	if err != nil {
		t.Fatalf("sum expenses failed: %v", err)
	}
	if !gotExpenses.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expenses sum want 100.00 got %s", gotExpenses)
	}

	gotFeeding, err := repo.SumFeeding(batch.ID)
	if err != nil {
		t.Fatalf("sum feeding failed: %v", err)
	}
	if !gotFeeding.Equal(decimal.RequireFromString("40.00")) {
		t.Fatalf("feeding sum want 40.00 got %s", gotFeeding)
	}
}

func TestBatchRepositorySumEmptyLedgerIsZero(t *testing.T) {
	repo, db := setupBatchRepositoryTest(t)
	batch := createRepoBatch(t, db, "SUM-EMPTY", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false)

	got, err := repo.SumExpenses(batch.ID)
	if err != nil {
		t.Fatalf("sum expenses failed: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("empty ledger sum want 0 got %s", got)
	}
}

func TestBatchRepositoryListFilters(t *testing.T) {
	repo, db := setupBatchRepositoryTest(t)
	createRepoBatch(t, db, "LIST-1", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), false)
	createRepoBatch(t, db, "LIST-2", time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), true)
	createRepoBatch(t, db, "LIST-3", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), false)

	moved := true
	batches, total, err := repo.List(BatchListFilter{Page: 1, PageSize: 10, MovedToShop: &moved})
	if err != nil {
		t.Fatalf("list moved batches failed: %v", err)
	}
	if total != 1 || len(batches) != 1 || batches[0].SerialNumber != "LIST-2" {
		t.Fatalf("moved filter want LIST-2 only, got total=%d batches=%v", total, batches)
	}

	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	batches, total, err = repo.List(BatchListFilter{Page: 1, PageSize: 10, ArrivalFrom: &from})
	if err != nil {
		t.Fatalf("list by arrival failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("arrival filter want 2 batches got %d", total)
	}
	if batches[0].SerialNumber != "LIST-3" {
		t.Fatalf("list should be newest first, got %s", batches[0].SerialNumber)
	}
}

func TestBatchRepositoryGetBySerialNumber(t *testing.T) {
	repo, db := setupBatchRepositoryTest(t)
	created := createRepoBatch(t, db, "SN-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false)

	got, err := repo.GetBySerialNumber(" SN-1 ")
	if err != nil {
		t.Fatalf("get by serial failed: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("serial lookup should find batch %d, got %+v", created.ID, got)
	}

	missing, err := repo.GetBySerialNumber("SN-404")
	if err != nil {
		t.Fatalf("missing serial lookup failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing serial should return nil, got %+v", missing)
	}
}
