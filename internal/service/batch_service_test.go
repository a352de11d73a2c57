package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/queue"
	"github.com/farmstock-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type farmServices struct {
	batch     *BatchService
	mortality *MortalityService
	shop      *ShopService
	db        *gorm.DB
}

func setupFarmServiceTest(t *testing.T) *farmServices {
	t.Helper()
	dsn := fmt.Sprintf("file:farm_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.AnimalType{},
		&models.Batch{},
		&models.Expense{},
		&models.FeedingRecord{},
		&models.MortalityRecord{},
		&models.ShopItem{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	batchRepo := repository.NewBatchRepository(db)
	animalTypeRepo := repository.NewAnimalTypeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	feedingRepo := repository.NewFeedingRepository(db)
	shopItemRepo := repository.NewShopItemRepository(db)
	mortalityRepo := repository.NewMortalityRepository(db)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}

	return &farmServices{
		batch:     NewBatchService(batchRepo, animalTypeRepo, expenseRepo, feedingRepo, shopItemRepo, queueClient),
		mortality: NewMortalityService(mortalityRepo, batchRepo, queueClient),
		shop:      NewShopService(shopItemRepo, batchRepo),
		db:        db,
	}
}

func createTestAnimalType(t *testing.T, db *gorm.DB, code string) *models.AnimalType {
	t.Helper()
	animalType := &models.AnimalType{Code: code, Name: code}
	if err := db.Create(animalType).Error; err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	return animalType
}

func createTestBatch(t *testing.T, svc *BatchService, animalTypeID uint, quantity int) *models.Batch {
	t.Helper()
	batch, err := svc.Create(CreateBatchInput{
		AnimalTypeID:    animalTypeID,
		ArrivalDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SerialNumber:    fmt.Sprintf("TEST-%d-%d", animalTypeID, quantity),
		InitialQuantity: quantity,
	})
	if err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	return batch
}

func TestCreateBatchDerivesSerialAndDefaults(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "goat")

	batch, err := svc.batch.Create(CreateBatchInput{
		AnimalTypeID:    animalType.ID,
		ArrivalDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 25,
	})
	if err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	if batch.SerialNumber != "BATCH-20250310-25" {
		t.Fatalf("unexpected serial number: %s", batch.SerialNumber)
	}
	if batch.CurrentQuantity != 25 {
		t.Fatalf("expected current quantity 25, got %d", batch.CurrentQuantity)
	}
	if batch.IsMovedToShop {
		t.Fatal("new batch must not be moved to shop")
	}
	if batch.LockedTotalCost != nil || batch.LockedUnitCost != nil {
		t.Fatal("new batch must not carry locked costs")
	}
}

func TestCreateBatchRejectsDuplicateSerial(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "goat")

	input := CreateBatchInput{
		AnimalTypeID:    animalType.ID,
		ArrivalDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 25,
	}
	if _, err := svc.batch.Create(input); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	if _, err := svc.batch.Create(input); !errors.Is(err, ErrSerialNumberTaken) {
		t.Fatalf("expected duplicate serial error, got: %v", err)
	}
}

func TestCreateBatchRejectsInvalidQuantity(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "goat")

	_, err := svc.batch.Create(CreateBatchInput{
		AnimalTypeID:    animalType.ID,
		ArrivalDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 0,
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity error, got: %v", err)
	}
}

func TestBatchUnitCostScenario(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "broiler")
	batch := createTestBatch(t, svc.batch, animalType.ID, 10)

	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "疫苗",
		Amount:      decimal.RequireFromString("100.00"),
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}

	record, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: 2, Reason: "heat"})
	if err != nil {
		t.Fatalf("create mortality failed: %v", err)
	}
	if _, err := svc.mortality.Approve(record.ID, nil); err != nil {
		t.Fatalf("approve mortality failed: %v", err)
	}

	updated, err := svc.batch.GetByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if updated.CurrentQuantity != 8 {
		t.Fatalf("expected quantity 8, got %d", updated.CurrentQuantity)
	}

	summary, err := svc.batch.Totals(batch.ID)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if !summary.TotalCost.Decimal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected total cost: %s", summary.TotalCost.String())
	}
	if summary.UnitCost.String() != "12.5" {
		t.Fatalf("expected unit cost 12.5000, got %s", summary.UnitCost.StringFixed(4))
	}
}

func TestBatchTotalsSumBothLedgers(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "layer")
	batch := createTestBatch(t, svc.batch, animalType.ID, 4)

	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "运输",
		Amount:      decimal.RequireFromString("30.50"),
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}
	if _, err := svc.batch.AddFeeding(batch.ID, AddFeedingInput{
		Bags:   3,
		Amount: decimal.RequireFromString("69.50"),
	}); err != nil {
		t.Fatalf("add feeding failed: %v", err)
	}

	summary, err := svc.batch.Totals(batch.ID)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if !summary.TotalExpenses.Decimal.Equal(decimal.RequireFromString("30.50")) {
		t.Fatalf("unexpected expenses total: %s", summary.TotalExpenses.String())
	}
	if !summary.TotalFeed.Decimal.Equal(decimal.RequireFromString("69.50")) {
		t.Fatalf("unexpected feed total: %s", summary.TotalFeed.String())
	}
	if !summary.TotalCost.Decimal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected total cost: %s", summary.TotalCost.String())
	}
	if summary.UnitCost.StringFixed(4) != "25.0000" {
		t.Fatalf("unexpected unit cost: %s", summary.UnitCost.StringFixed(4))
	}
}

func TestBatchUnitCostDepletedBatchDividesByOne(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "duck")
	batch := createTestBatch(t, svc.batch, animalType.ID, 3)

	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "饲料",
		Amount:      decimal.RequireFromString("45.00"),
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}

	record, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: 5, Reason: "disease"})
	if err != nil {
		t.Fatalf("create mortality failed: %v", err)
	}
	if _, err := svc.mortality.Approve(record.ID, nil); err != nil {
		t.Fatalf("approve mortality failed: %v", err)
	}

	updated, err := svc.batch.GetByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if updated.CurrentQuantity != 0 {
		t.Fatalf("expected quantity clamped to 0, got %d", updated.CurrentQuantity)
	}

	summary, err := svc.batch.Totals(batch.ID)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if summary.UnitCost.StringFixed(4) != "45.0000" {
		t.Fatalf("expected depleted batch to divide by 1, got unit cost %s", summary.UnitCost.StringFixed(4))
	}
}

func TestMoveToShopLocksCostsAndIsOneWay(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "pig")
	batch := createTestBatch(t, svc.batch, animalType.ID, 8)

	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "购入",
		Amount:      decimal.RequireFromString("100.00"),
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}

	actor := uint(7)
	moved, err := svc.batch.MoveToShop(batch.ID, &actor)
	if err != nil {
		t.Fatalf("move to shop failed: %v", err)
	}
	if !moved.IsMovedToShop {
		t.Fatal("batch must be flagged as moved")
	}
	if moved.LockedTotalCost == nil || !moved.LockedTotalCost.Decimal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected locked total cost: %+v", moved.LockedTotalCost)
	}
	if moved.LockedUnitCost == nil || moved.LockedUnitCost.StringFixed(4) != "12.5000" {
		t.Fatalf("unexpected locked unit cost: %+v", moved.LockedUnitCost)
	}

	item, err := repository.NewShopItemRepository(svc.db).GetByBatchID(batch.ID)
	if err != nil {
		t.Fatalf("load shop item failed: %v", err)
	}
	if item == nil {
		t.Fatal("move to shop must create the shop item")
	}
	if item.SellingPricePerUnit != nil {
		t.Fatal("new shop item must be unpriced")
	}

	if _, err := svc.batch.MoveToShop(batch.ID, &actor); !errors.Is(err, ErrBatchAlreadyMoved) {
		t.Fatalf("expected already-moved conflict, got: %v", err)
	}

	// 移入后追加的支出不影响冻结成本
	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "后续支出",
		Amount:      decimal.RequireFromString("999.00"),
	}); err != nil {
		t.Fatalf("add expense after move failed: %v", err)
	}
	after, err := svc.batch.GetByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if !after.LockedTotalCost.Decimal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("locked total cost must not change, got %s", after.LockedTotalCost.String())
	}
	if after.LockedUnitCost.StringFixed(4) != "12.5000" {
		t.Fatalf("locked unit cost must not change, got %s", after.LockedUnitCost.StringFixed(4))
	}
}

func TestAddExpenseRejectsNegativeAmount(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "goose")
	batch := createTestBatch(t, svc.batch, animalType.ID, 5)

	_, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "负数",
		Amount:      decimal.RequireFromString("-1.00"),
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount error, got: %v", err)
	}
}
