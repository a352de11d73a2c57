package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/farmstock-next/internal/constants"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/provider"
	"github.com/farmstock-next/internal/queue"
	"github.com/farmstock-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupWorkerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.AnimalType{},
		&models.Batch{},
		&models.MortalityRecord{},
		&models.ActivityLog{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	container := &provider.Container{
		BatchRepo:       repository.NewBatchRepository(db),
		ActivityLogRepo: repository.NewActivityLogRepository(db),
	}
	return NewConsumer(container), db
}

func createWorkerTestBatch(t *testing.T, db *gorm.DB) *models.Batch {
	t.Helper()
	animalType := &models.AnimalType{Code: "goat", Name: "山羊"}
	if err := db.Create(animalType).Error; err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	batch := &models.Batch{
		AnimalTypeID:    animalType.ID,
		ArrivalDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SerialNumber:    fmt.Sprintf("WK-%d", time.Now().UnixNano()),
		InitialQuantity: 10,
		CurrentQuantity: 8,
	}
	if err := db.Create(batch).Error; err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	return batch
}

func TestHandleMortalityApprovedLogWritesActivityLog(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	batch := createWorkerTestBatch(t, db)

	approver := uint(7)
	payload, err := json.Marshal(queue.MortalityApprovedLogPayload{
		BatchID:           batch.ID,
		MortalityRecordID: 3,
		Count:             2,
		ApprovedByID:      &approver,
	})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}

	task := asynq.NewTask(queue.TaskMortalityApprovedLog, payload)
	if err := consumer.handleMortalityApprovedLog(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var entry models.ActivityLog
	if err := db.Where("batch_id = ?", batch.ID).First(&entry).Error; err != nil {
		t.Fatalf("load activity log failed: %v", err)
	}
	if entry.Action != constants.ActivityMortalityApproved {
		t.Fatalf("action want %s got %s", constants.ActivityMortalityApproved, entry.Action)
	}
	if entry.MortalityRecordID == nil || *entry.MortalityRecordID != 3 {
		t.Fatalf("mortality record id not recorded: %+v", entry)
	}
	if entry.ActorID == nil || *entry.ActorID != approver {
		t.Fatalf("actor id not recorded: %+v", entry)
	}
	if !strings.Contains(entry.Detail, batch.SerialNumber) {
		t.Fatalf("detail should mention serial number, got %s", entry.Detail)
	}
}

func TestHandleBatchMovedLogIncludesLockedCosts(t *testing.T) {
	consumer, db := setupWorkerTest(t)
	batch := createWorkerTestBatch(t, db)

	lockedTotal := models.NewMoneyFromDecimal(decimal.RequireFromString("100.00"))
	lockedUnit := decimal.RequireFromString("12.5")
	batch.IsMovedToShop = true
	batch.LockedTotalCost = &lockedTotal
	batch.LockedUnitCost = &lockedUnit
	if err := db.Save(batch).Error; err != nil {
		t.Fatalf("save batch failed: %v", err)
	}

	payload, err := json.Marshal(queue.BatchMovedLogPayload{BatchID: batch.ID})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}

	task := asynq.NewTask(queue.TaskBatchMovedLog, payload)
	if err := consumer.handleBatchMovedLog(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var entry models.ActivityLog
	if err := db.Where("batch_id = ? AND action = ?", batch.ID, constants.ActivityBatchMovedToShop).First(&entry).Error; err != nil {
		t.Fatalf("load activity log failed: %v", err)
	}
	if !strings.Contains(entry.Detail, "12.5000") {
		t.Fatalf("detail should mention locked unit cost, got %s", entry.Detail)
	}
}

func TestHandleMortalityApprovedLogSkipsUnknownBatch(t *testing.T) {
	consumer, db := setupWorkerTest(t)

	payload, err := json.Marshal(queue.MortalityApprovedLogPayload{BatchID: 9999, MortalityRecordID: 1, Count: 1})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	task := asynq.NewTask(queue.TaskMortalityApprovedLog, payload)
	if err := consumer.handleMortalityApprovedLog(context.Background(), task); err != nil {
		t.Fatalf("unknown batch should not fail the task: %v", err)
	}

	var count int64
	if err := db.Model(&models.ActivityLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count activity logs failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no activity log expected, got %d", count)
	}
}
