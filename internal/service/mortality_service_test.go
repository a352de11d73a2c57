package service

import (
	"errors"
	"testing"
)

func TestApproveMortalityDeductsExactlyOnce(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "broiler")
	batch := createTestBatch(t, svc.batch, animalType.ID, 10)

	record, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: 3, Reason: "cold"})
	if err != nil {
		t.Fatalf("create mortality failed: %v", err)
	}
	if record.Approved {
		t.Fatal("new mortality record must be pending")
	}

	approver := uint(5)
	approved, err := svc.mortality.Approve(record.ID, &approver)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if !approved.Approved {
		t.Fatal("record must be approved")
	}
	if approved.ApprovedByID == nil || *approved.ApprovedByID != approver {
		t.Fatalf("unexpected approver: %+v", approved.ApprovedByID)
	}

	// 重复审批是空操作，不再扣减
	if _, err := svc.mortality.Approve(record.ID, &approver); err != nil {
		t.Fatalf("second approve must be a no-op, got: %v", err)
	}

	batchAfter, err := svc.batch.GetByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if batchAfter.CurrentQuantity != 7 {
		t.Fatalf("expected quantity 7 after single deduction, got %d", batchAfter.CurrentQuantity)
	}
}

func TestApproveMortalityClampsQuantityToZero(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "rabbit")
	batch := createTestBatch(t, svc.batch, animalType.ID, 3)

	record, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: 5, Reason: "flood"})
	if err != nil {
		t.Fatalf("create mortality failed: %v", err)
	}
	if _, err := svc.mortality.Approve(record.ID, nil); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	batchAfter, err := svc.batch.GetByID(batch.ID)
	if err != nil {
		t.Fatalf("get batch failed: %v", err)
	}
	if batchAfter.CurrentQuantity != 0 {
		t.Fatalf("expected quantity clamped to 0, got %d", batchAfter.CurrentQuantity)
	}
}

func TestCreateMortalityRejectsNonPositiveCount(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "sheep")
	batch := createTestBatch(t, svc.batch, animalType.ID, 6)

	if _, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: 0}); !errors.Is(err, ErrInvalidDeathCount) {
		t.Fatalf("expected invalid death count error, got: %v", err)
	}
	if _, err := svc.mortality.Create(batch.ID, CreateMortalityInput{Count: -2}); !errors.Is(err, ErrInvalidDeathCount) {
		t.Fatalf("expected invalid death count error, got: %v", err)
	}
}

func TestApproveMortalityUnknownRecord(t *testing.T) {
	svc := setupFarmServiceTest(t)

	if _, err := svc.mortality.Approve(9999, nil); !errors.Is(err, ErrMortalityNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
}
