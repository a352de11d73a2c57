package service

import (
	"errors"
	"testing"

	"github.com/farmstock-next/internal/repository"
)

func TestAnimalTypeDeleteRestrictedWhileReferenced(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalTypeSvc := NewAnimalTypeService(repository.NewAnimalTypeRepository(svc.db))

	animalType, err := animalTypeSvc.Create(AnimalTypeInput{Code: "Goat", Name: "山羊"})
	if err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	if animalType.Code != "goat" {
		t.Fatalf("expected normalized code goat, got %s", animalType.Code)
	}

	createTestBatch(t, svc.batch, animalType.ID, 5)

	if err := animalTypeSvc.Delete(animalType.ID); !errors.Is(err, ErrAnimalTypeInUse) {
		t.Fatalf("expected in-use error, got: %v", err)
	}
}

func TestAnimalTypeCodeUniqueness(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalTypeSvc := NewAnimalTypeService(repository.NewAnimalTypeRepository(svc.db))

	if _, err := animalTypeSvc.Create(AnimalTypeInput{Code: "goat", Name: "山羊"}); err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	if _, err := animalTypeSvc.Create(AnimalTypeInput{Code: "goat", Name: "重复"}); !errors.Is(err, ErrAnimalTypeCodeTaken) {
		t.Fatalf("expected code taken, got: %v", err)
	}
}

func TestAnimalTypeDeleteUnreferenced(t *testing.T) {
	svc := setupFarmServiceTest(t)
	animalTypeSvc := NewAnimalTypeService(repository.NewAnimalTypeRepository(svc.db))

	animalType, err := animalTypeSvc.Create(AnimalTypeInput{Code: "duck", Name: "鸭"})
	if err != nil {
		t.Fatalf("create animal type failed: %v", err)
	}
	if err := animalTypeSvc.Delete(animalType.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := animalTypeSvc.GetByID(animalType.ID); !errors.Is(err, ErrAnimalTypeNotFound) {
		t.Fatalf("expected not found after delete, got: %v", err)
	}
}
