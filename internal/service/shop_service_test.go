package service

import (
	"errors"
	"testing"

	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"

	"github.com/shopspring/decimal"
)

func setupPricedShopItem(t *testing.T) (*farmServices, uint) {
	t.Helper()
	svc := setupFarmServiceTest(t)
	animalType := createTestAnimalType(t, svc.db, "pig")
	batch := createTestBatch(t, svc.batch, animalType.ID, 8)

	if _, err := svc.batch.AddExpense(batch.ID, AddExpenseInput{
		Description: "购入",
		Amount:      decimal.RequireFromString("100.00"),
	}); err != nil {
		t.Fatalf("add expense failed: %v", err)
	}
	if _, err := svc.batch.MoveToShop(batch.ID, nil); err != nil {
		t.Fatalf("move to shop failed: %v", err)
	}

	return svc, batch.ID
}

func mustShopItemByBatch(t *testing.T, svc *farmServices, batchID uint) *models.ShopItem {
	t.Helper()
	item, err := repository.NewShopItemRepository(svc.db).GetByBatchID(batchID)
	if err != nil {
		t.Fatalf("load shop item failed: %v", err)
	}
	if item == nil {
		t.Fatal("shop item not found for batch")
	}
	return item
}

func TestSetPriceRejectsAtOrBelowLockedUnitCost(t *testing.T) {
	svc, batchID := setupPricedShopItem(t)
	item := mustShopItemByBatch(t, svc, batchID)

	// 冻结单位成本为 12.5000
	if _, err := svc.shop.SetPrice(item.ID, decimal.RequireFromString("12.5000")); !errors.Is(err, ErrPriceBelowCost) {
		t.Fatalf("expected price-below-cost error at equal price, got: %v", err)
	}
	if _, err := svc.shop.SetPrice(item.ID, decimal.RequireFromString("10.00")); !errors.Is(err, ErrPriceBelowCost) {
		t.Fatalf("expected price-below-cost error below cost, got: %v", err)
	}
}

func TestSetPricePersistsWhenAboveLockedUnitCost(t *testing.T) {
	svc, batchID := setupPricedShopItem(t)
	item := mustShopItemByBatch(t, svc, batchID)

	updated, err := svc.shop.SetPrice(item.ID, decimal.RequireFromString("15.00"))
	if err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	if updated.SellingPricePerUnit == nil || !updated.SellingPricePerUnit.Decimal.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("unexpected selling price: %+v", updated.SellingPricePerUnit)
	}

	reloaded, err := svc.shop.GetByID(item.ID)
	if err != nil {
		t.Fatalf("get shop item failed: %v", err)
	}
	if reloaded.SellingPricePerUnit == nil || !reloaded.SellingPricePerUnit.Decimal.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("selling price not persisted: %+v", reloaded.SellingPricePerUnit)
	}
}

func TestSetPriceRejectsNegativePrice(t *testing.T) {
	svc, batchID := setupPricedShopItem(t)
	item := mustShopItemByBatch(t, svc, batchID)

	if _, err := svc.shop.SetPrice(item.ID, decimal.RequireFromString("-0.01")); !errors.Is(err, ErrPriceInvalid) {
		t.Fatalf("expected invalid price error, got: %v", err)
	}
}

func TestSetPriceUnknownShopItem(t *testing.T) {
	svc := setupFarmServiceTest(t)

	if _, err := svc.shop.SetPrice(4242, decimal.RequireFromString("1.00")); !errors.Is(err, ErrShopItemNotFound) {
		t.Fatalf("expected not found error, got: %v", err)
	}
}
