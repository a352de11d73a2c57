package main

import (
	"fmt"
	"time"

	"github.com/farmstock-next/internal/config"
	"github.com/farmstock-next/internal/constants"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加动物种类
	animalTypes := []models.AnimalType{
		{Code: "goat", Name: "山羊"},
		{Code: "sheep", Name: "绵羊"},
		{Code: "broiler", Name: "肉鸡"},
	}

	typeIDs := map[string]uint{}
	for _, at := range animalTypes {
		var existing models.AnimalType
		if err := models.DB.Where("code = ?", at.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&at).Error; err != nil {
				stdLog.Printf("Failed to create animal type %s: %v", at.Code, err)
				continue
			}
			stdLog.Printf("Created animal type: %s", at.Code)
			typeIDs[at.Code] = at.ID
		} else {
			stdLog.Printf("Animal type already exists: %s", at.Code)
			typeIDs[at.Code] = existing.ID
		}
	}

	// 添加示例批次及台账
	arrival := time.Now().AddDate(0, 0, -30).Truncate(24 * time.Hour)
	batches := []struct {
		typeCode string
		quantity int
		expenses []models.Expense
		feedings []models.FeedingRecord
	}{
		{
			typeCode: "goat",
			quantity: 40,
			expenses: []models.Expense{
				{Description: "购入羊苗", Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(5200.00))},
				{Description: "疫苗接种", Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(360.50))},
			},
			feedings: []models.FeedingRecord{
				{Bags: 12, Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(960.00)), Note: "精饲料"},
			},
		},
		{
			typeCode: "broiler",
			quantity: 500,
			expenses: []models.Expense{
				{Description: "购入鸡苗", Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1500.00))},
			},
			feedings: []models.FeedingRecord{
				{Bags: 20, Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1100.00)), Note: "育雏料"},
				{Bags: 8, Amount: models.NewMoneyFromDecimal(decimal.NewFromFloat(430.00)), Note: "中鸡料"},
			},
		},
	}

	for _, seed := range batches {
		typeID, ok := typeIDs[seed.typeCode]
		if !ok {
			stdLog.Printf("Skip batch seed, unknown animal type: %s", seed.typeCode)
			continue
		}
		serial := fmt.Sprintf("%s-%s-%d", constants.BatchSerialPrefix, arrival.Format("20060102"), seed.quantity)
		var existing models.Batch
		if err := models.DB.Where("serial_number = ?", serial).First(&existing).Error; err == nil {
			stdLog.Printf("Batch already exists: %s", serial)
			continue
		}

		batch := models.Batch{
			AnimalTypeID:    typeID,
			ArrivalDate:     arrival,
			SerialNumber:    serial,
			InitialQuantity: seed.quantity,
			CurrentQuantity: seed.quantity,
		}
		if err := models.DB.Create(&batch).Error; err != nil {
			stdLog.Printf("Failed to create batch %s: %v", serial, err)
			continue
		}
		for _, expense := range seed.expenses {
			expense.BatchID = batch.ID
			if err := models.DB.Create(&expense).Error; err != nil {
				stdLog.Printf("Failed to create expense for %s: %v", serial, err)
			}
		}
		for _, feeding := range seed.feedings {
			feeding.BatchID = batch.ID
			if err := models.DB.Create(&feeding).Error; err != nil {
				stdLog.Printf("Failed to create feeding record for %s: %v", serial, err)
			}
		}
		stdLog.Printf("Created batch: %s (%s x %d)", serial, seed.typeCode, seed.quantity)
	}

	stdLog.Printf("Seed finished")
}
