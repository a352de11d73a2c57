package service

import (
	"fmt"
	"time"

	"github.com/farmstock-next/internal/constants"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/queue"
	"github.com/farmstock-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BatchService 生产批次业务服务
type BatchService struct {
	batchRepo      repository.BatchRepository
	animalTypeRepo repository.AnimalTypeRepository
	expenseRepo    repository.ExpenseRepository
	feedingRepo    repository.FeedingRepository
	shopItemRepo   repository.ShopItemRepository
	queueClient    *queue.Client
}

// NewBatchService 创建批次服务
func NewBatchService(
	batchRepo repository.BatchRepository,
	animalTypeRepo repository.AnimalTypeRepository,
	expenseRepo repository.ExpenseRepository,
	feedingRepo repository.FeedingRepository,
	shopItemRepo repository.ShopItemRepository,
	queueClient *queue.Client,
) *BatchService {
	return &BatchService{
		batchRepo:      batchRepo,
		animalTypeRepo: animalTypeRepo,
		expenseRepo:    expenseRepo,
		feedingRepo:    feedingRepo,
		shopItemRepo:   shopItemRepo,
		queueClient:    queueClient,
	}
}

// CreateBatchInput 创建批次输入
type CreateBatchInput struct {
	AnimalTypeID    uint
	ArrivalDate     time.Time
	SerialNumber    string
	InitialQuantity int
	CurrentQuantity *int
	CreatedByID     *uint
}

// CostSummary 批次成本汇总（未冻结时实时计算）
type CostSummary struct {
	TotalExpenses models.Money    `json:"total_expenses"`
	TotalFeed     models.Money    `json:"total_feed"`
	TotalCost     models.Money    `json:"total_cost"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}

// Create 创建批次。批次编号缺省时按到场日期和初始数量派生。
func (s *BatchService) Create(input CreateBatchInput) (*models.Batch, error) {
	if input.InitialQuantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.ArrivalDate.IsZero() {
		return nil, ErrInvalidArrival
	}

	animalType, err := s.animalTypeRepo.GetByID(input.AnimalTypeID)
	if err != nil {
		return nil, err
	}
	if animalType == nil {
		return nil, ErrAnimalTypeNotFound
	}

	serial := input.SerialNumber
	if serial == "" {
		serial = deriveSerialNumber(input.ArrivalDate, input.InitialQuantity)
	}
	if exist, err := s.batchRepo.GetBySerialNumber(serial); err != nil {
		return nil, err
	} else if exist != nil {
		return nil, ErrSerialNumberTaken
	}

	current := input.InitialQuantity
	if input.CurrentQuantity != nil {
		if *input.CurrentQuantity < 0 || *input.CurrentQuantity > input.InitialQuantity {
			return nil, ErrInvalidQuantity
		}
		current = *input.CurrentQuantity
	}

	batch := &models.Batch{
		AnimalTypeID:    input.AnimalTypeID,
		ArrivalDate:     input.ArrivalDate,
		SerialNumber:    serial,
		InitialQuantity: input.InitialQuantity,
		CurrentQuantity: current,
		CreatedByID:     input.CreatedByID,
	}
	if err := s.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return s.batchRepo.GetByID(batch.ID)
}

// GetByID 获取批次详情
func (s *BatchService) GetByID(id uint) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	return batch, nil
}

// List 分页查询批次
func (s *BatchService) List(filter repository.BatchListFilter) ([]models.Batch, int64, error) {
	return s.batchRepo.List(filter)
}

// Totals 实时计算批次成本汇总
func (s *BatchService) Totals(batchID uint) (*CostSummary, error) {
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	return s.computeTotals(s.batchRepo, batch)
}

// AddExpenseInput 记录支出输入
type AddExpenseInput struct {
	Description  string
	Amount       decimal.Decimal
	RecordedByID *uint
}

// AddExpense 为批次追加一笔支出
func (s *BatchService) AddExpense(batchID uint, input AddExpenseInput) (*models.Expense, error) {
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	expense := &models.Expense{
		BatchID:      batch.ID,
		Description:  input.Description,
		Amount:       models.NewMoneyFromDecimal(input.Amount),
		RecordedByID: input.RecordedByID,
	}
	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses 分页查询批次支出
func (s *BatchService) ListExpenses(filter repository.LedgerListFilter) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(filter)
}

// AddFeedingInput 记录饲喂输入
type AddFeedingInput struct {
	Bags         int
	Amount       decimal.Decimal
	Note         string
	RecordedByID *uint
}

// AddFeeding 为批次追加一条饲喂记录
func (s *BatchService) AddFeeding(batchID uint, input AddFeedingInput) (*models.FeedingRecord, error) {
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	bags := input.Bags
	if bags == 0 {
		bags = 1
	}
	if bags < 0 {
		return nil, ErrInvalidBags
	}
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	record := &models.FeedingRecord{
		BatchID:      batch.ID,
		Bags:         bags,
		Amount:       models.NewMoneyFromDecimal(input.Amount),
		Note:         input.Note,
		RecordedByID: input.RecordedByID,
	}
	if err := s.feedingRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListFeeding 分页查询批次饲喂记录
func (s *BatchService) ListFeeding(filter repository.LedgerListFilter) ([]models.FeedingRecord, int64, error) {
	return s.feedingRepo.List(filter)
}

// MoveToShop 将批次移入商店：加锁冻结成本并创建商店条目。
// 该转换单向且只执行一次，已移入的批次再次调用返回冲突错误。
func (s *BatchService) MoveToShop(batchID uint, actorID *uint) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	if batch.IsMovedToShop {
		return nil, ErrBatchAlreadyMoved
	}

	err = s.batchRepo.Transaction(func(tx *gorm.DB) error {
		txBatchRepo := s.batchRepo.WithTx(tx)
		locked, err := txBatchRepo.GetByIDForUpdate(batchID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrBatchNotFound
		}
		if locked.IsMovedToShop {
			return ErrBatchAlreadyMoved
		}

		summary, err := s.computeTotals(txBatchRepo, locked)
		if err != nil {
			return err
		}

		totalCost := summary.TotalCost
		unitCost := summary.UnitCost
		locked.LockedTotalCost = &totalCost
		locked.LockedUnitCost = &unitCost
		locked.IsMovedToShop = true
		if actorID != nil {
			locked.CreatedByID = actorID
		}
		if err := txBatchRepo.Update(locked); err != nil {
			return err
		}

		item := &models.ShopItem{BatchID: locked.ID}
		return s.shopItemRepo.WithTx(tx).Create(item)
	})
	if err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueBatchMovedLog(queue.BatchMovedLogPayload{
		BatchID: batchID,
		ActorID: actorID,
	}); err != nil {
		logger.Warnw("batch_moved_log_enqueue_failed", "batch_id", batchID, "error", err)
	}

	return s.batchRepo.GetByID(batchID)
}

// computeTotals 汇总两本台账并按四位小数银行家舍入计算单位成本
func (s *BatchService) computeTotals(repo repository.BatchRepository, batch *models.Batch) (*CostSummary, error) {
	totalExpenses, err := repo.SumExpenses(batch.ID)
	if err != nil {
		return nil, err
	}
	totalFeed, err := repo.SumFeeding(batch.ID)
	if err != nil {
		return nil, err
	}
	totalCost := totalExpenses.Add(totalFeed)

	// 数量耗尽的批次按 1 计算，保留既有口径
	qty := batch.CurrentQuantity
	if qty < 1 {
		qty = 1
	}
	unitCost := totalCost.Div(decimal.NewFromInt(int64(qty))).RoundBank(4)

	return &CostSummary{
		TotalExpenses: models.NewMoneyFromDecimal(totalExpenses),
		TotalFeed:     models.NewMoneyFromDecimal(totalFeed),
		TotalCost:     models.NewMoneyFromDecimal(totalCost),
		UnitCost:      unitCost,
	}, nil
}

func deriveSerialNumber(arrival time.Time, initialQuantity int) string {
	return fmt.Sprintf("%s-%s-%d", constants.BatchSerialPrefix, arrival.Format("20060102"), initialQuantity)
}
