package service

import (
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/queue"
	"github.com/farmstock-next/internal/repository"

	"gorm.io/gorm"
)

// MortalityService 死亡记录业务服务
type MortalityService struct {
	mortalityRepo repository.MortalityRepository
	batchRepo     repository.BatchRepository
	queueClient   *queue.Client
}

// NewMortalityService 创建死亡记录服务
func NewMortalityService(
	mortalityRepo repository.MortalityRepository,
	batchRepo repository.BatchRepository,
	queueClient *queue.Client,
) *MortalityService {
	return &MortalityService{
		mortalityRepo: mortalityRepo,
		batchRepo:     batchRepo,
		queueClient:   queueClient,
	}
}

// CreateMortalityInput 死亡上报输入
type CreateMortalityInput struct {
	Count  int
	Reason string
}

// Create 上报死亡记录（待审批状态，不扣减数量）
func (s *MortalityService) Create(batchID uint, input CreateMortalityInput) (*models.MortalityRecord, error) {
	if input.Count <= 0 {
		return nil, ErrInvalidDeathCount
	}
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	record := &models.MortalityRecord{
		BatchID: batch.ID,
		Count:   input.Count,
		Reason:  input.Reason,
	}
	if err := s.mortalityRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID 获取死亡记录详情
func (s *MortalityService) GetByID(id uint) (*models.MortalityRecord, error) {
	record, err := s.mortalityRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMortalityNotFound
	}
	return record, nil
}

// List 分页查询死亡记录
func (s *MortalityService) List(filter repository.MortalityListFilter) ([]models.MortalityRecord, int64, error) {
	return s.mortalityRepo.List(filter)
}

// Approve 审批死亡记录并扣减批次数量。
// 先锁记录再锁批次（全局固定加锁顺序）；已审批的记录直接返回，
// 保证同一条记录无论审批多少次都只扣减一次。
func (s *MortalityService) Approve(recordID uint, approverID *uint) (*models.MortalityRecord, error) {
	record, err := s.mortalityRepo.GetByID(recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrMortalityNotFound
	}

	deducted := false
	err = s.mortalityRepo.Transaction(func(tx *gorm.DB) error {
		txMortalityRepo := s.mortalityRepo.WithTx(tx)
		locked, err := txMortalityRepo.GetByIDForUpdate(recordID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrMortalityNotFound
		}
		if locked.Approved {
			record = locked
			return nil
		}

		txBatchRepo := s.batchRepo.WithTx(tx)
		batch, err := txBatchRepo.GetByIDForUpdate(locked.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return ErrBatchNotFound
		}

		newQty := batch.CurrentQuantity - locked.Count
		if newQty < 0 {
			// 上报数超过存栏数时静默钳制到 0
			newQty = 0
		}
		batch.CurrentQuantity = newQty

		locked.Approved = true
		locked.ApprovedByID = approverID

		if err := txBatchRepo.Update(batch); err != nil {
			return err
		}
		if err := txMortalityRepo.Update(locked); err != nil {
			return err
		}
		record = locked
		deducted = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deducted {
		if err := s.queueClient.EnqueueMortalityApprovedLog(queue.MortalityApprovedLogPayload{
			BatchID:           record.BatchID,
			MortalityRecordID: record.ID,
			Count:             record.Count,
			ApprovedByID:      approverID,
		}); err != nil {
			logger.Warnw("mortality_approved_log_enqueue_failed",
				"mortality_record_id", record.ID,
				"error", err,
			)
		}
	}

	return record, nil
}
