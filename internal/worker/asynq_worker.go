package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/farmstock-next/internal/constants"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/provider"
	"github.com/farmstock-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者，把批次关键操作落入活动日志
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskMortalityApprovedLog, c.handleMortalityApprovedLog)
	mux.HandleFunc(queue.TaskBatchMovedLog, c.handleBatchMovedLog)
}

func (c *Consumer) handleMortalityApprovedLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_mortality_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.MortalityApprovedLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_mortality_log_unmarshal_failed", "error", err)
		return err
	}
	if payload.BatchID == 0 || payload.MortalityRecordID == 0 {
		logger.Debugw("worker_mortality_log_skip_invalid_payload",
			"batch_id", payload.BatchID,
			"mortality_record_id", payload.MortalityRecordID,
		)
		return nil
	}

	batch, err := c.BatchRepo.GetByID(payload.BatchID)
	if err != nil {
		logger.Warnw("worker_mortality_log_fetch_batch_failed", "batch_id", payload.BatchID, "error", err)
		return err
	}
	if batch == nil {
		logger.Debugw("worker_mortality_log_skip_batch_not_found", "batch_id", payload.BatchID)
		return nil
	}

	recordID := payload.MortalityRecordID
	entry := &models.ActivityLog{
		Action:            constants.ActivityMortalityApproved,
		BatchID:           batch.ID,
		MortalityRecordID: &recordID,
		ActorID:           payload.ApprovedByID,
		Detail: fmt.Sprintf("批次 %s 审批死亡 %d 只，剩余 %d 只",
			batch.SerialNumber, payload.Count, batch.CurrentQuantity),
	}
	if err := c.ActivityLogRepo.Create(entry); err != nil {
		logger.Warnw("worker_mortality_log_create_failed",
			"batch_id", batch.ID,
			"mortality_record_id", recordID,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleBatchMovedLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_batch_moved_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.BatchMovedLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_batch_moved_log_unmarshal_failed", "error", err)
		return err
	}
	if payload.BatchID == 0 {
		logger.Debugw("worker_batch_moved_log_skip_invalid_payload", "batch_id", payload.BatchID)
		return nil
	}

	batch, err := c.BatchRepo.GetByID(payload.BatchID)
	if err != nil {
		logger.Warnw("worker_batch_moved_log_fetch_batch_failed", "batch_id", payload.BatchID, "error", err)
		return err
	}
	if batch == nil {
		logger.Debugw("worker_batch_moved_log_skip_batch_not_found", "batch_id", payload.BatchID)
		return nil
	}

	detail := fmt.Sprintf("批次 %s 移入商店", batch.SerialNumber)
	if batch.LockedTotalCost != nil && batch.LockedUnitCost != nil {
		detail = fmt.Sprintf("批次 %s 移入商店，冻结总成本 %s，单位成本 %s",
			batch.SerialNumber,
			batch.LockedTotalCost.String(),
			batch.LockedUnitCost.StringFixed(4),
		)
	}
	entry := &models.ActivityLog{
		Action:  constants.ActivityBatchMovedToShop,
		BatchID: batch.ID,
		ActorID: payload.ActorID,
		Detail:  detail,
	}
	if err := c.ActivityLogRepo.Create(entry); err != nil {
		logger.Warnw("worker_batch_moved_log_create_failed", "batch_id", batch.ID, "error", err)
		return err
	}
	return nil
}
