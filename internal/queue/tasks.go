package queue

import (
	"encoding/json"

	"github.com/farmstock-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskMortalityApprovedLog 死亡审批日志任务
	TaskMortalityApprovedLog = constants.TaskMortalityApprovedLog
	// TaskBatchMovedLog 批次移入商店日志任务
	TaskBatchMovedLog = constants.TaskBatchMovedLog
)

// MortalityApprovedLogPayload 死亡审批日志任务载荷
type MortalityApprovedLogPayload struct {
	BatchID           uint  `json:"batch_id"`
	MortalityRecordID uint  `json:"mortality_record_id"`
	Count             int   `json:"count"`
	ApprovedByID      *uint `json:"approved_by_id,omitempty"`
}

// BatchMovedLogPayload 批次移入商店日志任务载荷
type BatchMovedLogPayload struct {
	BatchID uint  `json:"batch_id"`
	ActorID *uint `json:"actor_id,omitempty"`
}

// NewMortalityApprovedLogTask 创建死亡审批日志任务
func NewMortalityApprovedLogTask(payload MortalityApprovedLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMortalityApprovedLog, body), nil
}

// NewBatchMovedLogTask 创建批次移入商店日志任务
func NewBatchMovedLogTask(payload BatchMovedLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBatchMovedLog, body), nil
}
