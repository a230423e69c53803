package models

import "time"

// DataType identifies one of the closed set of domain categories the
// planner synchronizes. The set matches the remote store's collections.
type DataType string

const (
	DataTypeAssignment       DataType = "assignment"
	DataTypeCourse           DataType = "course"
	DataTypeTeacher          DataType = "teacher"
	DataTypeCalendarEvent    DataType = "calendar_event"
	DataTypeAvailability     DataType = "availability"
	DataTypeWorkloadAnalysis DataType = "workload_analysis"
	DataTypeSharedCalendar   DataType = "shared_calendar"
)

// AllDataTypes lists every category in pull order.
func AllDataTypes() []DataType {
	return []DataType{
		DataTypeAssignment,
		DataTypeCourse,
		DataTypeTeacher,
		DataTypeCalendarEvent,
		DataTypeAvailability,
		DataTypeWorkloadAnalysis,
		DataTypeSharedCalendar,
	}
}

// Valid reports whether dt belongs to the closed category set.
func (dt DataType) Valid() bool {
	switch dt {
	case DataTypeAssignment, DataTypeCourse, DataTypeTeacher,
		DataTypeCalendarEvent, DataTypeAvailability,
		DataTypeWorkloadAnalysis, DataTypeSharedCalendar:
		return true
	}
	return false
}

// OperationKind is the mutation verb carried by a pending operation.
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid reports whether k is one of create/update/delete.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// PendingOperation is a locally applied mutation awaiting remote
// acknowledgment. Seq is assigned by the queue storage at enqueue time
// and preserves FIFO order across process restarts.
type PendingOperation struct {
	CreatedAt time.Time     `json:"created_at"`
	ID        string        `json:"id"`
	DataType  DataType      `json:"data_type"`
	Kind      OperationKind `json:"kind"`
	Payload   []byte        `json:"payload"`
	Seq       uint64        `json:"seq"`
	Attempts  int           `json:"attempts"`
}

// Clone returns a deep copy of the operation.
func (op *PendingOperation) Clone() *PendingOperation {
	payload := make([]byte, len(op.Payload))
	copy(payload, op.Payload)

	return &PendingOperation{
		CreatedAt: op.CreatedAt,
		ID:        op.ID,
		DataType:  op.DataType,
		Kind:      op.Kind,
		Payload:   payload,
		Seq:       op.Seq,
		Attempts:  op.Attempts,
	}
}

// Age returns how long the operation has been waiting at the given
// instant. Used only for diagnostics output.
func (op *PendingOperation) Age(now time.Time) time.Duration {
	return now.Sub(op.CreatedAt)
}
