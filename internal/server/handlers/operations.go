package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aceup/plansync/internal/models"
	"github.com/aceup/plansync/internal/server/storage"
	"github.com/aceup/plansync/pkg/api"
)

// OperationsHandler applies replayed client operations to the
// authoritative store.
type OperationsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewOperationsHandler creates a new handler for operation replay
func NewOperationsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *OperationsHandler {
	return &OperationsHandler{
		logger:  logger,
		storage: recordStorage,
	}
}

// operationTarget is the minimal payload shape every operation must
// carry: the id of the entity it mutates.
type operationTarget struct {
	ID string `json:"id"`
}

// Apply handles POST /api/v1/operations.
//
// Semantic rejections (unknown category, missing entity id, bad verb)
// come back as 200 with status "rejected" so the client drains the
// operation instead of retrying it forever. Apply is idempotent on ack:
// replaying an already-applied operation is harmless under
// last-write-wins.
func (h *OperationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var op api.Operation
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if reason := validateOperation(op); reason != "" {
		h.logger.Warn("operation rejected",
			"operation_id", op.ID,
			"data_type", op.DataType,
			"reason", reason)
		writeJSON(w, h.logger, http.StatusOK, api.ApplyResponse{
			Status: api.ApplyStatusRejected,
			Reason: reason,
		})
		return
	}

	var target operationTarget
	// validateOperation already checked the payload parses
	_ = json.Unmarshal(op.Payload, &target)

	var err error
	switch models.OperationKind(op.Kind) {
	case models.OperationCreate, models.OperationUpdate:
		_, err = h.storage.UpsertRecord(ctx, api.Record{
			ID:        target.ID,
			DataType:  op.DataType,
			Data:      op.Payload,
			UpdatedAt: op.CreatedAt,
		})
	case models.OperationDelete:
		err = h.storage.DeleteRecord(ctx, op.DataType, target.ID, op.CreatedAt)
	}

	if err != nil {
		h.logger.Error("failed to apply operation",
			"operation_id", op.ID,
			"error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to apply operation")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.ApplyResponse{Status: api.ApplyStatusAck})
}

// validateOperation returns a rejection reason, or "" when the
// operation is applicable.
func validateOperation(op api.Operation) string {
	if op.ID == "" {
		return "operation id is required"
	}
	if !models.DataType(op.DataType).Valid() {
		return fmt.Sprintf("unknown data type %q", op.DataType)
	}
	if !models.OperationKind(op.Kind).Valid() {
		return fmt.Sprintf("unknown operation kind %q", op.Kind)
	}

	var target operationTarget
	if err := json.Unmarshal(op.Payload, &target); err != nil {
		return "payload is not a JSON object"
	}
	if target.ID == "" {
		return "payload is missing entity id"
	}
	return ""
}

// writeJSON encodes a JSON response body
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError encodes a JSON error body
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}
