package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aceup/plansync/internal/models"
	"github.com/aceup/plansync/internal/server/storage"
	"github.com/aceup/plansync/pkg/api"
)

// RecordsHandler serves authoritative pulls.
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
	now     func() time.Time
}

// NewRecordsHandler creates a new handler for authoritative pulls
func NewRecordsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: recordStorage,
		now:     time.Now,
	}
}

// List handles GET /api/v1/records/{dataType}?since=<RFC3339Nano>.
// Without since the full category is returned, tombstones included.
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dataType := r.PathValue("dataType")
	if !models.DataType(dataType).Valid() {
		writeError(w, h.logger, http.StatusNotFound, "unknown data type")
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "invalid since timestamp")
			return
		}
		since = parsed
	}

	records, err := h.storage.ListRecordsSince(ctx, dataType, since)
	if err != nil {
		h.logger.Error("failed to list records",
			"data_type", dataType,
			"error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "failed to list records")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.RecordsResponse{
		ServerTime: h.now().UTC(),
		Records:    records,
	})
}
