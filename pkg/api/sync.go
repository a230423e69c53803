package api

import (
	"encoding/json"
	"time"
)

// Operation is the wire form of one queued mutation replayed
// against the remote store.
type Operation struct {
	CreatedAt time.Time       `json:"created_at"`
	ID        string          `json:"id"`
	DataType  string          `json:"data_type"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
}

// Apply result statuses returned by the server.
const (
	ApplyStatusAck      = "ack"
	ApplyStatusRejected = "rejected"
)

// ApplyResponse is the server's answer to a single operation replay.
type ApplyResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Record is one authoritative document returned by a pull.
type Record struct {
	UpdatedAt time.Time       `json:"updated_at"`
	ID        string          `json:"id"`
	DataType  string          `json:"data_type"`
	Data      json.RawMessage `json:"data"`
	Deleted   bool            `json:"deleted"`
}

// RecordsResponse is the server's answer to an authoritative pull
// for a single data category.
type RecordsResponse struct {
	ServerTime time.Time `json:"server_time"`
	Records    []Record  `json:"records"`
}

// ErrorResponse is the JSON body returned on any non-2xx status.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
