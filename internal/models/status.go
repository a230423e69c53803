package models

// SyncStatus is the single externally observable sync state. Exactly one
// status holds at any instant; it is derived, never stored.
type SyncStatus string

const (
	// StatusSynced means the queue is empty and the last pass (if any)
	// succeeded.
	StatusSynced SyncStatus = "synced"
	// StatusPending means the queue is non-empty and no pass is
	// currently running, regardless of connectivity.
	StatusPending SyncStatus = "pending"
	// StatusSyncing means a sync pass is in flight.
	StatusSyncing SyncStatus = "syncing"
	// StatusFailed means the last pass errored and a backoff retry is
	// scheduled.
	StatusFailed SyncStatus = "failed"
	// StatusOffline means the device has no connectivity and nothing is
	// queued.
	StatusOffline SyncStatus = "offline"
)

// ConnectionType classifies the active network interface.
type ConnectionType string

const (
	ConnectionWifi     ConnectionType = "wifi"
	ConnectionCellular ConnectionType = "cellular"
	ConnectionNone     ConnectionType = "none"
	ConnectionUnknown  ConnectionType = "unknown"
)

// ConnectionState is the network monitor's view of connectivity.
// Written only by the monitor, read by everything else.
type ConnectionState struct {
	Type   ConnectionType `json:"type"`
	Online bool           `json:"online"`
}

// Disconnected is the fail-safe initial state: never assume
// connectivity before the first reachability callback.
func Disconnected() ConnectionState {
	return ConnectionState{Online: false, Type: ConnectionNone}
}
