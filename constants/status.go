package constants

// SyncStatus is the canonical state of the sync coordinator.
type SyncStatus string

// Stable values (the summary and gRPC layer report these exact strings).
const (
	SyncStatusIdle    SyncStatus = "IDLE"    // no sync in flight
	SyncStatusRunning SyncStatus = "RUNNING" // a sync is in progress
	SyncStatusFailed  SyncStatus = "FAILED"  // run ended in an unrecoverable error; transient, settles back to idle
)
