// Package audit records the security-relevant transitions of a session's
// lifetime. Entries are append-only and consumed by anomaly response.
package audit

import (
	"context"

	"github.com/Malcan-Technologies/shoraka-sub003/dbtypes"
	"github.com/Malcan-Technologies/shoraka-sub003/storage"
	"github.com/cccteam/ccc"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
)

// Event is a security-relevant transition type.
type Event string

const (
	EventLogin           Event = "LOGIN"
	EventSignup          Event = "SIGNUP"
	EventLogout          Event = "LOGOUT"
	EventRefresh         Event = "REFRESH"
	EventReuseDetected   Event = "REUSE_DETECTED"
	EventRoleSwitched    Event = "ROLE_SWITCHED"
	EventPasswordChanged Event = "PASSWORD_CHANGED"
	EventAdminDenied     Event = "ADMIN_DENIED"
)

// Entry is one access-log record.
type Entry struct {
	UserID    ccc.UUID
	Event     Event
	Portal    string
	IP        string
	UserAgent string
	Device    string
	Success   bool
	Metadata  map[string]string
}

// Recorder persists audit entries.
type Recorder interface {
	// Record durably appends the entry.
	Record(ctx context.Context, e Entry) error
	// RecordBestEffort appends the entry, logging instead of failing when
	// the sink is unavailable. Use on paths where audit lag is acceptable.
	RecordBestEffort(ctx context.Context, e Entry)
}

var _ Recorder = &StorageRecorder{}

// StorageRecorder writes entries through the storage layer and mirrors them
// into the structured log.
type StorageRecorder struct {
	store storage.AuditStore
}

// NewStorageRecorder creates a StorageRecorder.
func NewStorageRecorder(store storage.AuditStore) *StorageRecorder {
	return &StorageRecorder{store: store}
}

// Record durably appends the entry.
func (r *StorageRecorder) Record(ctx context.Context, e Entry) error {
	if _, err := r.store.InsertAccessLog(ctx, &dbtypes.AccessLog{
		UserID:    e.UserID,
		Event:     string(e.Event),
		Portal:    e.Portal,
		IP:        e.IP,
		UserAgent: e.UserAgent,
		Device:    e.Device,
		Success:   e.Success,
		Metadata:  e.Metadata,
	}); err != nil {
		return errors.Wrap(err, "storage.AuditStore.InsertAccessLog()")
	}

	logger.Ctx(ctx).Infof("audit: %s user=%s portal=%s success=%t", e.Event, e.UserID, e.Portal, e.Success)

	return nil
}

// RecordBestEffort appends the entry, logging any sink failure and moving on.
func (r *StorageRecorder) RecordBestEffort(ctx context.Context, e Entry) {
	if err := r.Record(ctx, e); err != nil {
		logger.Ctx(ctx).Errorf("audit: failed to record %s for user %s: %v", e.Event, e.UserID, err)
	}
}
