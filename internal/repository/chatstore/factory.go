package chatstore

import (
	"fmt"

	"manasfit-be/internal/pkg/logger"
	"manasfit-be/pkg/chatevents"
)

// Deps carries every backend New may choose from. Remote and Backend may be
// unavailable; Local must be set.
type Deps struct {
	Remote  *RemoteStorage
	Backend *BackendStorage
	Local   *LocalStorage
	Logger  logger.ILogger
	Events  chatevents.Publisher
}

// New selects the preferred backend for storageType and wraps it with local
// fallback.
func New(storageType StorageType, deps Deps) (*FallbackStorage, error) {
	if deps.Local == nil {
		return nil, fmt.Errorf("local chat storage is required")
	}

	var primary Storage
	switch storageType {
	case StorageTypeRemote:
		primary = deps.Remote
		if deps.Remote == nil {
			primary = NewRemoteStorage(nil)
		}
	case StorageTypeBackend:
		primary = deps.Backend
		if deps.Backend == nil {
			primary = NewBackendStorage("", "", 0)
		}
	case StorageTypeLocal:
		primary = deps.Local
	default:
		return nil, fmt.Errorf("unknown chat storage type %q", storageType)
	}

	return NewFallbackStorage(primary, deps.Local, deps.Logger, deps.Events), nil
}

type Status struct {
	Type      StorageType `json:"type"`
	Available bool        `json:"available"`
	Details   string      `json:"details"`
}

// Status reports whether the preferred backend is currently taking writes.
func (f *FallbackStorage) Status() Status {
	status := Status{
		Type:      StorageType(f.primary.Name()),
		Available: f.primary.Available(),
	}
	switch {
	case !f.hasFallback():
		status.Details = "Using local key-value storage"
	case status.Available:
		status.Details = fmt.Sprintf("Using %s storage with local fallback", f.primary.Name())
	default:
		status.Details = fmt.Sprintf("%s storage not configured, using local fallback", f.primary.Name())
	}
	return status
}
