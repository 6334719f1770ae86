package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/aretw0/brezel/pkg/core"
)

// sidecar is the persisted metadata record of a note.
type sidecar struct {
	ID string `json:"id"`
}

type sidecarStatus int

const (
	sidecarAbsent sidecarStatus = iota
	sidecarCorrupt
	sidecarValid
)

func (s sidecarStatus) String() string {
	switch s {
	case sidecarAbsent:
		return "absent"
	case sidecarCorrupt:
		return "corrupt"
	case sidecarValid:
		return "valid"
	}
	return "unknown"
}

// sidecarLookup is the outcome of reading a sidecar. err is set only for
// sidecarCorrupt.
type sidecarLookup struct {
	status sidecarStatus
	id     string
	err    error
}

// MetadataStore keeps one sidecar file per note holding its stable id.
// Sidecars are written once and only removed together with their note.
type MetadataStore struct {
	layout Layout
	logger *slog.Logger
	newID  func() string
}

// NewMetadataStore creates a store writing sidecars under layout.Metadata.
func NewMetadataStore(layout Layout, logger *slog.Logger) *MetadataStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MetadataStore{
		layout: layout,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
}

// ResolveOrCreateID returns the id stored for filename, minting and
// persisting a new one when the sidecar is absent or unusable.
//
// A corrupt sidecar is logged and overwritten: its original id cannot be
// recovered.
func (m *MetadataStore) ResolveOrCreateID(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.layout.Metadata, 0755); err != nil {
		return "", fmt.Errorf("failed to create metadata directory: %w", err)
	}

	found := m.lookup(filename)
	switch found.status {
	case sidecarValid:
		return found.id, nil
	case sidecarCorrupt:
		m.logger.Warn("replacing corrupt note metadata",
			"filename", filename,
			"path", m.layout.SidecarPath(filename),
			"error", found.err,
		)
	}

	return m.Mint(ctx, filename)
}

// Mint unconditionally writes a sidecar with a fresh id and returns it.
func (m *MetadataStore) Mint(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := m.newID()
	data, err := json.Marshal(sidecar{ID: id})
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(m.layout.SidecarPath(filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata for %s: %w", filename, err)
	}

	m.logger.Debug("minted note id", "filename", filename, "id", id)
	return id, nil
}

// Remove deletes the sidecar of filename. A missing sidecar is not an error.
func (m *MetadataStore) Remove(filename string) error {
	err := os.Remove(m.layout.SidecarPath(filename))
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("failed to remove metadata for %s: %w", filename, err)
	}
	return nil
}

func (m *MetadataStore) lookup(filename string) sidecarLookup {
	data, err := os.ReadFile(m.layout.SidecarPath(filename))
	if errors.Is(err, iofs.ErrNotExist) {
		return sidecarLookup{status: sidecarAbsent}
	}
	if err != nil {
		return sidecarLookup{status: sidecarCorrupt, err: fmt.Errorf("%w: %w", core.ErrCorruptMetadata, err)}
	}

	var rec sidecar
	if err := json.Unmarshal(data, &rec); err != nil {
		return sidecarLookup{status: sidecarCorrupt, err: fmt.Errorf("%w: %w", core.ErrCorruptMetadata, err)}
	}
	if rec.ID == "" {
		return sidecarLookup{status: sidecarCorrupt, err: fmt.Errorf("%w: missing id", core.ErrCorruptMetadata)}
	}

	return sidecarLookup{status: sidecarValid, id: rec.ID}
}
