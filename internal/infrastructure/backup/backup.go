// Package backup exports and restores the whole store as one gzipped JSON
// snapshot, the device-app equivalent of a data export.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"dulcestock/internal/infrastructure/storage"
)

// Snapshot is the export format. Collections are kept as raw JSON so a
// snapshot taken by one release restores under another.
type Snapshot struct {
	ExportedAt  time.Time                  `json:"exportedAt"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// Export writes a gzipped snapshot of every collection to w.
func Export(ctx context.Context, store storage.Store, w io.Writer) error {
	snap := Snapshot{
		ExportedAt:  time.Now().UTC(),
		Collections: make(map[string]json.RawMessage, len(storage.Keys())),
	}
	for _, key := range storage.Keys() {
		var doc json.RawMessage
		found, err := store.Get(ctx, key, &doc)
		if err != nil {
			return fmt.Errorf("export %s: %w", key, err)
		}
		if found {
			snap.Collections[key] = doc
		}
	}

	gz := gzip.NewWriter(w)
	if err := json.NewEncoder(gz).Encode(snap); err != nil {
		gz.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return gz.Close()
}

// Restore reads a snapshot from r and overwrites every collection it
// contains. Collections absent from the snapshot keep their current
// contents.
func Restore(ctx context.Context, store storage.Store, r io.Reader) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer gz.Close()

	var snap Snapshot
	if err := json.NewDecoder(gz).Decode(&snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	for _, key := range storage.Keys() {
		doc, ok := snap.Collections[key]
		if !ok {
			continue
		}
		if err := store.Set(ctx, key, doc); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
	}
	return nil
}
