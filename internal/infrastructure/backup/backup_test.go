package backup_test

import (
	"bytes"
	"context"
	"testing"

	"dulcestock/internal/infrastructure/backup"
	"dulcestock/internal/infrastructure/storage"
	"dulcestock/internal/infrastructure/storage/memory"
)

func TestExportRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := memory.New()

	inventory := []map[string]any{{"id": "1", "name": "harina", "contenidoDisponible": 500.0}}
	settings := map[string]any{"marginPct": 45.0}
	if err := src.Set(ctx, storage.KeyInventory, inventory); err != nil {
		t.Fatal(err)
	}
	if err := src.Set(ctx, storage.KeySettings, settings); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := backup.Export(ctx, src, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := memory.New()
	if err := backup.Restore(ctx, dst, &buf); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	var gotInventory []map[string]any
	found, err := dst.Get(ctx, storage.KeyInventory, &gotInventory)
	if err != nil || !found {
		t.Fatalf("inventory after restore: found=%v err=%v", found, err)
	}
	if len(gotInventory) != 1 || gotInventory[0]["name"] != "harina" {
		t.Errorf("inventory = %+v", gotInventory)
	}

	var gotSettings map[string]any
	found, err = dst.Get(ctx, storage.KeySettings, &gotSettings)
	if err != nil || !found {
		t.Fatalf("settings after restore: found=%v err=%v", found, err)
	}
	if gotSettings["marginPct"] != 45.0 {
		t.Errorf("settings = %+v", gotSettings)
	}

	// Collections never exported stay absent.
	var orders []map[string]any
	found, err = dst.Get(ctx, storage.KeyOrders, &orders)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Errorf("orders should be absent, got %+v", orders)
	}
}
