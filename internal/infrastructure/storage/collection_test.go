package storage_test

import (
	"context"
	"testing"

	"dulcestock/internal/infrastructure/storage"
	"dulcestock/internal/infrastructure/storage/memory"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionLoadReplace(t *testing.T) {
	ctx := context.Background()
	col := storage.NewCollection[doc](memory.New(), "docs")

	// Unwritten key loads as an empty slice, not nil or an error.
	got, err := col.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Load of empty collection = %#v", got)
	}

	want := []doc{{ID: "1", Name: "uno"}, {ID: "2", Name: "dos"}}
	if err := col.Replace(ctx, want); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err = col.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Load = %#v, want %#v", got, want)
	}

	// Replacing with nil clears the collection.
	if err := col.Replace(ctx, nil); err != nil {
		t.Fatalf("Replace(nil) failed: %v", err)
	}
	got, _ = col.Load(ctx)
	if len(got) != 0 {
		t.Errorf("collection not cleared: %#v", got)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	in := []doc{{ID: "1", Name: "uno"}}
	if err := store.Set(ctx, "docs", in); err != nil {
		t.Fatal(err)
	}
	in[0].Name = "mutated"

	var out []doc
	found, err := store.Get(ctx, "docs", &out)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if out[0].Name != "uno" {
		t.Errorf("stored document aliased caller memory: %+v", out)
	}
}
