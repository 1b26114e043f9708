package boardstore_test

import (
	"context"
	"testing"

	"github.com/ironplane/ironplane/pkg/boardstore"
)

func TestMemoryStoreCreateGet(t *testing.T) {
	ctx := context.Background()
	store := boardstore.NewMemoryStore()
	defer store.Close()

	rec := &boardstore.Record{Name: "rev-a", Spec: []byte(`{}`)}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == "" {
		t.Fatalf("Create did not assign an ID")
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "rev-a" {
		t.Fatalf("Get.Name = %q, want %q", got.Name, "rev-a")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := boardstore.NewMemoryStore()
	if _, err := store.Get(ctx, "nonexistent"); err != boardstore.ErrNotFound {
		t.Fatalf("Get(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := boardstore.NewMemoryStore()
	if err := store.Update(ctx, &boardstore.Record{ID: "nonexistent"}); err != boardstore.ErrNotFound {
		t.Fatalf("Update(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	store := boardstore.NewMemoryStore()

	a := &boardstore.Record{Name: "a"}
	b := &boardstore.Record{Name: "b"}
	if err := store.Create(ctx, a); err != nil {
		t.Fatalf("Create a: %v", err)
	}
	if err := store.Create(ctx, b); err != nil {
		t.Fatalf("Create b: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List = %d records, want 2", len(records))
	}

	if err := store.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	records, _ = store.List(ctx)
	if len(records) != 1 {
		t.Fatalf("List after Delete = %d records, want 1", len(records))
	}
}
