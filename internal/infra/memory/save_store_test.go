package memory

import (
	"context"
	"errors"
	"testing"

	"quizboard-service/internal/domain"
	"quizboard-service/internal/savegame"
)

func TestSaveStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSaveStore()

	if _, err := store.Latest(ctx); !errors.Is(err, domain.ErrSaveNotFound) {
		t.Fatalf("expected not found on empty store, got %v", err)
	}

	first := savegame.Document{ID: "save-1", Player1Username: "alice", SelectedCategory: "ARTS"}
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("put: %v", err)
	}
	second := savegame.Document{ID: "save-2", Player1Username: "alice", SelectedCategory: "MUSIC"}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "save-1")
	if err != nil || got.SelectedCategory != "ARTS" {
		t.Fatalf("get save-1: %+v, %v", got, err)
	}

	latest, err := store.Latest(ctx)
	if err != nil || latest.ID != "save-2" {
		t.Fatalf("expected save-2 latest, got %+v, %v", latest, err)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, domain.ErrSaveNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
