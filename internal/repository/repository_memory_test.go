package repository

import (
	"context"
	"errors"
	"testing"

	"restaurant-pricing-service/internal/entity"
)

func TestInMemoryMenuItems(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	item := &entity.MenuItem{PlaceID: "place-1", Name: "Naan", BasePrice: 3.99}
	if err := repo.CreateMenuItem(ctx, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == 0 {
		t.Fatalf("ID not assigned")
	}

	items, err := repo.ListMenuItems(ctx, "place-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if err := repo.DeleteMenuItem(ctx, "place-1", item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = repo.DeleteMenuItem(ctx, "place-1", item.ID)
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestInMemoryListIsolation(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if err := repo.CreateMenuItem(ctx, &entity.MenuItem{PlaceID: "place-1", Name: "Naan", BasePrice: 3.99}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := repo.ListMenuItems(ctx, "place-1")
	items[0].Name = "mutated"

	fresh, _ := repo.ListMenuItems(ctx, "place-1")
	if fresh[0].Name != "Naan" {
		t.Fatalf("ListMenuItems leaked internal state")
	}
}
