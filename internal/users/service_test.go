package users

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAssignsIDAndTimestamps(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, err := svc.Register(context.Background(), User{
		Name:         "summoner",
		Email:        "summoner@example.com",
		Region:       "EUW",
		Rank:         "Gold",
		FavoriteRole: "Support",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestRegisterRequiresNameAndEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Register(context.Background(), User{Email: "a@b.c"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.Register(context.Background(), User{Name: "summoner"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, User{Name: "summoner", Email: "summoner@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user.Rank = "Platinum"
	updated, err := svc.Update(ctx, user)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Rank != "Platinum" {
		t.Errorf("Rank = %q, want Platinum", updated.Rank)
	}

	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Update(context.Background(), User{ID: "missing", Name: "x", Email: "x@y.z"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
