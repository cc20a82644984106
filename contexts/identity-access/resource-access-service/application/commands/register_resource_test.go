package commands

import (
	"context"
	"testing"
	"time"

	"aegis/contexts/identity-access/resource-access-service/adapters/memory"
	domainerrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
)

func newRegisterUseCase(store *memory.Store) RegisterResourceUseCase {
	return RegisterResourceUseCase{
		Users:          store,
		Resources:      store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 7 * 24 * time.Hour,
	}
}

func TestRegisterResourceByStaff(t *testing.T) {
	store := memory.NewStore()
	useCase := newRegisterUseCase(store)

	result, err := useCase.Execute(context.Background(), RegisterResourceCommand{
		IdempotencyKey: "idem-reg-1",
		CallerID:       "user_admin",
		Name:           "Billing Reports",
		Description:    "Monthly billing exports",
		OwnerID:        "user_1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.Resource.ID == "" {
		t.Fatal("expected generated resource id")
	}
	if result.Replayed {
		t.Fatal("first registration must not be a replay")
	}

	stored, err := store.GetResource(context.Background(), result.Resource.ID)
	if err != nil {
		t.Fatalf("stored resource lookup failed: %v", err)
	}
	if stored.OwnerID != "user_1" {
		t.Fatalf("unexpected owner %q", stored.OwnerID)
	}
}

func TestRegisterResourceDeniedForNonStaff(t *testing.T) {
	store := memory.NewStore()
	useCase := newRegisterUseCase(store)

	_, err := useCase.Execute(context.Background(), RegisterResourceCommand{
		IdempotencyKey: "idem-reg-2",
		CallerID:       "user_1",
		Name:           "Forbidden Registration",
	})
	if err != domainerrors.ErrAccessDenied {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestRegisterResourceRequiresIdempotencyKey(t *testing.T) {
	store := memory.NewStore()
	useCase := newRegisterUseCase(store)

	_, err := useCase.Execute(context.Background(), RegisterResourceCommand{
		CallerID: "user_admin",
		Name:     "No Key",
	})
	if err != domainerrors.ErrIdempotencyKeyRequired {
		t.Fatalf("expected idempotency key required, got %v", err)
	}
}

func TestRegisterResourceIdempotencyReplay(t *testing.T) {
	store := memory.NewStore()
	useCase := newRegisterUseCase(store)

	cmd := RegisterResourceCommand{
		IdempotencyKey: "idem-reg-3",
		CallerID:       "user_admin",
		Name:           "Replayed Resource",
	}
	first, err := useCase.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	second, err := useCase.Execute(context.Background(), cmd)
	if err != nil {
		t.Fatalf("second registration failed: %v", err)
	}
	if !second.Replayed {
		t.Fatal("expected replayed result")
	}
	if first.Resource.ID != second.Resource.ID {
		t.Fatalf("expected same resource id, got %s vs %s", first.Resource.ID, second.Resource.ID)
	}
}

func TestRegisterResourceIdempotencyConflict(t *testing.T) {
	store := memory.NewStore()
	useCase := newRegisterUseCase(store)

	_, err := useCase.Execute(context.Background(), RegisterResourceCommand{
		IdempotencyKey: "idem-reg-4",
		CallerID:       "user_admin",
		Name:           "Original Name",
	})
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err = useCase.Execute(context.Background(), RegisterResourceCommand{
		IdempotencyKey: "idem-reg-4",
		CallerID:       "user_admin",
		Name:           "Different Name",
	})
	if err != domainerrors.ErrIdempotencyConflict {
		t.Fatalf("expected idempotency conflict, got %v", err)
	}
}
