package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"aegis/contexts/identity-access/resource-access-service/domain/entities"
	domainerrors "aegis/contexts/identity-access/resource-access-service/domain/errors"
	"aegis/contexts/identity-access/resource-access-service/ports"
)

// Store is the fixed in-memory adapter standing in for the identity store and
// the resource catalog. Seeded at construction, reads never mutate it; a real
// deployment swaps in the postgres adapter behind the same ports.
type Store struct {
	mu sync.RWMutex

	usersByID     map[string]entities.User
	resourcesByID map[string]entities.Resource
	idempotency   map[string]ports.IdempotencyRecord
	sequence      uint64
}

func NewStore() *Store {
	seededAt := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &Store{
		usersByID: map[string]entities.User{
			"user_1": {
				ID:         "user_1",
				Username:   "testuser",
				Email:      "testuser@example.com",
				FirstName:  "Test",
				LastName:   "User",
				IsActive:   true,
				IsStaff:    false,
				DateJoined: &seededAt,
			},
			"user_2": {
				ID:         "user_2",
				Username:   "dormant",
				Email:      "dormant@example.com",
				FirstName:  "Dormant",
				LastName:   "Account",
				IsActive:   false,
				IsStaff:    false,
				DateJoined: &seededAt,
			},
			"user_admin": {
				ID:         "user_admin",
				Username:   "admin",
				Email:      "admin@example.com",
				FirstName:  "Site",
				LastName:   "Admin",
				IsActive:   true,
				IsStaff:    true,
				DateJoined: &seededAt,
			},
		},
		resourcesByID: map[string]entities.Resource{
			"res_1": {
				ID:          "res_1",
				Name:        "User Profile Data",
				Description: "Personal profile information",
				OwnerID:     "user_1",
				IsPublic:    false,
				CreatedAt:   seededAt,
			},
			"res_2": {
				ID:          "res_2",
				Name:        "Public Documentation",
				Description: "API documentation and guides",
				OwnerID:     "user_admin",
				IsPublic:    true,
				CreatedAt:   seededAt,
			},
			"res_3": {
				ID:          "res_3",
				Name:        "Admin Panel",
				Description: "Administrative controls",
				OwnerID:     "user_admin",
				IsPublic:    false,
				CreatedAt:   seededAt,
			},
		},
		idempotency: make(map[string]ports.IdempotencyRecord),
		sequence:    3,
	}
}

func (s *Store) GetUser(ctx context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[strings.TrimSpace(userID)]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username = strings.TrimSpace(username)
	for _, user := range s.usersByID {
		if user.Username == username {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) GetResource(ctx context.Context, resourceID string) (entities.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, ok := s.resourcesByID[strings.TrimSpace(resourceID)]
	if !ok {
		return entities.Resource{}, domainerrors.ErrResourceNotFound
	}
	return resource, nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]entities.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ownerID = strings.TrimSpace(ownerID)
	items := make([]entities.Resource, 0)
	for _, resource := range s.resourcesByID {
		if resource.OwnerID == ownerID {
			items = append(items, resource)
		}
	}
	sort.Slice(items, func(i int, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *Store) CreateResource(ctx context.Context, resource entities.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(resource.ID) == "" {
		return domainerrors.ErrInvalidRequest
	}
	if _, exists := s.resourcesByID[resource.ID]; exists {
		return domainerrors.ErrResourceAlreadyExists
	}
	s.resourcesByID[resource.ID] = resource
	return nil
}

func (s *Store) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.IsZero() && now.UTC().After(record.ExpiresAt.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.idempotency[record.Key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) NewID(ctx context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("res_%d", n), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var _ ports.UserRepository = (*Store)(nil)
var _ ports.ResourceRepository = (*Store)(nil)
var _ ports.IdempotencyStore = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
