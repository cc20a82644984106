package entities

import "time"

// Resource is a protected resource record. OwnerID is a weak reference to a
// user identifier, there is no persistent relationship between the two.
type Resource struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	IsPublic    bool
	CreatedAt   time.Time
}

// ResourceSummary is the projection embedded in access decisions.
type ResourceSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// IsAccessibleBy is the resource-level access predicate: public resources are
// visible to everyone, restricted resources only to their owner or staff.
func (r Resource) IsAccessibleBy(user User) bool {
	if r.IsPublic {
		return true
	}
	return user.ID == r.OwnerID || user.IsStaff
}

func (r Resource) Summary() ResourceSummary {
	return ResourceSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
	}
}
