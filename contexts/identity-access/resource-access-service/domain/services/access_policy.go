package services

import "aegis/contexts/identity-access/resource-access-service/domain/entities"

// GrantsAccess evaluates the combined access predicate for a user and an
// optionally requested resource. A nil resource means general protected
// access, gated only by the principal predicate.
func GrantsAccess(user entities.User, resource *entities.Resource) bool {
	if !user.CanAccessProtectedResources() {
		return false
	}
	if resource == nil {
		return true
	}
	return resource.IsAccessibleBy(user)
}
