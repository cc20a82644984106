package entities

import "time"

// AccessDecision is the success payload of the access workflow. It is built
// per request and never persisted.
type AccessDecision struct {
	DecisionID string           `json:"decision_id"`
	Message    string           `json:"message"`
	User       UserSummary      `json:"user"`
	Resource   *ResourceSummary `json:"resource,omitempty"`
	GrantedAt  time.Time        `json:"granted_at"`
}
