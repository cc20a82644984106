package http

// ErrorResponse mirrors the gate's error contract: a machine code plus a
// human-readable detail.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

type AccessResourceResponse struct {
	Status string `json:"status"`
	Data   struct {
		DecisionID string `json:"decision_id"`
		Message    string `json:"message"`
		User       struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			FullName string `json:"full_name"`
		} `json:"user"`
		Resource *struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"resource,omitempty"`
		GrantedAt string `json:"granted_at"`
	} `json:"data"`
}

type OwnedResourcesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Resources []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			IsPublic    bool   `json:"is_public"`
		} `json:"resources"`
	} `json:"data"`
}

type RegisterResourceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	IsPublic    bool   `json:"is_public,omitempty"`
}

type RegisterResourceResponse struct {
	Status string `json:"status"`
	Data   struct {
		Resource struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			OwnerID     string `json:"owner_id"`
			IsPublic    bool   `json:"is_public"`
			CreatedAt   string `json:"created_at"`
		} `json:"resource"`
		Replayed bool `json:"replayed"`
	} `json:"data"`
}
