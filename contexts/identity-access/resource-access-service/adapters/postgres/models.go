package postgresadapter

import (
	"time"

	"aegis/contexts/identity-access/resource-access-service/domain/entities"
)

type userModel struct {
	UserID     string     `gorm:"column:user_id;primaryKey"`
	Username   string     `gorm:"column:username;uniqueIndex"`
	Email      string     `gorm:"column:email"`
	FirstName  string     `gorm:"column:first_name"`
	LastName   string     `gorm:"column:last_name"`
	IsActive   bool       `gorm:"column:is_active"`
	IsStaff    bool       `gorm:"column:is_staff"`
	DateJoined *time.Time `gorm:"column:date_joined"`
	LastLogin  *time.Time `gorm:"column:last_login"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:         m.UserID,
		Username:   m.Username,
		Email:      m.Email,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		IsActive:   m.IsActive,
		IsStaff:    m.IsStaff,
		DateJoined: m.DateJoined,
		LastLogin:  m.LastLogin,
	}
}

type resourceModel struct {
	ResourceID  string    `gorm:"column:resource_id;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description"`
	OwnerID     string    `gorm:"column:owner_id;index"`
	IsPublic    bool      `gorm:"column:is_public"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (resourceModel) TableName() string { return "protected_resources" }

func resourceModelFromEntity(resource entities.Resource) resourceModel {
	return resourceModel{
		ResourceID:  resource.ID,
		Name:        resource.Name,
		Description: resource.Description,
		OwnerID:     resource.OwnerID,
		IsPublic:    resource.IsPublic,
		CreatedAt:   resource.CreatedAt.UTC(),
	}
}

func (m resourceModel) toEntity() entities.Resource {
	return entities.Resource{
		ID:          m.ResourceID,
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

type idempotencyModel struct {
	Key             string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at;index"`
}

func (idempotencyModel) TableName() string { return "resource_access_idempotency" }

// Models lists the tables owned by this adapter for platform migration.
func Models() []any {
	return []any{&userModel{}, &resourceModel{}, &idempotencyModel{}}
}
