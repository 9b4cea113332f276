package entity

import (
	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleParent Role = "parent"
)

type User struct {
	ID    uuid.UUID
	Email string
	Role  Role
}
