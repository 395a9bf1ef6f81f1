package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// RoleUser is the base role assigned to every registered user.
const RoleUser = "USER"

// Roles is a set of role names stored as a comma-joined column.
type Roles []string

// Value implements driver.Valuer.
func (r Roles) Value() (driver.Value, error) {
	return strings.Join(r, ","), nil
}

// Scan implements sql.Scanner.
func (r *Roles) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("scan roles: unsupported type %T", src)
	}
	if s == "" {
		*r = nil
		return nil
	}
	*r = strings.Split(s, ",")
	return nil
}

// Has reports whether the set contains the given role.
func (r Roles) Has(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles        Roles     `json:"roles" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate guarantees the role set is never empty.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if len(u.Roles) == 0 {
		u.Roles = Roles{RoleUser}
	}
	return nil
}
