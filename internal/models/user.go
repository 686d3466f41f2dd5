package models

import "time"

// User is the subject every assessment, register and document is scoped to.
// The email returned by the identity provider is the durable key; display
// fields are refreshed on every sign-in.
type User struct {
	UserID        string    `gorm:"primaryKey;size:64" json:"user_id"`
	Email         string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Picture       *string   `gorm:"size:512" json:"picture"`
	CompanyName   *string   `gorm:"size:255" json:"company_name"`
	BusinessType  *string   `gorm:"size:100" json:"business_type"`
	EmployeeCount *int      `json:"employee_count"`
	Industry      *string   `gorm:"size:100" json:"industry"`
	CreatedAt     time.Time `json:"created_at"`
}
