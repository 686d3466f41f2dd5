package models

import "time"

// Subscription records a subject's paid plan. Nothing in this service sells
// plans; rows arrive from the billing side, and absence means the free tier.
type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	PlanType  string    `gorm:"size:32;not null" json:"plan_type"` // free, starter, professional, enterprise
	Status    string    `gorm:"size:32;not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
