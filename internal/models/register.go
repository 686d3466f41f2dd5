package models

import "time"

type RiskStatus string

const (
	RiskIdentified RiskStatus = "identified"
	RiskMitigating RiskStatus = "mitigating"
	RiskResolved   RiskStatus = "resolved"
	RiskAccepted   RiskStatus = "accepted"
)

// ValidRiskStatus reports whether s is one of the four register states. Any
// of the four is a legal transition from any other.
func ValidRiskStatus(s RiskStatus) bool {
	switch s {
	case RiskIdentified, RiskMitigating, RiskResolved, RiskAccepted:
		return true
	}
	return false
}

// Risk is a template entry instantiated into a register. RiskID is minted at
// instantiation and is the only stable handle for later updates.
type Risk struct {
	RiskID      string     `json:"risk_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Likelihood  string     `json:"likelihood"`
	Impact      string     `json:"impact"`
	Category    string     `json:"category"`
	Mitigation  string     `json:"mitigation"`
	Status      RiskStatus `json:"status"`
	Owner       *string    `json:"owner"`
	DueDate     *time.Time `json:"due_date"`
	Notes       *string    `json:"notes"`
}

// RiskRegister is the single live register for a subject; generating a new
// one replaces any prior register wholesale.
type RiskRegister struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	BusinessType string    `gorm:"size:100;not null" json:"business_type"`
	Industry     *string   `gorm:"size:100" json:"industry"`
	Risks        []Risk    `gorm:"serializer:json;type:jsonb" json:"risks"`
	TotalRisks   int       `json:"total_risks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
