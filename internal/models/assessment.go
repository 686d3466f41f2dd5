package models

import (
	"time"

	"complypilot/internal/compliance"
)

// Assessment is one scored questionnaire submission. Records are immutable
// and append-only; the most recent one wins for "latest" queries.
type Assessment struct {
	ID                   string              `gorm:"primaryKey;size:36" json:"id"`
	UserID               string              `gorm:"size:64;index;not null" json:"user_id"`
	Responses            []compliance.Answer `gorm:"serializer:json;type:jsonb" json:"responses"`
	ComplianceScore      int                 `json:"compliance_score"`
	GDPRScore            int                 `json:"gdpr_score"`
	CyberEssentialsScore int                 `json:"cyber_essentials_score"`
	RiskLevel            string              `gorm:"size:16;not null" json:"risk_level"`
	Gaps                 []compliance.Gap    `gorm:"serializer:json;type:jsonb" json:"gaps"`
	TotalGaps            int                 `json:"total_gaps"`
	CreatedAt            time.Time           `json:"created_at"`
}
