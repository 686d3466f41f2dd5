package models

import (
	"time"

	"complypilot/internal/analysis"
)

type AnalysisStatus string

const (
	AnalysisPending   AnalysisStatus = "pending"
	AnalysisCompleted AnalysisStatus = "completed"
	AnalysisFailed    AnalysisStatus = "failed"
)

// Document is an uploaded policy file. The raw content is stored opaquely
// and never returned in list/get responses; analysis_status transitions are
// the only mutation path.
type Document struct {
	ID             string           `gorm:"primaryKey;size:36" json:"id"`
	UserID         string           `gorm:"size:64;index;not null" json:"user_id"`
	Filename       string           `gorm:"size:255;not null" json:"filename"`
	FileType       string           `gorm:"size:100;not null" json:"file_type"`
	FileSize       int              `json:"file_size"`
	Content        []byte           `gorm:"type:bytea" json:"-"`
	AnalysisStatus AnalysisStatus   `gorm:"size:16;not null" json:"analysis_status"`
	AnalysisResult *analysis.Result `gorm:"serializer:json;type:jsonb" json:"analysis_result"`
	AnalysisError  *string          `gorm:"type:text" json:"analysis_error,omitempty"`
	AnalyzedAt     *time.Time       `json:"analyzed_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
