package analysis

import (
	"context"
	"encoding/json"
	"fmt"
)

// Analyzer produces a structured compliance review of a document excerpt.
// Implementations are long-latency network collaborators; calls must honour
// the context deadline.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Result, error)
}

// Result is the reply schema the analyzer is instructed to produce. Any
// deviation from it is an analysis failure, never a partial result.
type Result struct {
	DocumentType              string           `json:"document_type"`
	OverallAssessment         string           `json:"overall_assessment"`
	GDPRCompliance            FrameworkReview  `json:"gdpr_compliance"`
	CyberEssentialsCompliance FrameworkReview  `json:"cyber_essentials_compliance"`
	PriorityActions           []PriorityAction `json:"priority_actions"`
	RiskSummary               string           `json:"risk_summary"`
}

type FrameworkReview struct {
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

type PriorityAction struct {
	Priority  string `json:"priority"`
	Action    string `json:"action"`
	Framework string `json:"framework"`
	Rationale string `json:"rationale"`
}

// Parse decodes and validates an analyzer reply.
func Parse(raw []byte) (*Result, error) {
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decoding analyzer reply: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

var frameworkStatuses = map[string]struct{}{
	"compliant":      {},
	"partial":        {},
	"non-compliant":  {},
	"not-applicable": {},
}

func (r *Result) validate() error {
	if r.DocumentType == "" {
		return fmt.Errorf("analyzer reply missing document_type")
	}
	if r.RiskSummary == "" {
		return fmt.Errorf("analyzer reply missing risk_summary")
	}
	for name, fr := range map[string]FrameworkReview{
		"gdpr_compliance":             r.GDPRCompliance,
		"cyber_essentials_compliance": r.CyberEssentialsCompliance,
	} {
		if fr.Score < 0 || fr.Score > 100 {
			return fmt.Errorf("%s score %d out of range", name, fr.Score)
		}
		if _, ok := frameworkStatuses[fr.Status]; !ok {
			return fmt.Errorf("%s has unknown status %q", name, fr.Status)
		}
	}
	return nil
}
