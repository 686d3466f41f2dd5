package dashboard

import (
	"fmt"
	"time"

	"complypilot/internal/compliance"
	"complypilot/internal/models"
)

// Feed composition caps: top gaps from the latest assessment, then pending
// document analyses.
const (
	maxGapActions     = 5
	maxPendingActions = 3
	recentDocsShown   = 5
)

const (
	ActionComplianceGap   = "compliance_gap"
	ActionPendingAnalysis = "pending_analysis"
)

type Action struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description"`
	Guidance    string `json:"guidance,omitempty"`
	DocumentID  string `json:"document_id,omitempty"`
	Priority    string `json:"priority"`
}

type RiskStats struct {
	Identified int `json:"identified"`
	Mitigating int `json:"mitigating"`
	Resolved   int `json:"resolved"`
	Accepted   int `json:"accepted"`
	Total      int `json:"total"`
}

type Summary struct {
	User                 models.User       `json:"user"`
	ComplianceScore      *int              `json:"compliance_score"`
	GDPRScore            *int              `json:"gdpr_score"`
	CyberEssentialsScore *int              `json:"cyber_essentials_score"`
	RiskLevel            *string           `json:"risk_level"`
	LastHealthCheck      *time.Time        `json:"last_health_check"`
	RiskStats            RiskStats         `json:"risk_stats"`
	TotalDocuments       int               `json:"total_documents"`
	AnalyzedDocuments    int               `json:"analyzed_documents"`
	PriorityActions      []Action          `json:"priority_actions"`
	RecentDocuments      []models.Document `json:"recent_documents"`
}

// Build composes the dashboard from the latest outputs of the other
// components. Pure read: nothing is mutated, and the output is deterministic
// for identical inputs. latest and register may be nil when absent.
func Build(user models.User, latest *models.Assessment, register *models.RiskRegister, docs []models.Document) Summary {
	s := Summary{
		User:            user,
		TotalDocuments:  len(docs),
		PriorityActions: make([]Action, 0, maxGapActions+maxPendingActions),
		RecentDocuments: docs,
	}

	if latest != nil {
		s.ComplianceScore = &latest.ComplianceScore
		s.GDPRScore = &latest.GDPRScore
		s.CyberEssentialsScore = &latest.CyberEssentialsScore
		s.RiskLevel = &latest.RiskLevel
		s.LastHealthCheck = &latest.CreatedAt
	}

	if register != nil {
		for _, r := range register.Risks {
			switch r.Status {
			case models.RiskMitigating:
				s.RiskStats.Mitigating++
			case models.RiskResolved:
				s.RiskStats.Resolved++
			case models.RiskAccepted:
				s.RiskStats.Accepted++
			default:
				s.RiskStats.Identified++
			}
			s.RiskStats.Total++
		}
	}

	for _, d := range docs {
		if d.AnalysisStatus == models.AnalysisCompleted {
			s.AnalyzedDocuments++
		}
	}

	if latest != nil {
		for i, gap := range latest.Gaps {
			if i >= maxGapActions {
				break
			}
			s.PriorityActions = append(s.PriorityActions, Action{
				Type:        ActionComplianceGap,
				Category:    gap.Category,
				Subcategory: gap.Subcategory,
				Description: gap.Question,
				Guidance:    gap.Guidance,
				Priority:    gap.Priority,
			})
		}
	}

	pending := 0
	for _, d := range docs {
		if d.AnalysisStatus != models.AnalysisPending {
			continue
		}
		if pending >= maxPendingActions {
			break
		}
		s.PriorityActions = append(s.PriorityActions, Action{
			Type:        ActionPendingAnalysis,
			Category:    "Documents",
			Description: fmt.Sprintf("Analyze document: %s", d.Filename),
			DocumentID:  d.ID,
			Priority:    compliance.PriorityMedium,
		})
		pending++
	}

	if len(s.RecentDocuments) > recentDocsShown {
		s.RecentDocuments = s.RecentDocuments[:recentDocsShown]
	}

	return s
}
