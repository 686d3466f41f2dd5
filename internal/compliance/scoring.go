package compliance

import (
	"math"
	"sort"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

type Answer struct {
	QuestionID string  `json:"question_id"`
	Answer     bool    `json:"answer"`
	Notes      *string `json:"notes,omitempty"`
}

// Gap is a failed question surfaced with its remediation guidance.
type Gap struct {
	QuestionID  string `json:"question_id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Question    string `json:"question"`
	Guidance    string `json:"guidance"`
	Priority    string `json:"priority"`
}

type Result struct {
	ComplianceScore      int
	GDPRScore            int
	CyberEssentialsScore int
	RiskLevel            string
	Gaps                 []Gap
}

// Score evaluates a set of answers against the catalog. A question answered
// "yes" earns its weight; every question counts towards the maximum whether
// answered or not. Unanswered questions are not gaps. Answers referencing
// unknown question ids are dropped to tolerate partial client state.
func Score(catalog []Question, answers []Answer) Result {
	byID := make(map[string]Answer, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a
	}

	var gdprScore, gdprMax, cyberScore, cyberMax int
	var gaps []Gap

	for _, q := range catalog {
		if q.Category == CategoryGDPR {
			gdprMax += q.Weight
		} else {
			cyberMax += q.Weight
		}

		a, ok := byID[q.ID]
		if !ok {
			continue
		}
		if a.Answer {
			if q.Category == CategoryGDPR {
				gdprScore += q.Weight
			} else {
				cyberScore += q.Weight
			}
			continue
		}
		gaps = append(gaps, Gap{
			QuestionID:  q.ID,
			Category:    q.Category,
			Subcategory: q.Subcategory,
			Question:    q.Question,
			Guidance:    q.Guidance,
			Priority:    gapPriority(q.Weight),
		})
	}

	// high before medium before low; ties keep catalog order
	rank := map[string]int{PriorityHigh: 0, PriorityMedium: 1, PriorityLow: 2}
	sort.SliceStable(gaps, func(i, j int) bool {
		return rank[gaps[i].Priority] < rank[gaps[j].Priority]
	})

	overall := percentage(gdprScore+cyberScore, gdprMax+cyberMax)

	return Result{
		ComplianceScore:      overall,
		GDPRScore:            percentage(gdprScore, gdprMax),
		CyberEssentialsScore: percentage(cyberScore, cyberMax),
		RiskLevel:            RiskLevelFor(overall),
		Gaps:                 gaps,
	}
}

func gapPriority(weight int) string {
	switch {
	case weight >= 3:
		return PriorityHigh
	case weight >= 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func percentage(achieved, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(achieved) / float64(max) * 100))
}

// RiskLevelFor maps an overall percentage onto a risk band. Boundaries are
// inclusive on the lower bound of each band.
func RiskLevelFor(overall int) string {
	switch {
	case overall >= 80:
		return RiskLow
	case overall >= 60:
		return RiskMedium
	case overall >= 40:
		return RiskHigh
	default:
		return RiskCritical
	}
}
