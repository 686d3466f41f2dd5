package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{
	"document_type": "privacy policy",
	"overall_assessment": "reasonable coverage with gaps",
	"gdpr_compliance": {
		"score": 65,
		"status": "partial",
		"strengths": ["lawful basis documented"],
		"gaps": ["no retention schedule"],
		"recommendations": ["add a retention policy"]
	},
	"cyber_essentials_compliance": {
		"score": 40,
		"status": "non-compliant",
		"strengths": [],
		"gaps": ["no patching policy"],
		"recommendations": ["define patch timelines"]
	},
	"priority_actions": [
		{"priority": "high", "action": "write retention policy", "framework": "GDPR", "rationale": "Article 5"}
	],
	"risk_summary": "moderate exposure overall"
}`

func TestParse_ValidReply(t *testing.T) {
	result, err := Parse([]byte(validReply))
	require.NoError(t, err)

	assert.Equal(t, "privacy policy", result.DocumentType)
	assert.Equal(t, 65, result.GDPRCompliance.Score)
	assert.Equal(t, "non-compliant", result.CyberEssentialsCompliance.Status)
	require.Len(t, result.PriorityActions, 1)
	assert.Equal(t, "high", result.PriorityActions[0].Priority)
}

func TestParse_Deviations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "the document looks compliant to me"},
		{"json array", `[1,2,3]`},
		{"missing document_type", strings.Replace(validReply, `"document_type": "privacy policy",`, "", 1)},
		{"missing risk_summary", strings.Replace(validReply, `"risk_summary": "moderate exposure overall"`, `"risk_summary": ""`, 1)},
		{"score above range", strings.Replace(validReply, `"score": 65`, `"score": 130`, 1)},
		{"score below range", strings.Replace(validReply, `"score": 65`, `"score": -5`, 1)},
		{"unknown status", strings.Replace(validReply, `"status": "partial"`, `"status": "great"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_NotApplicableIsValid(t *testing.T) {
	raw := strings.Replace(validReply, `"status": "non-compliant"`, `"status": "not-applicable"`, 1)
	_, err := Parse([]byte(raw))
	assert.NoError(t, err)
}

func TestPrompt_EmbedsExcerpt(t *testing.T) {
	p := Prompt("OUR DATA RETENTION RULES")
	assert.Contains(t, p, "OUR DATA RETENTION RULES")
	assert.Contains(t, p, "JSON format")
	assert.Contains(t, p, "cyber_essentials_compliance")
}
