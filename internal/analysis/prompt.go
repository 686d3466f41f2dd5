package analysis

import "fmt"

const systemPrompt = "You are a UK compliance expert. Always respond with valid JSON only."

const promptTemplate = `You are a UK compliance expert specializing in GDPR and Cyber Essentials certification.

Analyze the following policy document and provide a detailed compliance gap analysis.

Document content:
---
%s
---

Provide your analysis in the following JSON format:
{
    "document_type": "string describing what type of policy this appears to be",
    "overall_assessment": "string with brief overall assessment",
    "gdpr_compliance": {
        "score": number from 0-100,
        "status": "compliant|partial|non-compliant",
        "strengths": ["list of GDPR strengths found"],
        "gaps": ["list of specific GDPR gaps or missing elements"],
        "recommendations": ["actionable recommendations to address gaps"]
    },
    "cyber_essentials_compliance": {
        "score": number from 0-100,
        "status": "compliant|partial|non-compliant|not-applicable",
        "strengths": ["list of Cyber Essentials strengths found"],
        "gaps": ["list of specific gaps against Cyber Essentials controls"],
        "recommendations": ["actionable recommendations"]
    },
    "priority_actions": [
        {
            "priority": "high|medium|low",
            "action": "specific action to take",
            "framework": "GDPR|Cyber Essentials|Both",
            "rationale": "why this is important"
        }
    ],
    "risk_summary": "brief paragraph summarizing the compliance risk exposure"
}

Be specific and practical in your recommendations, tailored for UK SMEs with 5-50 employees.`

// Prompt renders the gap-analysis instruction around a document excerpt.
func Prompt(excerpt string) string {
	return fmt.Sprintf(promptTemplate, excerpt)
}
