package risk

import "strings"

// TemplateEntry is immutable reference data. Entries are copied into a
// register on generation, never referenced.
type TemplateEntry struct {
	RiskID      string `json:"risk_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Likelihood  string `json:"likelihood"`
	Impact      string `json:"impact"`
	Category    string `json:"category"`
	Mitigation  string `json:"mitigation"`
}

const generalTemplate = "general"

var riskTemplates = map[string][]TemplateEntry{
	"retail": {
		{RiskID: "retail_1", Title: "Customer Payment Data Breach", Description: "Unauthorised access to stored payment card details", Likelihood: "medium", Impact: "high", Category: "Data Security", Mitigation: "Implement PCI DSS compliance measures, tokenise card data"},
		{RiskID: "retail_2", Title: "E-commerce Platform Vulnerability", Description: "Security vulnerabilities in online shopping systems", Likelihood: "medium", Impact: "high", Category: "Cyber Security", Mitigation: "Regular security testing, WAF implementation, secure coding practices"},
		{RiskID: "retail_3", Title: "Customer Data Marketing Misuse", Description: "Using customer data for marketing without proper consent", Likelihood: "high", Impact: "medium", Category: "GDPR Compliance", Mitigation: "Implement consent management platform, review marketing permissions"},
		{RiskID: "retail_4", Title: "Third-Party Delivery Partner Data Sharing", Description: "Inadequate data protection with delivery partners", Likelihood: "medium", Impact: "medium", Category: "Third Party Risk", Mitigation: "Review contracts, implement data processing agreements"},
		{RiskID: "retail_5", Title: "Point of Sale System Compromise", Description: "Malware infection on POS systems", Likelihood: "medium", Impact: "high", Category: "Cyber Security", Mitigation: "POS system hardening, network segmentation, regular scanning"},
	},
	"professional_services": {
		{RiskID: "ps_1", Title: "Client Confidentiality Breach", Description: "Unauthorised disclosure of sensitive client information", Likelihood: "medium", Impact: "high", Category: "Data Security", Mitigation: "Access controls, encryption, staff training on confidentiality"},
		{RiskID: "ps_2", Title: "Email Phishing Attack", Description: "Staff falling victim to sophisticated phishing attempts", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "Phishing awareness training, email filtering, MFA enforcement"},
		{RiskID: "ps_3", Title: "Document Retention Non-Compliance", Description: "Retaining client documents beyond legal requirements", Likelihood: "high", Impact: "medium", Category: "GDPR Compliance", Mitigation: "Implement retention schedules, automated deletion, regular audits"},
		{RiskID: "ps_4", Title: "Remote Working Data Exposure", Description: "Data leakage through insecure remote working practices", Likelihood: "high", Impact: "medium", Category: "Cyber Security", Mitigation: "VPN usage, device encryption, secure file sharing policies"},
		{RiskID: "ps_5", Title: "Subcontractor Data Handling", Description: "Inadequate data protection by subcontracted parties", Likelihood: "medium", Impact: "medium", Category: "Third Party Risk", Mitigation: "Due diligence, contractual obligations, periodic audits"},
	},
	"healthcare": {
		{RiskID: "hc_1", Title: "Patient Record Breach", Description: "Unauthorised access to sensitive health records", Likelihood: "medium", Impact: "high", Category: "Data Security", Mitigation: "Role-based access, audit logging, encryption"},
		{RiskID: "hc_2", Title: "Medical Device Vulnerability", Description: "Security flaws in connected medical equipment", Likelihood: "medium", Impact: "high", Category: "Cyber Security", Mitigation: "Device inventory, network segmentation, patch management"},
		{RiskID: "hc_3", Title: "Special Category Data Mishandling", Description: "Processing health data without appropriate safeguards", Likelihood: "medium", Impact: "high", Category: "GDPR Compliance", Mitigation: "Article 9 compliance review, DPIA for processing activities"},
		{RiskID: "hc_4", Title: "Ransomware Attack", Description: "Encryption of patient records by malicious actors", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "Offline backups, endpoint protection, incident response plan"},
		{RiskID: "hc_5", Title: "Consent Management Failure", Description: "Processing patient data without valid consent", Likelihood: "medium", Impact: "medium", Category: "GDPR Compliance", Mitigation: "Consent audit, digital consent capture, staff training"},
	},
	"technology": {
		{RiskID: "tech_1", Title: "Source Code Theft", Description: "Unauthorised access to proprietary software code", Likelihood: "medium", Impact: "high", Category: "Data Security", Mitigation: "Code repository security, access controls, DLP solutions"},
		{RiskID: "tech_2", Title: "Cloud Infrastructure Misconfiguration", Description: "Security gaps in cloud service setup", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "Cloud security posture management, configuration audits"},
		{RiskID: "tech_3", Title: "Customer Data Processing Scope Creep", Description: "Processing customer data beyond agreed purposes", Likelihood: "medium", Impact: "medium", Category: "GDPR Compliance", Mitigation: "Data mapping, processing registers, privacy by design"},
		{RiskID: "tech_4", Title: "API Security Breach", Description: "Exploitation of API vulnerabilities exposing data", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "API security testing, authentication, rate limiting"},
		{RiskID: "tech_5", Title: "International Data Transfer Issues", Description: "Non-compliant data transfers to overseas development teams", Likelihood: "high", Impact: "medium", Category: "GDPR Compliance", Mitigation: "SCCs, adequacy decisions, data localisation"},
	},
	"manufacturing": {
		{RiskID: "mfg_1", Title: "Industrial Control System Attack", Description: "Cyber attack on operational technology systems", Likelihood: "medium", Impact: "high", Category: "Cyber Security", Mitigation: "OT/IT segregation, ICS security monitoring"},
		{RiskID: "mfg_2", Title: "Supply Chain Data Breach", Description: "Compromise through supplier systems", Likelihood: "medium", Impact: "medium", Category: "Third Party Risk", Mitigation: "Supplier security assessments, access restrictions"},
		{RiskID: "mfg_3", Title: "Employee Personal Data Exposure", Description: "HR system vulnerabilities exposing staff data", Likelihood: "medium", Impact: "medium", Category: "GDPR Compliance", Mitigation: "HR system security review, access controls"},
		{RiskID: "mfg_4", Title: "Legacy System Vulnerabilities", Description: "Unpatched legacy systems creating security gaps", Likelihood: "high", Impact: "medium", Category: "Cyber Security", Mitigation: "Legacy system audit, upgrade planning, compensating controls"},
		{RiskID: "mfg_5", Title: "CCTV Compliance Issues", Description: "Non-compliant use of workplace surveillance", Likelihood: "medium", Impact: "low", Category: "GDPR Compliance", Mitigation: "CCTV policy review, signage, retention limits"},
	},
	generalTemplate: {
		{RiskID: "gen_1", Title: "Ransomware Attack", Description: "Malicious encryption of business data", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "Regular backups, endpoint protection, staff training"},
		{RiskID: "gen_2", Title: "Phishing and Social Engineering", Description: "Staff manipulation to disclose credentials or data", Likelihood: "high", Impact: "high", Category: "Cyber Security", Mitigation: "Security awareness training, email filtering, MFA"},
		{RiskID: "gen_3", Title: "Data Subject Rights Non-Compliance", Description: "Failure to respond to data subject requests timely", Likelihood: "medium", Impact: "medium", Category: "GDPR Compliance", Mitigation: "DSR procedures, staff training, request tracking"},
		{RiskID: "gen_4", Title: "Third Party Data Breach", Description: "Data exposure through supplier or partner systems", Likelihood: "medium", Impact: "medium", Category: "Third Party Risk", Mitigation: "Vendor assessments, contractual obligations, monitoring"},
		{RiskID: "gen_5", Title: "Unencrypted Data Storage", Description: "Personal data stored without encryption", Likelihood: "medium", Impact: "medium", Category: "Data Security", Mitigation: "Encryption at rest implementation, security audits"},
	},
}

// Normalize canonicalises a business-type slug: lowercase, spaces to
// underscores.
func Normalize(businessType string) string {
	return strings.ReplaceAll(strings.ToLower(businessType), " ", "_")
}

// Template is a total lookup: unknown business types fall back to the
// general set, never an error.
func Template(businessType string) []TemplateEntry {
	if entries, ok := riskTemplates[Normalize(businessType)]; ok {
		return entries
	}
	return riskTemplates[generalTemplate]
}
