package compliance

// Question categories. The catalog covers the two frameworks a UK SME is
// most commonly assessed against.
const (
	CategoryGDPR            = "GDPR"
	CategoryCyberEssentials = "Cyber Essentials"
)

type Question struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Question    string `json:"question"`
	Weight      int    `json:"weight"` // 1..3
	Guidance    string `json:"guidance"`
}

var gdprQuestions = []Question{
	{ID: "gdpr_1", Category: CategoryGDPR, Subcategory: "Data Inventory", Question: "Do you maintain a record of all personal data you collect and process?", Weight: 3, Guidance: "Article 30 of GDPR requires maintaining records of processing activities."},
	{ID: "gdpr_2", Category: CategoryGDPR, Subcategory: "Lawful Basis", Question: "Have you identified and documented a lawful basis for each processing activity?", Weight: 3, Guidance: "You must have a valid lawful basis under Article 6 for processing personal data."},
	{ID: "gdpr_3", Category: CategoryGDPR, Subcategory: "Privacy Notice", Question: "Do you have a clear, accessible privacy notice that explains how you use personal data?", Weight: 2, Guidance: "Articles 13-14 require transparent communication about data processing."},
	{ID: "gdpr_4", Category: CategoryGDPR, Subcategory: "Consent", Question: "Where you rely on consent, can individuals easily withdraw it?", Weight: 2, Guidance: "Consent must be freely given, specific, informed, and unambiguous."},
	{ID: "gdpr_5", Category: CategoryGDPR, Subcategory: "Data Subject Rights", Question: "Do you have procedures to respond to data subject access requests within 30 days?", Weight: 3, Guidance: "Individuals have the right to access their personal data under Article 15."},
	{ID: "gdpr_6", Category: CategoryGDPR, Subcategory: "Data Subject Rights", Question: "Can you fulfil requests to erase personal data (right to be forgotten)?", Weight: 2, Guidance: "Article 17 gives individuals the right to erasure in certain circumstances."},
	{ID: "gdpr_7", Category: CategoryGDPR, Subcategory: "Data Retention", Question: "Do you have a data retention policy specifying how long you keep personal data?", Weight: 2, Guidance: "Personal data should not be kept longer than necessary for the purposes for which it is processed."},
	{ID: "gdpr_8", Category: CategoryGDPR, Subcategory: "Data Security", Question: "Have you implemented appropriate technical measures to protect personal data?", Weight: 3, Guidance: "Article 32 requires implementing appropriate technical and organisational security measures."},
	{ID: "gdpr_9", Category: CategoryGDPR, Subcategory: "Data Security", Question: "Do you encrypt personal data in transit and at rest?", Weight: 2, Guidance: "Encryption is a recommended security measure under GDPR."},
	{ID: "gdpr_10", Category: CategoryGDPR, Subcategory: "Breach Response", Question: "Do you have a data breach response procedure in place?", Weight: 3, Guidance: "You must report certain breaches to the ICO within 72 hours under Article 33."},
	{ID: "gdpr_11", Category: CategoryGDPR, Subcategory: "DPO", Question: "Have you assessed whether you need to appoint a Data Protection Officer?", Weight: 1, Guidance: "Article 37 specifies when a DPO is required."},
	{ID: "gdpr_12", Category: CategoryGDPR, Subcategory: "International Transfers", Question: "Do you have appropriate safeguards for transferring personal data outside the UK?", Weight: 2, Guidance: "International transfers require adequate protection mechanisms."},
	{ID: "gdpr_13", Category: CategoryGDPR, Subcategory: "Staff Training", Question: "Do all staff who handle personal data receive data protection training?", Weight: 2, Guidance: "Staff awareness is a key organisational measure for compliance."},
	{ID: "gdpr_14", Category: CategoryGDPR, Subcategory: "Third Parties", Question: "Do you have written contracts with all processors who handle personal data on your behalf?", Weight: 3, Guidance: "Article 28 requires contracts with data processors specifying processing terms."},
	{ID: "gdpr_15", Category: CategoryGDPR, Subcategory: "DPIA", Question: "Do you conduct Data Protection Impact Assessments for high-risk processing?", Weight: 2, Guidance: "DPIAs are required under Article 35 for processing likely to result in high risk."},
}

var cyberEssentialsQuestions = []Question{
	{ID: "ce_1", Category: CategoryCyberEssentials, Subcategory: "Firewalls", Question: "Do you have a properly configured firewall protecting your network boundary?", Weight: 3, Guidance: "Firewalls are the first line of defence against network attacks."},
	{ID: "ce_2", Category: CategoryCyberEssentials, Subcategory: "Firewalls", Question: "Are all firewall rules documented and reviewed regularly?", Weight: 2, Guidance: "Regular reviews ensure firewall rules remain appropriate and secure."},
	{ID: "ce_3", Category: CategoryCyberEssentials, Subcategory: "Secure Configuration", Question: "Do you remove or disable unnecessary user accounts?", Weight: 2, Guidance: "Reducing attack surface by removing unused accounts."},
	{ID: "ce_4", Category: CategoryCyberEssentials, Subcategory: "Secure Configuration", Question: "Do you change default passwords on all devices and software?", Weight: 3, Guidance: "Default credentials are a common attack vector."},
	{ID: "ce_5", Category: CategoryCyberEssentials, Subcategory: "Secure Configuration", Question: "Is auto-run disabled for media and network drives?", Weight: 2, Guidance: "Prevents automatic execution of malicious code."},
	{ID: "ce_6", Category: CategoryCyberEssentials, Subcategory: "Access Control", Question: "Do users only have access to the data and systems they need for their role?", Weight: 3, Guidance: "Principle of least privilege reduces risk of data breaches."},
	{ID: "ce_7", Category: CategoryCyberEssentials, Subcategory: "Access Control", Question: "Do you use multi-factor authentication for accessing cloud services?", Weight: 3, Guidance: "MFA significantly reduces the risk of account compromise."},
	{ID: "ce_8", Category: CategoryCyberEssentials, Subcategory: "Access Control", Question: "Are administrator accounts separate from normal user accounts?", Weight: 2, Guidance: "Separation prevents privilege escalation attacks."},
	{ID: "ce_9", Category: CategoryCyberEssentials, Subcategory: "Malware Protection", Question: "Is anti-malware software installed on all devices?", Weight: 3, Guidance: "Essential protection against viruses and malware."},
	{ID: "ce_10", Category: CategoryCyberEssentials, Subcategory: "Malware Protection", Question: "Is your anti-malware software set to update automatically?", Weight: 2, Guidance: "Regular updates ensure protection against new threats."},
	{ID: "ce_11", Category: CategoryCyberEssentials, Subcategory: "Malware Protection", Question: "Is your anti-malware software configured to scan files automatically?", Weight: 2, Guidance: "Automatic scanning catches threats before they execute."},
	{ID: "ce_12", Category: CategoryCyberEssentials, Subcategory: "Patch Management", Question: "Are operating systems set to update automatically?", Weight: 3, Guidance: "Patching fixes known vulnerabilities that attackers exploit."},
	{ID: "ce_13", Category: CategoryCyberEssentials, Subcategory: "Patch Management", Question: "Do you apply high-risk security patches within 14 days of release?", Weight: 3, Guidance: "Timely patching is critical for preventing exploitation."},
	{ID: "ce_14", Category: CategoryCyberEssentials, Subcategory: "Patch Management", Question: "Do you remove unsupported software from your systems?", Weight: 2, Guidance: "Unsupported software no longer receives security updates."},
	{ID: "ce_15", Category: CategoryCyberEssentials, Subcategory: "Password Policy", Question: "Do you enforce a minimum password length of at least 12 characters?", Weight: 2, Guidance: "Longer passwords are significantly harder to crack."},
}

var allQuestions = append(append([]Question{}, gdprQuestions...), cyberEssentialsQuestions...)

// Catalog returns the full question set in presentation order. The slice is
// shared and must not be mutated.
func Catalog() []Question {
	return allQuestions
}

// CountByCategory tallies catalog questions per category.
func CountByCategory() map[string]int {
	counts := make(map[string]int, 2)
	for _, q := range allQuestions {
		counts[q.Category]++
	}
	return counts
}
