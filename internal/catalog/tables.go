package catalog

// TermTable maps a term to an ordered list of associated terms.
type TermTable map[string][]string

// Lookup returns the terms associated with key.
func (t TermTable) Lookup(key string) ([]string, bool) {
	terms, ok := t[key]
	return terms, ok
}

// Clone returns a deep copy of the table.
func (t TermTable) Clone() TermTable {
	out := make(TermTable, len(t))
	for k, v := range t {
		terms := make([]string, len(v))
		copy(terms, v)
		out[k] = terms
	}
	return out
}

// builtinAbbreviations expands abbreviations and loose synonyms into canonical terms.
var builtinAbbreviations = TermTable{
	"it":  {"information_technology", "tech", "technology"},
	"cs":  {"computer_science", "coding", "programming"},
	"ai":  {"artificial_intelligence", "machine_learning"},
	"ux":  {"user_experience", "design"},
	"ui":  {"user_interface", "design"},
	"ml":  {"machine_learning", "data_science"},
	"ds":  {"data_science", "analytics"},
	"dev": {"development", "programming"},
	"eng": {"engineering", "technical"},
	"biz": {"business", "management"},
	"fin": {"finance", "financial"},
	"mkt": {"marketing", "advertising"},
	"hr":  {"human_resources", "people"},
	"pm":  {"project_management", "leadership"},
	"ba":  {"business_analysis", "analysis"},
	"qa":  {"quality_assurance", "testing"},
	"se":  {"software_engineer", "developer"},
	"fe":  {"frontend", "web_development"},
	"be":  {"backend", "server_side"},
	"fs":  {"full_stack", "web_development"},

	// Technology synonyms
	"tech":        {"technology", "computer", "software", "programming"},
	"technology":  {"tech", "computer", "software", "programming", "it"},
	"computer":    {"technology", "tech", "programming", "software"},
	"programming": {"coding", "software", "development", "tech"},
	"coding":      {"programming", "software", "development", "tech"},
	"software":    {"programming", "development", "tech", "technology"},
}

// builtinRelatedTerms lists loosely related concepts for the weakest interest match tier.
var builtinRelatedTerms = TermTable{
	"tech":        {"technology", "computer", "software", "programming", "it"},
	"technology":  {"tech", "computer", "software", "programming", "it", "coding"},
	"computer":    {"technology", "programming", "software", "tech", "it"},
	"programming": {"coding", "software", "development", "tech", "technology"},
	"coding":      {"programming", "software", "development", "tech", "technology"},
	"software":    {"programming", "development", "tech", "technology", "computer"},
	"it":          {"information_technology", "tech", "technology", "computer", "software"},
	"data":        {"analytics", "statistics", "information", "database"},
	"creative":    {"art", "design", "innovation", "creativity"},
	"business":    {"management", "finance", "strategy", "entrepreneurship"},
	"science":     {"research", "analysis", "discovery", "laboratory"},
	"people":      {"social", "communication", "helping", "human"},
	"numbers":     {"mathematics", "analytics", "finance", "statistics"},
	"logic":       {"analytical", "problem_solving", "reasoning", "algorithm"},
}

// builtinCertifications lists recommended certifications per career ID.
var builtinCertifications = TermTable{
	"software_engineer":     {"AWS Certified Developer", "Google Cloud Professional", "Microsoft Azure Fundamentals"},
	"data_scientist":        {"IBM Data Science Professional Certificate", "Google Data Analytics", "TensorFlow Developer Certificate"},
	"ai_engineer":           {"AWS Machine Learning Specialty", "Google Cloud AI/ML", "Deep Learning Specialization"},
	"cybersecurity_analyst": {"CompTIA Security+", "CISSP", "CEH (Certified Ethical Hacker)"},
	"ux_ui_designer":        {"Google UX Design", "Adobe Certified Expert", "Interaction Design Foundation"},
	"business_analyst":      {"CBAP (Certified Business Analysis Professional)", "PMI-PBA", "ECBA"},
	"financial_analyst":     {"CFA (Chartered Financial Analyst)", "FRM", "CPA"},
	"project_manager":       {"PMP (Project Management Professional)", "CSM (Certified ScrumMaster)", "PRINCE2"},
}

// builtinProgressions lists career ladders per career ID.
var builtinProgressions = TermTable{
	"software_engineer": {"Junior Developer", "Mid-level Developer", "Senior Developer", "Tech Lead", "Engineering Manager"},
	"data_scientist":    {"Data Analyst", "Junior Data Scientist", "Data Scientist", "Senior Data Scientist", "Data Science Manager"},
	"ux_ui_designer":    {"Junior Designer", "UX/UI Designer", "Senior Designer", "Design Lead", "Design Manager"},
	"business_analyst":  {"Business Analyst", "Senior Business Analyst", "Business Analysis Manager", "IT Business Partner"},
	"project_manager":   {"Associate PM", "Project Manager", "Senior PM", "Program Manager", "PMO Director"},
}

// Fallbacks used when a career has no specific table entry.
var (
	genericCertifications = []string{"Industry-specific certifications"}
	genericProgression    = []string{"Entry Level", "Mid Level", "Senior Level", "Management", "Executive"}
)
