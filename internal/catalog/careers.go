package catalog

import "github.com/jonathan/career-matcher/internal/types"

// builtinCareers is the default career catalog, grouped by domain.
var builtinCareers = []types.Career{
	// Technology & Engineering
	{
		ID:              "software_engineer",
		Name:            "Software Engineer",
		Domain:          "Technology & Engineering",
		Description:     "Design, develop, and maintain software applications",
		Interests:       []string{"programming", "coding", "technology", "problem_solving", "logic"},
		Skills:          []string{"python", "javascript", "java", "c++", "algorithms", "debugging"},
		Strengths:       []string{"analytical_thinking", "attention_to_detail", "problem_solving"},
		SalaryRange:     "$80,000 - $150,000",
		Education:       "Bachelor's in Computer Science or related field",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Remote, Hybrid",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Excellent",
	},
	{
		ID:              "data_scientist",
		Name:            "Data Scientist",
		Domain:          "Technology & Engineering",
		Description:     "Analyze complex data sets to help organizations make decisions",
		Interests:       []string{"data", "statistics", "machine_learning", "analytics", "research"},
		Skills:          []string{"python", "r", "sql", "machine_learning", "statistics", "data_visualization"},
		Strengths:       []string{"analytical_thinking", "problem_solving", "mathematical_aptitude"},
		SalaryRange:     "$90,000 - $160,000",
		Education:       "Master's in Data Science, Statistics, or related field",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Remote",
		GrowthPotential: "Very High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Excellent",
	},
	{
		ID:              "ai_engineer",
		Name:            "AI Engineer",
		Domain:          "Technology & Engineering",
		Description:     "Build and deploy artificial intelligence systems",
		Interests:       []string{"ai", "machine_learning", "neural_networks", "automation"},
		Skills:          []string{"python", "tensorflow", "pytorch", "deep_learning", "computer_vision"},
		Strengths:       []string{"analytical_thinking", "innovation", "technical_expertise"},
		SalaryRange:     "$100,000 - $180,000",
		Education:       "Master's in AI, Computer Science, or related field",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Research Lab, Remote",
		GrowthPotential: "Very High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Excellent",
	},
	{
		ID:              "cybersecurity_analyst",
		Name:            "Cybersecurity Analyst",
		Domain:          "Technology & Engineering",
		Description:     "Protect computer systems and networks from cyber threats",
		Interests:       []string{"security", "networks", "hacking", "protection", "technology"},
		Skills:          []string{"network_security", "ethical_hacking", "firewalls", "encryption"},
		Strengths:       []string{"analytical_thinking", "attention_to_detail", "problem_solving"},
		SalaryRange:     "$85,000 - $140,000",
		Education:       "Bachelor's in Cybersecurity or Computer Science",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Remote",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Excellent",
	},
	// Arts & Design
	{
		ID:              "ux_ui_designer",
		Name:            "UX/UI Designer",
		Domain:          "Arts & Design",
		Description:     "Create intuitive and visually appealing user interfaces",
		Interests:       []string{"design", "creativity", "user_experience", "visual_design"},
		Skills:          []string{"figma", "sketch", "adobe_xd", "prototyping", "user_research"},
		Strengths:       []string{"creativity", "attention_to_detail", "empathy", "communication"},
		SalaryRange:     "$70,000 - $130,000",
		Education:       "Bachelor's in Design, HCI, or related field",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Freelance, Remote",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	{
		ID:              "graphic_designer",
		Name:            "Graphic Designer",
		Domain:          "Arts & Design",
		Description:     "Create visual content for print and digital media",
		Interests:       []string{"art", "creativity", "visual_design", "aesthetics"},
		Skills:          []string{"photoshop", "illustrator", "indesign", "typography", "color_theory"},
		Strengths:       []string{"creativity", "attention_to_detail", "artistic_ability"},
		SalaryRange:     "$50,000 - $90,000",
		Education:       "Bachelor's in Graphic Design or Fine Arts",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Freelance, Agency",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Stable",
	},
	{
		ID:              "animator",
		Name:            "Animator",
		Domain:          "Arts & Design",
		Description:     "Create animated content for films, games, and media",
		Interests:       []string{"animation", "storytelling", "visual_effects", "art"},
		Skills:          []string{"maya", "blender", "after_effects", "storyboarding", "3d_modeling"},
		Strengths:       []string{"creativity", "attention_to_detail", "visual_spatial_skills"},
		SalaryRange:     "$60,000 - $120,000",
		Education:       "Bachelor's in Animation, Fine Arts, or related field",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Studio, Remote, Freelance",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Good",
	},
	{
		ID:              "architect",
		Name:            "Architect",
		Domain:          "Arts & Design",
		Description:     "Design buildings and structures with functionality and aesthetics",
		Interests:       []string{"design", "construction", "aesthetics", "engineering"},
		Skills:          []string{"autocad", "sketchup", "revit", "project_management", "building_codes"},
		Strengths:       []string{"creativity", "spatial_reasoning", "attention_to_detail", "problem_solving"},
		SalaryRange:     "$70,000 - $130,000",
		Education:       "Bachelor's in Architecture (5-year program)",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Site visits, Hybrid",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Stable",
	},
	// Business & Finance
	{
		ID:              "business_analyst",
		Name:            "Business Analyst",
		Domain:          "Business & Finance",
		Description:     "Analyze business needs and recommend solutions",
		Interests:       []string{"business", "analysis", "problem_solving", "strategy"},
		Skills:          []string{"requirements_gathering", "data_analysis", "sql", "excel", "process_modeling"},
		Strengths:       []string{"analytical_thinking", "communication", "problem_solving"},
		SalaryRange:     "$70,000 - $120,000",
		Education:       "Bachelor's in Business, Information Systems, or related field",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Remote, Hybrid",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	{
		ID:              "financial_analyst",
		Name:            "Financial Analyst",
		Domain:          "Business & Finance",
		Description:     "Analyze financial data to help organizations make investment decisions",
		Interests:       []string{"finance", "investing", "markets", "economics", "numbers"},
		Skills:          []string{"financial_modeling", "excel", "valuation", "risk_analysis", "accounting"},
		Strengths:       []string{"analytical_thinking", "attention_to_detail", "mathematical_aptitude"},
		SalaryRange:     "$65,000 - $120,000",
		Education:       "Bachelor's in Finance, Economics, or Business",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Office, Remote",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	{
		ID:              "marketing_manager",
		Name:            "Marketing Manager",
		Domain:          "Business & Finance",
		Description:     "Develop and execute marketing strategies for brands",
		Interests:       []string{"marketing", "strategy", "creativity", "business", "communication"},
		Skills:          []string{"digital_marketing", "seo", "content_strategy", "analytics", "brand_management"},
		Strengths:       []string{"creativity", "communication", "strategic_thinking", "leadership"},
		SalaryRange:     "$75,000 - $140,000",
		Education:       "Bachelor's in Marketing, Business, or Communications",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Remote, Hybrid",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	// Healthcare & Science
	{
		ID:              "physician",
		Name:            "Physician",
		Domain:          "Healthcare & Science",
		Description:     "Diagnose and treat patients with medical conditions",
		Interests:       []string{"medicine", "healthcare", "helping_people", "science", "biology"},
		Skills:          []string{"medical_knowledge", "diagnosis", "patient_care", "communication"},
		Strengths:       []string{"empathy", "attention_to_detail", "stress_management", "ethical_judgment"},
		SalaryRange:     "$180,000 - $250,000",
		Education:       "Doctor of Medicine (MD) - 4 years medical school + residency",
		ExperienceLevel: "Senior",
		WorkEnvironment: "Hospital, Clinic, Private Practice",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Good",
	},
	{
		ID:              "nurse",
		Name:            "Registered Nurse",
		Domain:          "Healthcare & Science",
		Description:     "Provide patient care and support in healthcare settings",
		Interests:       []string{"healthcare", "helping_people", "medicine", "compassion"},
		Skills:          []string{"patient_care", "medical_procedures", "communication", "documentation"},
		Strengths:       []string{"empathy", "attention_to_detail", "stress_management", "communication"},
		SalaryRange:     "$65,000 - $95,000",
		Education:       "Associate or Bachelor's in Nursing + NCLEX-RN",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Hospital, Clinic, Long-term care",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Good",
	},
	{
		ID:              "research_scientist",
		Name:            "Research Scientist",
		Domain:          "Healthcare & Science",
		Description:     "Conduct scientific research to advance knowledge in various fields",
		Interests:       []string{"research", "science", "discovery", "innovation", "analysis"},
		Skills:          []string{"scientific_methods", "data_analysis", "lab_techniques", "publishing"},
		Strengths:       []string{"analytical_thinking", "curiosity", "attention_to_detail", "persistence"},
		SalaryRange:     "$70,000 - $130,000",
		Education:       "PhD in relevant scientific field",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Laboratory, University, Research Institute",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	// Law & Humanities
	{
		ID:              "lawyer",
		Name:            "Lawyer",
		Domain:          "Law & Humanities",
		Description:     "Provide legal advice and represent clients in legal matters",
		Interests:       []string{"law", "justice", "debate", "research", "writing"},
		Skills:          []string{"legal_research", "writing", "negotiation", "public_speaking", "analytical_thinking"},
		Strengths:       []string{"analytical_thinking", "communication", "persuasion", "ethical_judgment"},
		SalaryRange:     "$80,000 - $180,000",
		Education:       "Juris Doctor (JD) - 3 years law school",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Law Firm, Corporate, Government",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Stable",
	},
	{
		ID:              "journalist",
		Name:            "Journalist",
		Domain:          "Law & Humanities",
		Description:     "Research and report news and current events",
		Interests:       []string{"writing", "research", "communication", "current_events", "storytelling"},
		Skills:          []string{"writing", "interviewing", "research", "multimedia", "ethics"},
		Strengths:       []string{"communication", "curiosity", "attention_to_detail", "objectivity"},
		SalaryRange:     "$40,000 - $100,000",
		Education:       "Bachelor's in Journalism, Communications, or related field",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "Newsroom, Remote, Freelance",
		GrowthPotential: "Medium",
		JobSatisfaction: "Medium",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Stable",
	},
	{
		ID:              "teacher",
		Name:            "Teacher/Educator",
		Domain:          "Law & Humanities",
		Description:     "Educate and inspire students at various levels",
		Interests:       []string{"teaching", "education", "helping_people", "knowledge_sharing"},
		Skills:          []string{"teaching_methods", "communication", "curriculum_design", "assessment"},
		Strengths:       []string{"communication", "patience", "organization", "inspiration"},
		SalaryRange:     "$45,000 - $85,000",
		Education:       "Bachelor's in Education or subject area + teaching certification",
		ExperienceLevel: "Entry to Senior",
		WorkEnvironment: "School, University, Online",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Stable",
	},
	// Management & Leadership
	{
		ID:              "project_manager",
		Name:            "Project Manager",
		Domain:          "Management & Leadership",
		Description:     "Lead teams and manage projects to successful completion",
		Interests:       []string{"leadership", "organization", "strategy", "teamwork"},
		Skills:          []string{"project_planning", "team_leadership", "communication", "risk_management"},
		Strengths:       []string{"leadership", "organization", "communication", "problem_solving"},
		SalaryRange:     "$80,000 - $140,000",
		Education:       "Bachelor's in Business, Project Management, or related field + PMP certification",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Remote, Hybrid",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Good",
	},
	{
		ID:              "consultant",
		Name:            "Management Consultant",
		Domain:          "Management & Leadership",
		Description:     "Advise organizations on strategy, operations, and performance improvement",
		Interests:       []string{"strategy", "business", "problem_solving", "analysis", "leadership"},
		Skills:          []string{"strategic_planning", "data_analysis", "presentation", "change_management"},
		Strengths:       []string{"analytical_thinking", "communication", "leadership", "adaptability"},
		SalaryRange:     "$90,000 - $160,000",
		Education:       "MBA or Master's in Business, Consulting, or related field",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Client sites, Travel",
		GrowthPotential: "High",
		JobSatisfaction: "High",
		WorkLifeBalance: "Variable",
		FutureOutlook:   "Good",
	},
	{
		ID:              "hr_manager",
		Name:            "HR Manager",
		Domain:          "Management & Leadership",
		Description:     "Manage human resources functions including recruitment, development, and employee relations",
		Interests:       []string{"people", "organization", "development", "leadership", "helping_people"},
		Skills:          []string{"recruitment", "employee_development", "conflict_resolution", "hr_law"},
		Strengths:       []string{"empathy", "communication", "leadership", "organizational_skills"},
		SalaryRange:     "$75,000 - $130,000",
		Education:       "Bachelor's in HR, Business, Psychology + HR certifications",
		ExperienceLevel: "Mid to Senior",
		WorkEnvironment: "Office, Remote, Hybrid",
		GrowthPotential: "Medium",
		JobSatisfaction: "High",
		WorkLifeBalance: "Good",
		FutureOutlook:   "Stable",
	},
}
