package usecase

// Career is one entry of the curated exploration catalog. The catalog is
// static content, not a stored entity.
type Career struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	GrowthPotential string   `json:"growth_potential"`
	AvgSalary       string   `json:"avg_salary"`
}

// CareerCatalog returns the curated career paths shown on the explore
// page.
func CareerCatalog() []Career {
	return []Career{
		{
			ID:              "career_1",
			Title:           "Software Engineer",
			Category:        "Technology",
			Description:     "Design, develop, and maintain software applications and systems.",
			Skills:          []string{"Programming", "Problem Solving", "Algorithms", "Teamwork"},
			GrowthPotential: "High",
			AvgSalary:       "$95,000 - $150,000",
		},
		{
			ID:              "career_2",
			Title:           "Data Scientist",
			Category:        "Technology",
			Description:     "Analyze complex data to help companies make better decisions.",
			Skills:          []string{"Python", "Statistics", "Machine Learning", "SQL"},
			GrowthPotential: "Very High",
			AvgSalary:       "$100,000 - $160,000",
		},
		{
			ID:              "career_3",
			Title:           "UX/UI Designer",
			Category:        "Creative",
			Description:     "Create intuitive and beautiful user experiences for digital products.",
			Skills:          []string{"Design Tools", "User Research", "Prototyping", "Empathy"},
			GrowthPotential: "High",
			AvgSalary:       "$75,000 - $130,000",
		},
		{
			ID:              "career_4",
			Title:           "Digital Marketing Manager",
			Category:        "Business",
			Description:     "Plan and execute marketing campaigns across digital channels.",
			Skills:          []string{"SEO/SEM", "Analytics", "Content Strategy", "Communication"},
			GrowthPotential: "High",
			AvgSalary:       "$70,000 - $120,000",
		},
		{
			ID:              "career_5",
			Title:           "Registered Nurse",
			Category:        "Healthcare",
			Description:     "Provide patient care and support in hospitals and healthcare facilities.",
			Skills:          []string{"Patient Care", "Medical Knowledge", "Communication", "Compassion"},
			GrowthPotential: "Very High",
			AvgSalary:       "$65,000 - $95,000",
		},
		{
			ID:              "career_6",
			Title:           "Financial Analyst",
			Category:        "Business",
			Description:     "Analyze financial data to guide business investment decisions.",
			Skills:          []string{"Excel", "Financial Modeling", "Analysis", "Attention to Detail"},
			GrowthPotential: "High",
			AvgSalary:       "$70,000 - $110,000",
		},
		{
			ID:              "career_7",
			Title:           "Content Creator",
			Category:        "Creative",
			Description:     "Create engaging content for social media, blogs, and digital platforms.",
			Skills:          []string{"Writing", "Video Editing", "Social Media", "Storytelling"},
			GrowthPotential: "Medium",
			AvgSalary:       "$45,000 - $85,000",
		},
		{
			ID:              "career_8",
			Title:           "AI/ML Engineer",
			Category:        "Technology",
			Description:     "Build and deploy artificial intelligence and machine learning models.",
			Skills:          []string{"Python", "TensorFlow", "Deep Learning", "Mathematics"},
			GrowthPotential: "Very High",
			AvgSalary:       "$120,000 - $180,000",
		},
	}
}
