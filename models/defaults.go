package models

func strPtr(s string) *string { return &s }

// DefaultPortfolioData returns a fresh copy of the seed document. Callers get
// their own slices and maps, so mutating the result never bleeds into a later
// call.
func DefaultPortfolioData() PortfolioData {
	return PortfolioData{
		Personal: PersonalInfo{
			Name:      "Alex Chen",
			Title:     "Computer Science & Engineering Student",
			Tagline:   "Building the future, one line of code at a time",
			Email:     "alex.chen@email.com",
			Phone:     "+1 (555) 123-4567",
			Location:  "San Francisco, CA",
			Website:   "https://alexchen.dev",
			ResumeURL: "#",
		},
		Social: SocialLinks{
			"github":        {URL: "https://github.com/alexchen", Visible: true},
			"linkedin":      {URL: "https://linkedin.com/in/alexchen", Visible: true},
			"twitter":       {URL: "https://twitter.com/alexchen", Visible: true},
			"leetcode":      {URL: "https://leetcode.com/alexchen", Visible: true},
			"devto":         {URL: "https://dev.to/alexchen", Visible: true},
			"facebook":      {URL: "", Visible: false},
			"youtube":       {URL: "", Visible: false},
			"instagram":     {URL: "", Visible: false},
			"medium":        {URL: "", Visible: false},
			"stackoverflow": {URL: "", Visible: false},
			"discord":       {URL: "", Visible: false},
			"telegram":      {URL: "", Visible: false},
			"whatsapp":      {URL: "", Visible: false},
			"reddit":        {URL: "", Visible: false},
			"behance":       {URL: "", Visible: false},
			"dribbble":      {URL: "", Visible: false},
		},
		About: AboutInfo{
			Description: "I'm a passionate Computer Science & Engineering student with a strong foundation in algorithms, data structures, and software engineering principles. I love solving complex problems and building innovative solutions that make a difference.\n\nMy journey in tech started when I built my first website at 15, and since then, I've been hooked on creating things with code. I'm particularly interested in full-stack development, artificial intelligence, and distributed systems.\n\nWhen I'm not coding, you'll find me contributing to open-source projects, participating in hackathons, or exploring the latest tech trends.",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			Highlights: []AboutHighlight{
				{Label: "CGPA", Value: "3.9/4.0", Visible: true},
				{Label: "Projects", Value: "25+", Visible: true},
				{Label: "Hackathons", Value: "8", Visible: true},
				{Label: "Certifications", Value: "5", Visible: true},
			},
		},
		Skills: SkillsData{
			Programming: []Skill{
				{Name: "Python", Level: 95, Visible: true},
				{Name: "JavaScript/TypeScript", Level: 90, Visible: true},
				{Name: "Java", Level: 85, Visible: true},
				{Name: "C/C++", Level: 80, Visible: true},
				{Name: "Go", Level: 70, Visible: true},
				{Name: "Rust", Level: 65, Visible: true},
			},
			Frontend: []Skill{
				{Name: "React", Level: 92, Visible: true},
				{Name: "Next.js", Level: 88, Visible: true},
				{Name: "Vue.js", Level: 75, Visible: true},
				{Name: "Tailwind CSS", Level: 90, Visible: true},
				{Name: "HTML/CSS", Level: 95, Visible: true},
			},
			Backend: []Skill{
				{Name: "Node.js", Level: 88, Visible: true},
				{Name: "Express.js", Level: 85, Visible: true},
				{Name: "Django", Level: 80, Visible: true},
				{Name: "FastAPI", Level: 82, Visible: true},
				{Name: "PostgreSQL", Level: 85, Visible: true},
				{Name: "MongoDB", Level: 78, Visible: true},
			},
			Tools: []Skill{
				{Name: "Git/GitHub", Level: 92, Visible: true},
				{Name: "Docker", Level: 85, Visible: true},
				{Name: "AWS", Level: 80, Visible: true},
				{Name: "Kubernetes", Level: 70, Visible: true},
				{Name: "CI/CD", Level: 78, Visible: true},
				{Name: "Linux", Level: 88, Visible: true},
			},
			Other: []OtherSkill{
				{Name: "Machine Learning", Visible: true},
				{Name: "Data Structures", Visible: true},
				{Name: "Algorithms", Visible: true},
				{Name: "System Design", Visible: true},
				{Name: "REST APIs", Visible: true},
				{Name: "GraphQL", Visible: true},
				{Name: "WebSockets", Visible: true},
				{Name: "Microservices", Visible: true},
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "AI-Powered Code Reviewer",
				Description: "An intelligent code review tool that uses LLMs to analyze code quality, detect bugs, and suggest improvements.",
				Image:       "https://images.unsplash.com/photo-1555949963-aa79dcee981c?w=800&h=500&fit=crop",
				Tags:        []string{"Python", "OpenAI", "FastAPI", "React", "PostgreSQL"},
				GitHub:      "https://github.com/alexchen/ai-code-reviewer",
				Demo:        strPtr("https://ai-reviewer.demo"),
				Featured:    true,
				Visible:     true,
			},
			{
				ID:          2,
				Title:       "Distributed Task Queue",
				Description: "A high-performance distributed task queue system built from scratch.",
				Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?w=800&h=500&fit=crop",
				Tags:        []string{"Go", "Redis", "gRPC", "Docker", "Kubernetes"},
				GitHub:      "https://github.com/alexchen/task-queue",
				Demo:        nil,
				Featured:    true,
				Visible:     true,
			},
		},
		Experience: []ExperienceItem{
			{
				ID:          1,
				Role:        "Software Engineering Intern",
				Company:     "Google",
				Location:    "Mountain View, CA",
				Period:      "May 2024 - Aug 2024",
				Description: "Worked on the Cloud Infrastructure team, developing distributed systems for resource allocation.",
				Highlights: []string{
					"Built a predictive scaling system using ML models",
					"Reduced cloud resource costs by $2M annually",
				},
				Visible: true,
			},
		},
		Education: []EducationItem{
			{
				ID:          1,
				Degree:      "B.S. in Computer Science & Engineering",
				Institution: "University of California, Berkeley",
				Location:    "Berkeley, CA",
				Period:      "2021 - 2025 (Expected)",
				GPA:         "3.9/4.0",
				Description: "Dean's List, Computer Science Honors Program.",
				Achievements: []string{
					"Teaching Assistant for CS 170 (Algorithms)",
					"President of ACM Student Chapter",
				},
				Visible: true,
			},
		},
		Certifications: []Certification{
			{Name: "AWS Solutions Architect", Issuer: "Amazon Web Services", Date: "2024", URL: "#", Visible: true},
			{Name: "Google Cloud Professional", Issuer: "Google Cloud", Date: "2024", URL: "#", Visible: true},
		},
		Achievements: []Achievement{
			{Title: "1st Place - CalHacks 2023", Description: "Built an AI-powered accessibility tool", Visible: true},
			{Title: "Google Code Jam Finalist", Description: "Ranked in top 1000 globally", Visible: true},
		},
		StatusBadge: StatusBadge{
			Enabled:     true,
			Text:        "Open to Opportunities",
			Color:       "green",
			Description: "I'm currently looking for software engineering internships and full-time opportunities. Let's discuss how I can contribute to your team!",
		},
		SectionVisibility: SectionVisibility{
			Hero:       true,
			About:      true,
			Skills:     true,
			Projects:   true,
			Experience: true,
			Contact:    true,
		},
	}
}
