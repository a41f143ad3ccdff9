package models

// PersonalInfo is the singleton identity block shown in the hero section.
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Tagline   string `json:"tagline"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	ResumeURL string `json:"resumeUrl"` // URL or embedded base64 document
}

type StatusBadge struct {
	Enabled     bool   `json:"enabled"`
	Text        string `json:"text"`
	Color       string `json:"color"` // green, blue, purple, yellow, red, indigo
	Description string `json:"description"`
}

// StatusBadgeColors are the accepted values for StatusBadge.Color.
var StatusBadgeColors = []string{"green", "blue", "purple", "yellow", "red", "indigo"}

type SectionVisibility struct {
	Hero       bool `json:"hero"`
	About      bool `json:"about"`
	Skills     bool `json:"skills"`
	Projects   bool `json:"projects"`
	Experience bool `json:"experience"`
	Contact    bool `json:"contact"`
}

type SocialLink struct {
	URL     string `json:"url"`
	Visible bool   `json:"visible"`
}

// SocialLinks maps every supported platform to its link. Every key listed in
// SocialPlatforms must be present after load; migration fills in the gaps.
type SocialLinks map[string]SocialLink

// SocialPlatforms is the fixed set of platform keys, in display order.
var SocialPlatforms = []string{
	"github", "linkedin", "twitter", "leetcode", "devto", "facebook",
	"youtube", "instagram", "medium", "stackoverflow", "discord",
	"telegram", "whatsapp", "reddit", "behance", "dribbble",
}

type AboutHighlight struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Visible bool   `json:"visible"`
}

type AboutInfo struct {
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Highlights  []AboutHighlight `json:"highlights"`
}

type Skill struct {
	Name    string `json:"name"`
	Level   int    `json:"level"` // 0-100, clamped by the input control
	Visible bool   `json:"visible"`
}

type OtherSkill struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

type SkillsData struct {
	Programming []Skill      `json:"programming"`
	Frontend    []Skill      `json:"frontend"`
	Backend     []Skill      `json:"backend"`
	Tools       []Skill      `json:"tools"`
	Other       []OtherSkill `json:"other"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	GitHub      string   `json:"github"`
	Demo        *string  `json:"demo"`
	Featured    bool     `json:"featured"`
	Visible     bool     `json:"visible"`
}

type ExperienceItem struct {
	ID          int      `json:"id"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Visible     bool     `json:"visible"`
}

type EducationItem struct {
	ID           int      `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Visible      bool     `json:"visible"`
}

// Certification has no stable id; items are addressed by position.
type Certification struct {
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	URL     string `json:"url"`
	Visible bool   `json:"visible"`
}

// Achievement has no stable id; items are addressed by position.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// PortfolioData is the single root aggregate. It is held in memory by the
// store and rewritten wholesale on every mutation.
type PortfolioData struct {
	Personal          PersonalInfo      `json:"personal"`
	Social            SocialLinks       `json:"social"`
	About             AboutInfo         `json:"about"`
	Skills            SkillsData        `json:"skills"`
	Projects          []Project         `json:"projects"`
	Experience        []ExperienceItem  `json:"experience"`
	Education         []EducationItem   `json:"education"`
	Certifications    []Certification   `json:"certifications"`
	Achievements      []Achievement     `json:"achievements"`
	StatusBadge       StatusBadge       `json:"statusBadge"`
	SectionVisibility SectionVisibility `json:"sectionVisibility"`
}

// Clone returns a deep copy of the document. Snapshots handed out while the
// store keeps mutating must not share backing arrays with the live document.
func (d PortfolioData) Clone() PortfolioData {
	out := d

	out.Social = make(SocialLinks, len(d.Social))
	for key, link := range d.Social {
		out.Social[key] = link
	}

	out.About.Highlights = append([]AboutHighlight(nil), d.About.Highlights...)

	out.Skills.Programming = append([]Skill(nil), d.Skills.Programming...)
	out.Skills.Frontend = append([]Skill(nil), d.Skills.Frontend...)
	out.Skills.Backend = append([]Skill(nil), d.Skills.Backend...)
	out.Skills.Tools = append([]Skill(nil), d.Skills.Tools...)
	out.Skills.Other = append([]OtherSkill(nil), d.Skills.Other...)

	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Tags = append([]string(nil), p.Tags...)
		if p.Demo != nil {
			demo := *p.Demo
			p.Demo = &demo
		}
		out.Projects[i] = p
	}

	out.Experience = make([]ExperienceItem, len(d.Experience))
	for i, e := range d.Experience {
		e.Highlights = append([]string(nil), e.Highlights...)
		out.Experience[i] = e
	}

	out.Education = make([]EducationItem, len(d.Education))
	for i, e := range d.Education {
		e.Achievements = append([]string(nil), e.Achievements...)
		out.Education[i] = e
	}

	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Achievements = append([]Achievement(nil), d.Achievements...)

	return out
}
