package site

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"folio/analytics"
	"folio/models"
	"folio/store"
)

type SiteModule struct {
	store     *store.PortfolioStore
	analytics *analytics.AnalyticsModule
}

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

func NewSiteModule(portfolioStore *store.PortfolioStore, analyticsModule *analytics.AnalyticsModule) *SiteModule {
	return &SiteModule{store: portfolioStore, analytics: analyticsModule}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.GET("/sitemap.xml", s.sitemap)
}

func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return source
	}
	return buf.String()
}

func (s *SiteModule) index(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}

	s.analytics.TrackVisit(c, "home")

	data := s.store.Data()
	view := Project(data)

	c.HTML(http.StatusOK, "site_index.html", gin.H{
		"domain":           domain,
		"view":             view,
		"aboutDescription": template.HTML(renderMarkdown(data.About.Description)),
	})
}

func (s *SiteModule) sitemap(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}
	domain = strings.TrimSuffix(domain, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	sitemap.WriteString("  <url>\n")
	sitemap.WriteString("    <loc>" + domain + "/</loc>\n")
	sitemap.WriteString("    <lastmod>" + time.Now().Format(time.RFC3339) + "</lastmod>\n")
	sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
	sitemap.WriteString("    <priority>1.0</priority>\n")
	sitemap.WriteString("  </url>\n")

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}

// SocialEntry is one renderable social link.
type SocialEntry struct {
	Platform string
	URL      string
}

// View is the public projection of the portfolio document: sections gated by
// the section visibility flags, items filtered by their own visible flag.
type View struct {
	Personal          models.PersonalInfo
	StatusBadge       *models.StatusBadge
	SectionVisibility models.SectionVisibility
	Social            []SocialEntry
	About             models.AboutInfo
	Skills            models.SkillsData
	Projects          []models.Project
	Experience        []models.ExperienceItem
	Education         []models.EducationItem
	Certifications    []models.Certification
	Achievements      []models.Achievement
}

// Project applies the visibility projection. Nothing hidden ever reaches a
// template; toggling a flag is the only thing an editor has to do.
func Project(data models.PortfolioData) View {
	view := View{
		Personal:          data.Personal,
		SectionVisibility: data.SectionVisibility,
	}

	if data.StatusBadge.Enabled {
		badge := data.StatusBadge
		view.StatusBadge = &badge
	}

	for _, platform := range models.SocialPlatforms {
		link, ok := data.Social[platform]
		if !ok || !link.Visible || link.URL == "" {
			continue
		}
		view.Social = append(view.Social, SocialEntry{Platform: platform, URL: link.URL})
	}

	if data.SectionVisibility.About {
		view.About = data.About
		view.About.Highlights = nil
		for _, h := range data.About.Highlights {
			if h.Visible {
				view.About.Highlights = append(view.About.Highlights, h)
			}
		}
	}

	if data.SectionVisibility.Skills {
		view.Skills = models.SkillsData{
			Programming: visibleSkills(data.Skills.Programming),
			Frontend:    visibleSkills(data.Skills.Frontend),
			Backend:     visibleSkills(data.Skills.Backend),
			Tools:       visibleSkills(data.Skills.Tools),
		}
		for _, s := range data.Skills.Other {
			if s.Visible {
				view.Skills.Other = append(view.Skills.Other, s)
			}
		}
	}

	if data.SectionVisibility.Projects {
		for _, p := range data.Projects {
			if p.Visible {
				view.Projects = append(view.Projects, p)
			}
		}
	}

	if data.SectionVisibility.Experience {
		for _, e := range data.Experience {
			if e.Visible {
				view.Experience = append(view.Experience, e)
			}
		}
		for _, e := range data.Education {
			if e.Visible {
				view.Education = append(view.Education, e)
			}
		}
		for _, cert := range data.Certifications {
			if cert.Visible {
				view.Certifications = append(view.Certifications, cert)
			}
		}
		for _, a := range data.Achievements {
			if a.Visible {
				view.Achievements = append(view.Achievements, a)
			}
		}
	}

	return view
}

func visibleSkills(skills []models.Skill) []models.Skill {
	var out []models.Skill
	for _, s := range skills {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}
