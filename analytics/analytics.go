package analytics

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageEvent is one recorded visit to the public portfolio.
type PageEvent struct {
	ID        uint      `gorm:"primary_key;autoIncrement"`
	Page      string    `gorm:"not null;index"` // normalized path, e.g. "home"
	CookieID  string    `gorm:"not null;index"`
	Event     string    `gorm:"not null;default:'visit'"`
	IP        string    `gorm:"not null"`
	Language  *string
	Browser   *string
	CreatedAt time.Time `gorm:"index"`
}

type AnalyticsModule struct {
	db *gorm.DB
}

// NewAnalyticsModule initializes visit tracking on its own database. A nil db
// disables analytics; all methods are safe on a nil module.
func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		log.Println("Analytics DB is nil, analytics will be disabled")
		return nil
	}

	if err := db.AutoMigrate(&PageEvent{}); err != nil {
		log.Printf("Error migrating page_events table: %v", err)
		return nil
	}

	log.Println("Analytics module initialized successfully")
	return &AnalyticsModule{db: db}
}

// TrackVisit records a visit to the given page. Repeat hits from the same
// visitor within 30 minutes are not counted again, so refreshes do not
// inflate the numbers.
func (a *AnalyticsModule) TrackVisit(c *gin.Context, page string) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)

	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)
	var recentVisit PageEvent
	err := a.db.Where("cookie_id = ? AND page = ? AND created_at > ?",
		cookieID, page, thirtyMinutesAgo).First(&recentVisit).Error
	if err == nil {
		return
	}

	event := PageEvent{
		Page:      page,
		CookieID:  cookieID,
		Event:     "visit",
		IP:        a.getClientIP(c),
		Language:  a.extractLanguage(c),
		Browser:   a.extractBrowser(c.Request.UserAgent()),
		CreatedAt: time.Now(),
	}

	// Saved asynchronously so tracking never slows the page down.
	go func() {
		if err := a.db.Create(&event).Error; err != nil {
			log.Printf("Error saving analytics event: %v", err)
		}
	}()
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	cookieName := "folio_visitor_id"

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	cookieID := uuid.NewString()

	c.SetCookie(
		cookieName,
		cookieID,
		60*60*24*365*2, // 2 years
		"/",
		"",
		false, // secure - would be true behind HTTPS
		true,  // httpOnly
	)

	return cookieID
}

// getClientIP resolves the real client IP, looking through common proxy
// headers first.
func (a *AnalyticsModule) getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}

	return c.ClientIP()
}

// extractBrowser pulls a coarse browser name out of the User-Agent.
func (a *AnalyticsModule) extractBrowser(userAgent string) *string {
	if userAgent == "" {
		return nil
	}

	ua := strings.ToLower(userAgent)
	var browser string

	// Order matters - more specific browsers first
	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg"):
		browser = "Chrome"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	case strings.Contains(ua, "msie") || strings.Contains(ua, "trident"):
		browser = "Internet Explorer"
	default:
		browser = "Other"
	}

	return &browser
}

// extractLanguage takes the most preferred language from Accept-Language.
func (a *AnalyticsModule) extractLanguage(c *gin.Context) *string {
	acceptLang := c.GetHeader("Accept-Language")
	if acceptLang == "" {
		return nil
	}

	// Format: "en-US,en;q=0.9,pt-BR;q=0.8" - take the first entry
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(parts[0])
		lang = strings.Split(lang, ";")[0]
		return &lang
	}

	return nil
}

// DayVisits is the visit count for one calendar day.
type DayVisits struct {
	Date  string
	Count int64
}

// GetTotalVisits returns the all-time visit count for a page.
func (a *AnalyticsModule) GetTotalVisits(page string) int64 {
	if a == nil || a.db == nil {
		return 0
	}

	var count int64
	a.db.Model(&PageEvent{}).Where("page = ?", page).Count(&count)
	return count
}

// GetVisitsByDay returns per-day visit counts for the last N days, zero-filled
// so every day appears.
func (a *AnalyticsModule) GetVisitsByDay(page string, days int) []DayVisits {
	if a == nil || a.db == nil {
		return []DayVisits{}
	}

	startDate := time.Now().AddDate(0, 0, -days)

	var results []struct {
		Date  string
		Count int64
	}

	a.db.Model(&PageEvent{}).
		Select("DATE(created_at) as date, COUNT(*) as count").
		Where("page = ? AND created_at >= ?", page, startDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&results)

	dayVisits := make([]DayVisits, days)
	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - 1 - i))
		dayVisits[i] = DayVisits{
			Date:  date.Format("2006-01-02"),
			Count: 0,
		}
	}

	for _, result := range results {
		for i := range dayVisits {
			if dayVisits[i].Date == result.Date {
				dayVisits[i].Count = result.Count
				break
			}
		}
	}

	return dayVisits
}
