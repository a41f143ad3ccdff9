package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"folio/admin"
	"folio/analytics"
	"folio/auth"
	"folio/cache"
	"folio/common"
	"folio/database"
	"folio/email"
	"folio/mirror"
	"folio/models"
	"folio/site"
	"folio/store"
)

// logNotifier reports store mutations to the server log.
type logNotifier struct{}

func (logNotifier) Success(message string) {
	log.Println(message)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	kv := store.NewGormKV(db)
	portfolioStore := store.NewPortfolioStore(kv)
	portfolioStore.SetNotifier(logNotifier{})

	analyticsModule := analytics.NewAnalyticsModule(common.ConnectAnalyticsDb())

	var delivery auth.CodeDelivery = auth.LogDelivery{}
	if mailer := email.NewService(); mailer.Configured() {
		delivery = mailer
	}
	codes := auth.NewCodeService(delivery)
	codes.StartSweeper()
	defer codes.Close()

	authorizedEmail := os.Getenv("ADMIN_EMAIL")
	if authorizedEmail == "" {
		authorizedEmail = "admin@example.com"
	}
	authService := auth.NewService(kv, codes, authorizedEmail)

	pusher := mirror.NewPusher(os.Getenv("MIRROR_URL"))
	portfolioStore.OnChange(func(data models.PortfolioData) {
		if err := cache.ClearAll(); err != nil {
			log.Printf("Failed to clear page cache: %v", err)
		}
		pusher.Push(data)
	})

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	sessionStore := cookie.NewStore([]byte(sessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("folio-session", sessionStore))
	router.Use(cache.Middleware(10 * time.Minute))

	router.SetFuncMap(map[string]interface{}{
		"now": func() time.Time {
			return time.Now()
		},
		"domain": func() string {
			d := os.Getenv("DOMAIN")
			if d == "" {
				return "http://localhost:8080"
			}
			return d
		},
	})

	router.LoadHTMLGlob("*/views/*.html")

	router.Static("/public", "./public")

	siteModule := site.NewSiteModule(portfolioStore, analyticsModule)
	siteModule.RegisterRoutes(router)

	adminModule := admin.NewAdminModule(portfolioStore, authService, analyticsModule)
	adminModule.RegisterRoutes(router)

	mirrorModule := mirror.NewModule(kv)
	mirrorModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
