package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/johnsonDevMent/trustmebro/internal/handler"
	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Paper   *handler.PaperHandler
	Share   *handler.ShareHandler
	Gallery *handler.GalleryHandler
	Vote    *handler.VoteHandler
	Report  *handler.ReportHandler
	Auth    *handler.AuthHandler
	Admin   *handler.AdminHandler
	Health  *handler.HealthHandler
	SEO     *handler.SEOHandler
}

// Config carries the router's middleware dependencies.
type Config struct {
	CORSOrigins   string
	SecureCookies bool
	Users         *repository.UserRepo
}

// Setup configures the middleware stack and all routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, cfg Config) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(cfg.CORSOrigins))
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewSession(cfg.SecureCookies))
	app.Use(middleware.LoadUser(cfg.Users))

	generateLimit := middleware.NewGenerateRateLimiter()
	voteLimit := middleware.NewVoteRateLimiter()
	loginLimit := middleware.NewLoginRateLimiter()
	signupLimit := middleware.NewSignupRateLimiter()

	// Papers
	app.Post("/generate", h.Paper.Generate, generateLimit.Handler())
	app.Get("/paper/:paperId", h.Paper.Get)

	// Share links
	app.Post("/create_share/:paperId", h.Share.Create)
	app.Get("/share/:token", h.Share.View)

	// Gallery
	app.Get("/gallery", h.Gallery.List)
	app.Get("/g/:postId", h.Gallery.GetPost)
	app.Post("/publish/:paperId", h.Gallery.Publish, middleware.RequireLogin())

	// Votes and reports
	app.Post("/vote/:postId", h.Vote.Submit, middleware.RequireLogin(), voteLimit.Handler())
	app.Post("/report/:postId", h.Report.Submit)

	// Auth
	app.Post("/signup", h.Auth.Signup, signupLimit.Handler())
	app.Post("/login", h.Auth.Login, loginLimit.Handler())
	app.Post("/logout", h.Auth.Logout)
	app.Post("/save_groq_key", h.Auth.SaveGroqKey)
	app.Post("/setup-admin", h.Auth.SetupAdmin)

	// Admin
	app.Get("/admin", h.Admin.Dashboard, middleware.RequireAdmin())
	app.Post("/admin/action", h.Admin.Action, middleware.RequireAdmin())

	// Ops
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// SEO surface
	app.Get("/robots.txt", h.SEO.Robots)
	app.Get("/sitemap.xml", h.SEO.Sitemap)
	app.Get("/manifest.json", h.SEO.Manifest)
}
