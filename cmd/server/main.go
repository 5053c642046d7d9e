package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/johnsonDevMent/trustmebro/internal/config"
	"github.com/johnsonDevMent/trustmebro/internal/db"
	"github.com/johnsonDevMent/trustmebro/internal/generator"
	"github.com/johnsonDevMent/trustmebro/internal/handler"
	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
	"github.com/johnsonDevMent/trustmebro/internal/router"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "trustmebro")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer conn.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(conn)

	// Repositories
	users := repository.NewUserRepo(conn)
	papers := repository.NewPaperRepo(conn)
	gallery := repository.NewGalleryRepo(conn)
	reports := repository.NewReportRepo(conn)
	shares := repository.NewShareRepo(conn)
	keywords := repository.NewKeywordRepo(conn)
	audit := repository.NewModerationRepo(conn)

	// Services
	gen := generator.New(middleware.Logger)
	paperSvc := service.NewPaperService(papers, keywords, gallery, gen)
	gallerySvc := service.NewGalleryService(gallery, papers, users, cache)
	voteSvc := service.NewVoteService(gallery, cache)
	reportSvc := service.NewReportService(reports, gallery, cache)
	shareSvc := service.NewShareService(shares, papers)
	authSvc := service.NewAuthService(users)
	adminSvc := service.NewAdminService(gallery, reports, keywords, users, audit, cache)

	janitor := service.NewShareJanitor(shares, time.Hour)
	go janitor.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "TRUSTMEBRO API",
		ServerHeader: "TRUSTMEBRO",
	})

	router.Setup(app, &router.Handlers{
		Paper:   handler.NewPaperHandler(paperSvc),
		Share:   handler.NewShareHandler(shareSvc),
		Gallery: handler.NewGalleryHandler(gallerySvc),
		Vote:    handler.NewVoteHandler(voteSvc),
		Report:  handler.NewReportHandler(reportSvc),
		Auth:    handler.NewAuthHandler(authSvc, cfg.AdminSetupToken),
		Admin:   handler.NewAdminHandler(adminSvc),
		Health:  handler.NewHealthHandler(conn, cache.Client()),
		SEO:     handler.NewSEOHandler(gallery),
	}, router.Config{
		CORSOrigins:   cfg.CORSOrigins,
		SecureCookies: cfg.Production(),
		Users:         users,
	})

	go func() {
		log.Printf("TRUSTMEBRO backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
