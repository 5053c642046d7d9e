package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

const sitemapPostLimit = 1000

type SEOHandler struct {
	gallery *repository.GalleryRepo
}

func NewSEOHandler(gallery *repository.GalleryRepo) *SEOHandler {
	return &SEOHandler{gallery: gallery}
}

// Robots handles GET /robots.txt
func (h *SEOHandler) Robots(c fiber.Ctx) error {
	body := fmt.Sprintf(`User-agent: *
Allow: /
Allow: /gallery
Allow: /policy

Disallow: /admin
Disallow: /setup-admin
Disallow: /logout

Sitemap: %s/sitemap.xml
`, baseURL(c))
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(body)
}

// Sitemap handles GET /sitemap.xml — static pages plus visible gallery posts.
func (h *SEOHandler) Sitemap(c fiber.Ctx) error {
	base := baseURL(c)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	staticPages := []struct {
		path     string
		priority string
		freq     string
	}{
		{"/", "1.0", "daily"},
		{"/gallery", "0.9", "hourly"},
		{"/policy", "0.5", "monthly"},
	}
	for _, p := range staticPages {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s%s</loc>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			base, p.path, p.freq, p.priority)
	}

	posts, err := h.gallery.ListVisibleForSitemap(c.Context(), sitemapPostLimit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build sitemap")
	}
	for _, post := range posts {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s/g/%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>weekly</changefreq>\n    <priority>0.7</priority>\n  </url>\n",
			base, post.PostID, post.CreatedAt.Format("2006-01-02"))
	}

	b.WriteString("</urlset>\n")
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(b.String())
}

// Manifest handles GET /manifest.json — PWA manifest.
func (h *SEOHandler) Manifest(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":             "TRUSTMEBRO - Journal of Unverified Claims",
		"short_name":       "TRUSTMEBRO",
		"description":      "Generate hilarious parody academic papers for any ridiculous claim",
		"start_url":        "/",
		"display":          "standalone",
		"background_color": "#FAF8F5",
		"theme_color":      "#C85A28",
		"icons": []fiber.Map{
			{"src": "/static/icon-192.png", "sizes": "192x192", "type": "image/png"},
			{"src": "/static/icon-512.png", "sizes": "512x512", "type": "image/png"},
		},
	})
}

func baseURL(c fiber.Ctx) string {
	return c.Scheme() + "://" + c.Host()
}
