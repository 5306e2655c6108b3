package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadgenius/internal/config"
	"github.com/xavierca1/leadgenius/internal/infra/database"
	"github.com/xavierca1/leadgenius/internal/infra/http/handlers"
	"github.com/xavierca1/leadgenius/internal/infra/http/middleware"
	"github.com/xavierca1/leadgenius/internal/infra/integration/gemini"
	"github.com/xavierca1/leadgenius/internal/infra/integration/places"
	"github.com/xavierca1/leadgenius/internal/infra/integration/sendgrid"
	"github.com/xavierca1/leadgenius/internal/infra/mail"
	"github.com/xavierca1/leadgenius/internal/infra/scrape"
	"github.com/xavierca1/leadgenius/internal/usecase"
)

func main() {
	cfg := config.Load()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(cfg.LeadsFile)
	sendLogRepo := database.NewSendLogRepository(cfg.SendLogFile)

	// 2. Integrations. A missing credential disables the component; the
	// rest of the app keeps working.
	var directory usecase.PlacesDirectory
	if cfg.GeneratorEnabled() {
		directory = places.NewClient(cfg.PlacesAPIKey)
	} else {
		log.Println("PLACES_API_KEY not set: lead generation disabled")
	}

	var generator usecase.OutreachGenerator
	if cfg.ComposerEnabled() {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal(err)
		}
		defer client.Close()
		generator = client
	} else {
		log.Println("GEMINI_API_KEY not set: outreach composition disabled")
	}

	var emailGateway usecase.EmailGateway
	switch {
	case cfg.SendGridAPIKey != "":
		emailGateway = sendgrid.NewClient(cfg.SendGridAPIKey)
	case cfg.MailHost != "":
		emailGateway = mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	default:
		log.Println("no email credentials set: dispatch disabled")
	}

	scraper := scrape.NewScraper(cfg.ScrapeDelay, cfg.ScrapeTimeout)

	// 3. UseCases
	generateUC := usecase.NewGenerateLeadsUseCase(leadRepo, directory, scraper)
	composeUC := usecase.NewComposeOutreachUseCase(generator)
	dispatchUC := usecase.NewDispatchEmailUseCase(leadRepo, sendLogRepo, emailGateway, cfg.FromAddress, cfg.FromName)

	// 4. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo)
	generateHandler := handlers.NewGenerateHandler(generateUC)
	outreachHandler := handlers.NewOutreachHandler(composeUC, leadRepo)
	dispatchHandler := handlers.NewDispatchHandler(dispatchUC, sendLogRepo)
	healthHandler := handlers.NewHealthHandler(cfg)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Delete("/leads", leadHandler.Clear)
	r.Get("/leads/export", leadHandler.ExportCSV)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	r.Post("/leads/generate", generateHandler.Generate)

	r.Post("/leads/{id}/outreach", outreachHandler.Compose)
	r.Post("/outreach/batch", outreachHandler.ComposeBatch)
	r.Post("/outreach/save", outreachHandler.SaveDrafts)

	r.Post("/leads/{id}/send", dispatchHandler.Send)
	r.Post("/leads/{id}/reject", dispatchHandler.Reject)
	r.Post("/linkedin-message", dispatchHandler.LinkedInMessage)
	r.Get("/sendlog", dispatchHandler.SendLog)

	port := ":" + cfg.Port
	log.Printf("LeadGenius API listening on %s", port)
	http.ListenAndServe(port, r)
}
