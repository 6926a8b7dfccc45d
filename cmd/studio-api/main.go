package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/sayberrygames/studio-api/internal/authz"
	"github.com/sayberrygames/studio-api/internal/config"
	"github.com/sayberrygames/studio-api/internal/database"
	"github.com/sayberrygames/studio-api/internal/handlers"
	authmw "github.com/sayberrygames/studio-api/internal/middleware"
	"github.com/sayberrygames/studio-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	postService := services.NewPostService(db)
	teamService := services.NewTeamService(db)
	projectService := services.NewProjectService(db)
	wikiService := services.NewWikiService(db)
	emailService := services.NewEmailService(cfg.SMTP)

	pageGate := authz.NewPageGate(teamService, wikiService)

	authHandler := handlers.NewAuthHandler(cfg, userService, tokenService, jwtService, emailService)
	userHandler := handlers.NewUserHandler(cfg, userService)
	postHandler := handlers.NewPostHandler(cfg, postService, userService)
	teamHandler := handlers.NewTeamHandler(cfg, teamService, userService)
	projectHandler := handlers.NewProjectHandler(cfg, projectService, userService)
	wikiHandler := handlers.NewWikiHandler(cfg, wikiService, userService, pageGate)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/password-reset", authHandler.RequestPasswordReset)
	auth.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)

	// Public and optionally-authenticated reads. A valid token upgrades the
	// response (drafts, hidden wiki pages, edit flags); a missing one does
	// not block it.
	public := api.Group("")
	public.Use(authmw.OptionalAuth(jwtService))

	public.Get("/posts/:kind", postHandler.List)
	public.Get("/posts/:kind/:slug", postHandler.GetBySlug)
	public.Get("/team", teamHandler.List)
	public.Get("/team/:id/projects", teamHandler.GetAssignments)
	public.Get("/projects", projectHandler.List)
	public.Get("/projects/:slug", projectHandler.GetBySlug)
	public.Get("/wiki", wikiHandler.Tree)
	public.Get("/wiki/:slug", wikiHandler.GetBySlug)
	public.Get("/wiki/:slug/history", wikiHandler.History)


	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/users/me", userHandler.GetMe)
	protected.Patch("/users/me", userHandler.UpdateMe)
	protected.Get("/users", userHandler.List)
	protected.Patch("/users/:id/role", userHandler.UpdateRole)

	protected.Post("/posts/:kind", postHandler.Create)
	protected.Patch("/posts/:kind/:id", postHandler.Update)
	protected.Delete("/posts/:kind/:id", postHandler.Delete)

	protected.Post("/team", teamHandler.Create)
	protected.Patch("/team/:id", teamHandler.Update)
	protected.Delete("/team/:id", teamHandler.Delete)
	protected.Post("/team/:id/projects", teamHandler.AssignProject)
	protected.Delete("/team/:id/projects/:projectId", teamHandler.UnassignProject)

	protected.Post("/projects", projectHandler.Create)
	protected.Patch("/projects/:id", projectHandler.Update)
	protected.Delete("/projects/:id", projectHandler.Delete)

	protected.Post("/wiki", wikiHandler.Create)
	protected.Patch("/wiki/:id", wikiHandler.Update)
	protected.Delete("/wiki/:id", wikiHandler.Delete)
	protected.Post("/wiki/:id/permissions", wikiHandler.Grant)
	protected.Delete("/wiki/:id/permissions/:userId", wikiHandler.Revoke)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
