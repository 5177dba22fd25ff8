package core

import (
	"fmt"
	"net/http"
	"time"

	"api/internal/handlers"
	h "api/internal/helpers"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOwnerUser seeds (or re-keys) the clinic owner account. The owner is
// always an administrator and cannot be deleted through the API.
func CreateOwnerUser(db *gorm.DB, config models.Configuration) {
	hash, _ := h.CreateHash(config.App.OwnerPassword)
	owner := models.User{
		Name:           "Owner",
		Username:       config.App.OwnerUsername,
		HashedPassword: hash,
		IsAdmin:        true,
		IsOwner:        true,
	}

	db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"hashed_password", "is_admin", "is_owner"}),
	}).Create(&owner)
}

func StartHTTPServer(config models.Configuration, db *gorm.DB) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	location := time.Local

	authService := services.AuthService{DB: db, AppConfig: config.App}
	accountService := services.AccountService{DB: db}
	userService := services.UserService{DB: db}
	promptService := services.PromptService{DB: db, Generation: config.Generation}
	dashboardService := services.DashboardService{DB: db, Location: location}
	exportService := services.ExportService{DB: db, Location: location}
	imageService := services.ImageService{AppConfig: config.App}
	linkService := services.LinkService{DB: db, AppConfig: config.App, Linking: config.Linking}
	intakeService := services.IntakeService{DB: db}

	doctors := services.NewDoctorCatalog(db)
	serviceCatalog := services.NewServiceCatalog(db)
	aspects := services.NewAspectCatalog(db)
	sources := services.NewSourceCatalog(db)
	rewards := services.NewRewardCatalog(db)
	platforms := services.NewPlatformCatalog(db)
	reasons := services.NewReasonCatalog(db)
	news := services.NewNewsCatalog(db)

	r.Route("/api", func(api chi.Router) {
		api.Use(m.Authenticate(config.App.JWTSecret))

		api.With(m.LoginRateLimit(config.App.LoginRatePerMin), m.Validate[models.LoginBody]).
			Post("/login", handlers.CreateHandler(authService.Login))

		api.Get("/user", handlers.GetOneHandler(accountService.Current))
		api.With(m.Validate[models.ProfileBody]).
			Post("/user/update", handlers.CreateHandler(accountService.Update))
		api.With(m.Validate[models.PasswordResetBody]).
			Post("/password/reset", handlers.CreateHandler(accountService.ResetPassword))

		api.Mount("/doctors", doctors.Routes())
		api.Mount("/services", serviceCatalog.Routes())
		api.Mount("/aspects", aspects.Routes())
		api.Mount("/sources", sources.Routes())
		api.Mount("/rewards", rewards.Routes())
		api.Mount("/platforms", platforms.Routes())
		api.Mount("/reasons", reasons.Routes())
		api.Mount("/news", news.Routes())

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(m.AuthorizeAdmin)
			admin.Mount("/users", userService.Routes())
			admin.Mount("/prompts", promptService.Routes())
			admin.Mount("/doctors", doctors.AdminRoutes())
			admin.Mount("/services", serviceCatalog.AdminRoutes())
			admin.Mount("/aspects", aspects.AdminRoutes())
			admin.Mount("/sources", sources.AdminRoutes())
			admin.Mount("/rewards", rewards.AdminRoutes())
			admin.Mount("/platforms", platforms.AdminRoutes())
			admin.Mount("/reasons", reasons.AdminRoutes())
			admin.Mount("/news", news.AdminRoutes())
		})

		api.Get("/dashboard", handlers.RawHandler(dashboardService.Fetch))
		api.Get("/export/reviews", handlers.FileHandler(exportService.Reviews))
		api.Get("/export/complaints", handlers.FileHandler(exportService.Complaints))

		api.Post("/images/upload", handlers.RawHandler(imageService.Upload))

		api.Get("/telegram/link", handlers.GetOneHandler(linkService.TelegramLink))
		api.Post("/telegram/unlink", handlers.GetOneHandler(linkService.TelegramUnlink))
		api.Get("/max/link", handlers.GetOneHandler(linkService.MaxLink))
		api.Post("/max/unlink", handlers.GetOneHandler(linkService.MaxUnlink))

		api.Route("/public", func(public chi.Router) {
			public.Get("/catalog", handlers.GetOneHandler(intakeService.Catalog))
			public.With(m.Validate[models.ReviewBody]).
				Post("/reviews", handlers.CreateHandler(intakeService.CreateReview))
			public.With(m.Validate[models.ComplaintBody]).
				Post("/complaints", handlers.CreateHandler(intakeService.CreateComplaint))
		})
	})

	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.App.UploadsDirectory)))
	r.Handle("/uploads/*", uploads)

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
