package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joychandrauday/anycomp-backend/internal/config"
	"github.com/joychandrauday/anycomp-backend/internal/database"
	"github.com/joychandrauday/anycomp-backend/internal/middleware"
	"github.com/joychandrauday/anycomp-backend/internal/modules/auth"
	"github.com/joychandrauday/anycomp-backend/internal/modules/catalog"
	"github.com/joychandrauday/anycomp-backend/internal/modules/company"
	"github.com/joychandrauday/anycomp-backend/internal/modules/media"
	"github.com/joychandrauday/anycomp-backend/internal/modules/platformfee"
	"github.com/joychandrauday/anycomp-backend/internal/modules/secretary"
	"github.com/joychandrauday/anycomp-backend/internal/modules/specialist"
	"github.com/joychandrauday/anycomp-backend/internal/modules/user"
	jwtsvc "github.com/joychandrauday/anycomp-backend/internal/pkg/jwt"
	"github.com/joychandrauday/anycomp-backend/internal/repository"
	"github.com/joychandrauday/anycomp-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := storage.NewLocal(cfg.UploadsDir, cfg.StaticBase)

	userRepo := repository.NewUserRepository(db)
	specialistRepo := repository.NewSpecialistRepository(db)
	secretaryRepo := repository.NewSecretaryRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	feeRepo := repository.NewPlatformFeeRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, tokens, cfg.ResetTTL)
	authHandler := auth.NewHandler(
		authService,
		cfg.CookiePath,
		cfg.CookieSecure,
		int(cfg.RefreshTTL.Seconds()),
		!cfg.IsProduction(),
	)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	specialistService := specialist.NewService(specialistRepo, feeRepo)
	specialistHandler := specialist.NewHandler(specialistService)

	secretaryService := secretary.NewService(secretaryRepo, companyRepo, specialistRepo, userRepo, store)
	secretaryHandler := secretary.NewHandler(secretaryService)

	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companyService)

	mediaService := media.NewService(mediaRepo, specialistRepo, store)
	mediaHandler := media.NewHandler(mediaService)

	catalogService := catalog.NewService(catalogRepo, specialistRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	feeService := platformfee.NewService(feeRepo)
	feeHandler := platformfee.NewHandler(feeService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/")
		public.Use(middleware.OptionalAuth(tokens))
		{
			authHandler.RegisterPublicRoutes(public)
			specialistHandler.RegisterPublicRoutes(public)
			mediaHandler.RegisterPublicRoutes(public)
			catalogHandler.RegisterPublicRoutes(public)
			feeHandler.RegisterPublicRoutes(public)
		}

		protected := v1.Group("/")
		protected.Use(middleware.Auth(tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			specialistHandler.RegisterProtectedRoutes(protected)
			secretaryHandler.RegisterProtectedRoutes(protected)
			companyHandler.RegisterProtectedRoutes(protected)
			mediaHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			feeHandler.RegisterProtectedRoutes(protected)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
