// cmd/campaign-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/sabbir073/Complete-Political-website-sub006/internal/api/rest/v1"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/app"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/sms"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/chunkstore"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/objectstore"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/smsgateway"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx := context.Background()
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	chunks   *chunkstore.Tracker
	services *v1.Services
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	objectStore, err := objectstore.NewS3Connector(ctx, &cfg.ObjectStorage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create object store connector: %w", err)
	}

	sender, err := smsgateway.NewSender(&cfg.SMS, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sms sender: %w", err)
	}

	chunks := chunkstore.NewTracker(cfg.Upload.ChunkTTL, log)

	services, err := initializeApplicationServices(cfg, repos, objectStore, chunks, sender, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	services.Ping = sqlDB.PingContext
	services.MaxChunkSize = cfg.Upload.MaxChunkSize

	return &appDependencies{
		db:       db,
		chunks:   chunks,
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r, deps.services, &cfg.Auth)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Expired chunked uploads are swept until shutdown
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go deps.chunks.Run(sweepCtx, cfg.Upload.SweepInterval)

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	stopSweeper()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *persistence.Repositories,
	objectStore media.ObjectStore,
	chunks media.ChunkStore,
	sender sms.Sender,
	log logger.Logger,
) (*v1.Services, error) {
	var (
		s   v1.Services
		err error
	)

	if s.Articles, err = app.NewNewsService(repos.News, log); err != nil {
		return nil, fmt.Errorf("failed to create news service: %w", err)
	}
	if s.Events, err = app.NewEventService(repos.Events, log); err != nil {
		return nil, fmt.Errorf("failed to create event service: %w", err)
	}
	if s.Albums, err = app.NewAlbumService(repos.Albums, log); err != nil {
		return nil, fmt.Errorf("failed to create album service: %w", err)
	}
	if s.Promises, err = app.NewPromiseService(repos.Promises, log); err != nil {
		return nil, fmt.Errorf("failed to create promise service: %w", err)
	}
	if s.Achievements, err = app.NewAchievementService(repos.Achievements, log); err != nil {
		return nil, fmt.Errorf("failed to create achievement service: %w", err)
	}
	if s.Categories, err = app.NewCategoryService(repos.Categories, log); err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	if s.Testimonials, err = app.NewTestimonialService(repos.Testimonials, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial service: %w", err)
	}
	if s.Questions, err = app.NewQuestionService(repos.Questions, log); err != nil {
		return nil, fmt.Errorf("failed to create question service: %w", err)
	}
	if s.Complaints, err = app.NewComplaintService(repos.Complaints, sender, log); err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %w", err)
	}
	if s.Messages, err = app.NewMessageService(repos.Messages, log); err != nil {
		return nil, fmt.Errorf("failed to create message service: %w", err)
	}
	if s.Volunteers, err = app.NewVolunteerService(repos.Volunteers, log); err != nil {
		return nil, fmt.Errorf("failed to create volunteer service: %w", err)
	}
	if s.Alerts, err = app.NewAlertService(repos.Alerts, sender, cfg.SMS.EmergencyContacts, log); err != nil {
		return nil, fmt.Errorf("failed to create alert service: %w", err)
	}
	if s.Products, err = app.NewProductService(repos.Products, log); err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	if s.Orders, err = app.NewOrderService(repos.Orders, repos.Transactor, log); err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	if s.Voters, err = app.NewVoterService(repos.Voters, log); err != nil {
		return nil, fmt.Errorf("failed to create voter service: %w", err)
	}
	if s.Challenges, err = app.NewChallengeService(repos.Challenges, log); err != nil {
		return nil, fmt.Errorf("failed to create challenge service: %w", err)
	}
	if s.Users, err = app.NewUserService(repos.Users, log); err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	if s.Auth, err = app.NewAuthService(repos.Users, &cfg.Auth, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if s.Uploads, err = app.NewUploadService(objectStore, chunks, repos.Media, &cfg.Upload, log); err != nil {
		return nil, fmt.Errorf("failed to create upload service: %w", err)
	}
	if s.Media, err = app.NewMediaService(repos.Media, objectStore, log); err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}
	s.SEO, err = app.NewSEOService(&cfg.Site, app.DefaultStaticPages(), app.SEOSources{
		News:       repos.News,
		Events:     repos.Events,
		Albums:     repos.Albums,
		Products:   repos.Products,
		Challenges: repos.Challenges,
		Sitemap:    repos.Sitemap,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create seo service: %w", err)
	}
	if s.Dashboard, err = app.NewDashboardService(repos.Stats, log); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &s, nil
}
