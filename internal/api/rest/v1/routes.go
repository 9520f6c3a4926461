package v1

import (
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/achievements"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/categories"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/contact"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/gallery"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/promises"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the version 1 routes depend on
type Services struct {
	Articles     news.ArticleService
	Events       events.EventService
	Albums       gallery.AlbumService
	Promises     promises.PromiseService
	Achievements achievements.AchievementService
	Categories   categories.CategoryService
	Testimonials testimonials.TestimonialService
	Questions    ama.QuestionService
	Complaints   complaints.ComplaintService
	Messages     contact.MessageService
	Volunteers   volunteers.VolunteerService
	Alerts       emergency.AlertService
	Products     store.ProductService
	Orders       store.OrderService
	Voters       voters.VoterService
	Challenges   challenges.ChallengeService
	Users        users.UserService
	Auth         users.AuthService
	Uploads      media.UploadService
	Media        media.MediaService
	SEO          seo.SEOService
	Dashboard    dashboard.DashboardService
	Ping         PingFunc
	// MaxChunkSize bounds a chunked upload request body before it is read
	MaxChunkSize int64
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *Services, authSettings *config.AuthSettings) {
	v1 := r.Group(BasePath) // lookup in version file

	newsHandler := NewNewsHandler(services.Articles)
	eventHandler := NewEventHandler(services.Events)
	galleryHandler := NewGalleryHandler(services.Albums)
	promiseHandler := NewPromiseHandler(services.Promises)
	achievementHandler := NewAchievementHandler(services.Achievements)
	categoryHandler := NewCategoryHandler(services.Categories)
	testimonialHandler := NewTestimonialHandler(services.Testimonials)
	amaHandler := NewAMAHandler(services.Questions)
	complaintHandler := NewComplaintHandler(services.Complaints)
	contactHandler := NewContactHandler(services.Messages)
	volunteerHandler := NewVolunteerHandler(services.Volunteers)
	emergencyHandler := NewEmergencyHandler(services.Alerts)
	productHandler := NewProductHandler(services.Products)
	orderHandler := NewOrderHandler(services.Orders)
	voterHandler := NewVoterHandler(services.Voters)
	challengeHandler := NewChallengeHandler(services.Challenges)
	userHandler := NewUserHandler(services.Users)
	authHandler := NewAuthHandler(services.Auth, authSettings)
	uploadHandler := NewUploadHandler(services.Uploads, services.MaxChunkSize)
	mediaHandler := NewMediaHandler(services.Media)
	seoHandler := NewSEOHandler(services.SEO)
	dashboardHandler := NewDashboardHandler(services.Dashboard)
	healthHandler := NewHealthHandler(services.Ping)

	// Public routes
	v1.GET("/health", healthHandler.Health)

	v1.GET("/news", newsHandler.ListPublished)
	v1.GET("/news/:slug", newsHandler.ViewBySlug)
	v1.GET("/events", eventHandler.ListPublished)
	v1.GET("/events/:slug", eventHandler.GetPublishedBySlug)
	v1.GET("/gallery", galleryHandler.ListPublished)
	v1.GET("/gallery/:slug", galleryHandler.GetPublishedBySlug)
	v1.GET("/promises", promiseHandler.List)
	v1.GET("/achievements", achievementHandler.ListPublished)
	v1.GET("/categories", categoryHandler.List)

	v1.GET("/testimonials", testimonialHandler.ListApproved)
	v1.POST("/testimonials", testimonialHandler.Submit)
	v1.GET("/ama", amaHandler.ListAnswered)
	v1.POST("/ama", amaHandler.Ask)
	v1.POST("/complaints", complaintHandler.Submit)
	v1.GET("/complaints/track/:trackingId", complaintHandler.Track)
	v1.POST("/contact", contactHandler.Submit)
	v1.POST("/volunteers", volunteerHandler.Register)
	v1.POST("/emergency/sos", emergencyHandler.Raise)

	v1.GET("/store/products", productHandler.ListActive)
	v1.GET("/store/products/:slug", productHandler.GetActiveBySlug)
	v1.POST("/store/orders", orderHandler.Place)

	v1.GET("/voters/search", voterHandler.Search)

	v1.GET("/challenges", challengeHandler.ListActive)
	v1.GET("/challenges/:slug", challengeHandler.GetPublicBySlug)
	v1.POST("/challenges/:slug/submissions", challengeHandler.Submit)

	v1.GET("/seo", seoHandler.Metadata)
	v1.GET("/sitemap.xml", seoHandler.Sitemap)

	// Auth Routes
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me)

	// Upload Routes
	uploads := v1.Group("/uploads/:purpose", UploadAccess(services.Auth, authSettings.CookieName))
	uploads.POST("", uploadHandler.Upload)
	uploads.POST("/chunks", uploadHandler.UploadChunk)
	uploads.GET("/chunks/:uploadId", uploadHandler.ChunkStatus)
	uploads.DELETE("/chunks/:uploadId", uploadHandler.AbortChunks)
	uploads.POST("/multipart", uploadHandler.InitMultipart)
	uploads.POST("/multipart/presign", uploadHandler.PresignParts)
	uploads.GET("/multipart/parts", uploadHandler.ListParts)
	uploads.POST("/multipart/complete", uploadHandler.CompleteMultipart)
	uploads.POST("/multipart/abort", uploadHandler.AbortMultipart)

	// Admin Routes
	admin := v1.Group("/admin", RequireSession(services.Auth, authSettings.CookieName))

	editors := admin.Group("", RequireRole(users.RoleAdmin, users.RoleEditor))
	editors.GET("/news", newsHandler.List)
	editors.POST("/news", newsHandler.Create)
	editors.GET("/news/:id", newsHandler.GetByID)
	editors.PUT("/news/:id", newsHandler.Update)
	editors.DELETE("/news/:id", newsHandler.DeleteByID)

	editors.GET("/events", eventHandler.List)
	editors.POST("/events", eventHandler.Create)
	editors.GET("/events/:id", eventHandler.GetByID)
	editors.PUT("/events/:id", eventHandler.Update)
	editors.DELETE("/events/:id", eventHandler.DeleteByID)

	editors.GET("/albums", galleryHandler.List)
	editors.POST("/albums", galleryHandler.Create)
	editors.GET("/albums/:id", galleryHandler.GetByID)
	editors.PUT("/albums/:id", galleryHandler.Update)
	editors.DELETE("/albums/:id", galleryHandler.DeleteByID)
	editors.POST("/albums/:id/photos", galleryHandler.AddPhoto)
	editors.DELETE("/albums/:id/photos/:photoId", galleryHandler.DeletePhoto)

	editors.GET("/promises", promiseHandler.List)
	editors.POST("/promises", promiseHandler.Create)
	editors.GET("/promises/:id", promiseHandler.GetByID)
	editors.PUT("/promises/:id", promiseHandler.Update)
	editors.DELETE("/promises/:id", promiseHandler.DeleteByID)

	editors.GET("/achievements", achievementHandler.List)
	editors.POST("/achievements", achievementHandler.Create)
	editors.GET("/achievements/:id", achievementHandler.GetByID)
	editors.PUT("/achievements/:id", achievementHandler.Update)
	editors.DELETE("/achievements/:id", achievementHandler.DeleteByID)

	editors.GET("/categories", categoryHandler.List)
	editors.POST("/categories", categoryHandler.Create)
	editors.GET("/categories/:id", categoryHandler.GetByID)
	editors.PUT("/categories/:id", categoryHandler.Update)
	editors.DELETE("/categories/:id", categoryHandler.DeleteByID)

	editors.GET("/challenges", challengeHandler.List)
	editors.POST("/challenges", challengeHandler.Create)
	editors.GET("/challenges/:id", challengeHandler.GetByID)
	editors.PUT("/challenges/:id", challengeHandler.Update)
	editors.DELETE("/challenges/:id", challengeHandler.DeleteByID)

	editors.GET("/products", productHandler.List)
	editors.POST("/products", productHandler.Create)
	editors.GET("/products/:id", productHandler.GetByID)
	editors.PUT("/products/:id", productHandler.Update)
	editors.DELETE("/products/:id", productHandler.DeleteByID)

	editors.GET("/media", mediaHandler.List)
	editors.GET("/media/:id", mediaHandler.GetByID)
	editors.DELETE("/media/:id", mediaHandler.DeleteByID)

	moderators := admin.Group("", RequireRole(users.RoleAdmin, users.RoleModerator))
	moderators.GET("/testimonials", testimonialHandler.List)
	moderators.PATCH("/testimonials/:id/status", testimonialHandler.SetStatus)
	moderators.DELETE("/testimonials/:id", testimonialHandler.DeleteByID)

	moderators.GET("/ama", amaHandler.List)
	moderators.POST("/ama/:id/answer", amaHandler.Answer)
	moderators.POST("/ama/:id/reject", amaHandler.Reject)
	moderators.DELETE("/ama/:id", amaHandler.DeleteByID)

	moderators.GET("/complaints", complaintHandler.List)
	moderators.GET("/complaints/:id", complaintHandler.GetByID)
	moderators.PATCH("/complaints/:id/status", complaintHandler.UpdateStatus)

	moderators.GET("/contact", contactHandler.List)
	moderators.PATCH("/contact/:id/status", contactHandler.SetStatus)
	moderators.DELETE("/contact/:id", contactHandler.DeleteByID)

	moderators.GET("/volunteers", volunteerHandler.List)
	moderators.PATCH("/volunteers/:id/status", volunteerHandler.SetStatus)
	moderators.DELETE("/volunteers/:id", volunteerHandler.DeleteByID)

	moderators.GET("/emergency", emergencyHandler.List)
	moderators.PATCH("/emergency/:id/status", emergencyHandler.UpdateStatus)

	moderators.GET("/challenge-submissions", challengeHandler.ListSubmissions)
	moderators.PATCH("/challenge-submissions/:id/status", challengeHandler.SetSubmissionStatus)

	admins := admin.Group("", RequireRole(users.RoleAdmin))
	admins.GET("/users", userHandler.List)
	admins.POST("/users", userHandler.Create)
	admins.GET("/users/:id", userHandler.GetByID)
	admins.PATCH("/users/:id", userHandler.Update)
	admins.DELETE("/users/:id", userHandler.DeleteByID)

	admins.GET("/voters", voterHandler.List)
	admins.POST("/voters", voterHandler.Create)
	admins.POST("/voters/import", voterHandler.Import)
	admins.GET("/voters/:id", voterHandler.GetByID)
	admins.PUT("/voters/:id", voterHandler.Update)
	admins.DELETE("/voters/:id", voterHandler.DeleteByID)

	admins.GET("/orders", orderHandler.List)
	admins.GET("/orders/:id", orderHandler.GetByID)
	admins.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	admins.GET("/dashboard", dashboardHandler.Stats)
}
