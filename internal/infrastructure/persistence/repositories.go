package persistence

import (
	"fmt"

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
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
)

// Repositories is every GORM repository sharing one connection
type Repositories struct {
	News         news.ArticleRepository
	Events       events.EventRepository
	Albums       gallery.AlbumRepository
	Promises     promises.PromiseRepository
	Achievements achievements.AchievementRepository
	Categories   categories.CategoryRepository
	Testimonials testimonials.TestimonialRepository
	Questions    ama.QuestionRepository
	Complaints   complaints.ComplaintRepository
	Messages     contact.MessageRepository
	Volunteers   volunteers.VolunteerRepository
	Alerts       emergency.AlertRepository
	Products     store.ProductRepository
	Orders       store.OrderRepository
	Transactor   store.Transactor
	Voters       voters.VoterRepository
	Challenges   challenges.ChallengeRepository
	Users        users.UserRepository
	Media        media.MediaRepository
	Sitemap      seo.SitemapRepository
	Stats        dashboard.StatsRepository
}

// NewRepositories builds every repository on db
func NewRepositories(db *gorm.DB, log logger.Logger) (*Repositories, error) {
	var (
		r   Repositories
		err error
	)

	if r.News, err = NewGormNewsRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create news repository: %w", err)
	}
	if r.Events, err = NewGormEventRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create event repository: %w", err)
	}
	if r.Albums, err = NewGormAlbumRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create album repository: %w", err)
	}
	if r.Promises, err = NewGormPromiseRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create promise repository: %w", err)
	}
	if r.Achievements, err = NewGormAchievementRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create achievement repository: %w", err)
	}
	if r.Categories, err = NewGormCategoryRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create category repository: %w", err)
	}
	if r.Testimonials, err = NewGormTestimonialRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial repository: %w", err)
	}
	if r.Questions, err = NewGormQuestionRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create question repository: %w", err)
	}
	if r.Complaints, err = NewGormComplaintRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create complaint repository: %w", err)
	}
	if r.Messages, err = NewGormMessageRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create message repository: %w", err)
	}
	if r.Volunteers, err = NewGormVolunteerRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create volunteer repository: %w", err)
	}
	if r.Alerts, err = NewGormAlertRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create alert repository: %w", err)
	}
	if r.Products, err = NewGormProductRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	if r.Orders, err = NewGormOrderRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	if r.Transactor, err = NewGormTransactor(db, log); err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	if r.Voters, err = NewGormVoterRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create voter repository: %w", err)
	}
	if r.Challenges, err = NewGormChallengeRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create challenge repository: %w", err)
	}
	if r.Users, err = NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if r.Media, err = NewGormMediaRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create media repository: %w", err)
	}
	if r.Sitemap, err = NewGormSitemapRepository(db); err != nil {
		return nil, fmt.Errorf("failed to create sitemap repository: %w", err)
	}
	if r.Stats, err = NewGormStatsRepository(db); err != nil {
		return nil, fmt.Errorf("failed to create stats repository: %w", err)
	}

	return &r, nil
}
