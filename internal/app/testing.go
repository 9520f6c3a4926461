//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/challenges"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/emergency"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/events"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/testimonials"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/volunteers"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/persistence"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/config"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestEmergencyContact receives every SOS in integration tests
const TestEmergencyContact = "01711000000"

// SentSMS is a message captured by RecordingSender
type SentSMS struct {
	To      string
	Message string
}

// RecordingSender is an sms.Sender that keeps every message instead of sending it
type RecordingSender struct {
	mu   sync.Mutex
	sent []SentSMS
	// Err is returned from every Send after the message is recorded.
	Err error
}

// Send records the message
func (r *RecordingSender) Send(ctx context.Context, to, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, SentSMS{To: to, Message: message})
	return r.Err
}

// Messages returns a copy of the recorded messages
func (r *RecordingSender) Messages() []SentSMS {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]SentSMS(nil), r.sent...)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	NewsService      news.ArticleService
	ComplaintService complaints.ComplaintService
	AlertService     emergency.AlertService
	ProductService   store.ProductService
	OrderService     store.OrderService
	VoterService     voters.VoterService
	ChallengeService challenges.ChallengeService
	UserService      users.UserService
	AuthService      users.AuthService
	EventService     events.EventService
	Testimonials     testimonials.TestimonialService
	Questions        ama.QuestionService
	Volunteers       volunteers.VolunteerService

	// Infrastructure
	SMS       *RecordingSender
	DBContext *persistence.TestContext
}

// SetupTestServices initializes the application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	sender := &RecordingSender{}

	newsService, err := NewNewsService(dbContext.NewsRepo, logger)
	require.NoError(t, err, "Failed to create NewsService")

	complaintService, err := NewComplaintService(dbContext.ComplaintRepo, sender, logger)
	require.NoError(t, err, "Failed to create ComplaintService")

	alertRepo, err := persistence.NewGormAlertRepository(dbContext.DB, logger)
	require.NoError(t, err)
	alertService, err := NewAlertService(alertRepo, sender, []string{TestEmergencyContact}, logger)
	require.NoError(t, err, "Failed to create AlertService")

	productService, err := NewProductService(dbContext.ProductRepo, logger)
	require.NoError(t, err, "Failed to create ProductService")

	orderService, err := NewOrderService(dbContext.OrderRepo, dbContext.Transactor, logger)
	require.NoError(t, err, "Failed to create OrderService")

	voterService, err := NewVoterService(dbContext.VoterRepo, logger)
	require.NoError(t, err, "Failed to create VoterService")

	challengeRepo, err := persistence.NewGormChallengeRepository(dbContext.DB, logger)
	require.NoError(t, err)
	challengeService, err := NewChallengeService(challengeRepo, logger)
	require.NoError(t, err, "Failed to create ChallengeService")

	userRepo, err := persistence.NewGormUserRepository(dbContext.DB, logger)
	require.NoError(t, err)
	userService, err := NewUserService(userRepo, logger)
	require.NoError(t, err, "Failed to create UserService")
	authService, err := NewAuthService(userRepo, &config.AuthSettings{
		JWTSecret:  "integration-secret-0123456789abcdef",
		Issuer:     "campaign-test",
		SessionTTL: time.Hour,
		CookieName: "campaign_session",
	}, logger)
	require.NoError(t, err, "Failed to create AuthService")

	eventService, err := NewEventService(dbContext.EventRepo, logger)
	require.NoError(t, err, "Failed to create EventService")

	testimonialRepo, err := persistence.NewGormTestimonialRepository(dbContext.DB, logger)
	require.NoError(t, err)
	testimonialService, err := NewTestimonialService(testimonialRepo, logger)
	require.NoError(t, err, "Failed to create TestimonialService")

	questionRepo, err := persistence.NewGormQuestionRepository(dbContext.DB, logger)
	require.NoError(t, err)
	questionService, err := NewQuestionService(questionRepo, logger)
	require.NoError(t, err, "Failed to create QuestionService")

	volunteerRepo, err := persistence.NewGormVolunteerRepository(dbContext.DB, logger)
	require.NoError(t, err)
	volunteerService, err := NewVolunteerService(volunteerRepo, logger)
	require.NoError(t, err, "Failed to create VolunteerService")

	return &TestServices{
		NewsService:      newsService,
		ComplaintService: complaintService,
		AlertService:     alertService,
		ProductService:   productService,
		OrderService:     orderService,
		VoterService:     voterService,
		ChallengeService: challengeService,
		UserService:      userService,
		AuthService:      authService,
		EventService:     eventService,
		Testimonials:     testimonialService,
		Questions:        questionService,
		Volunteers:       volunteerService,
		SMS:              sender,
		DBContext:        dbContext,
	}
}
