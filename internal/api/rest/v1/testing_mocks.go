//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/ama"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/complaints"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/dashboard"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/media"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/news"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/seo"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/store"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/users"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"

	"github.com/stretchr/testify/mock"
)

// MockArticleService is a mock implementation of news.ArticleService
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) Create(ctx context.Context, article *news.Article) (*news.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.Article), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, article *news.Article) (*news.Article, error) {
	args := m.Called(ctx, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.Article), args.Error(1)
}

func (m *MockArticleService) GetByID(ctx context.Context, id string) (*news.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.Article), args.Error(1)
}

func (m *MockArticleService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleService) List(ctx context.Context, query *news.ArticleQuery) ([]*news.Article, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*news.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleService) ListPublished(ctx context.Context, query *news.ArticleQuery) ([]*news.Article, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*news.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleService) ViewPublished(ctx context.Context, slug string) (*news.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*news.Article), args.Error(1)
}

// MockAuthService is a mock implementation of users.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*users.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*users.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockUserService is a mock implementation of users.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, input *users.NewUser) (*users.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*users.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, id string, update *users.UserUpdate) (*users.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockComplaintService is a mock implementation of complaints.ComplaintService
type MockComplaintService struct {
	mock.Mock
}

func (m *MockComplaintService) Submit(ctx context.Context, complaint *complaints.Complaint) (*complaints.Complaint, error) {
	args := m.Called(ctx, complaint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaints.Complaint), args.Error(1)
}

func (m *MockComplaintService) Track(ctx context.Context, trackingID string) (*complaints.Tracking, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaints.Tracking), args.Error(1)
}

func (m *MockComplaintService) List(ctx context.Context, query *complaints.ComplaintQuery) ([]*complaints.Complaint, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*complaints.Complaint), args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintService) GetByID(ctx context.Context, id string) (*complaints.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaints.Complaint), args.Error(1)
}

func (m *MockComplaintService) UpdateStatus(ctx context.Context, id string, update *complaints.StatusUpdate) (*complaints.Complaint, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*complaints.Complaint), args.Error(1)
}

// MockOrderService is a mock implementation of store.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Place(ctx context.Context, request *store.OrderRequest) (*store.Order, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, query *store.OrderQuery) ([]*store.Order, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*store.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) GetByID(ctx context.Context, id string) (*store.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) (*store.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Order), args.Error(1)
}

// MockVoterService is a mock implementation of voters.VoterService
type MockVoterService struct {
	mock.Mock
}

func (m *MockVoterService) Search(ctx context.Context, query *voters.SearchQuery) ([]*voters.Voter, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*voters.Voter), args.Error(1)
}

func (m *MockVoterService) Create(ctx context.Context, voter *voters.Voter) (*voters.Voter, error) {
	args := m.Called(ctx, voter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voters.Voter), args.Error(1)
}

func (m *MockVoterService) Update(ctx context.Context, voter *voters.Voter) (*voters.Voter, error) {
	args := m.Called(ctx, voter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voters.Voter), args.Error(1)
}

func (m *MockVoterService) GetByID(ctx context.Context, id string) (*voters.Voter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voters.Voter), args.Error(1)
}

func (m *MockVoterService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVoterService) List(ctx context.Context, query *voters.VoterQuery) ([]*voters.Voter, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*voters.Voter), args.Get(1).(int64), args.Error(2)
}

func (m *MockVoterService) Import(ctx context.Context, r io.Reader) (*voters.ImportResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voters.ImportResult), args.Error(1)
}

// MockUploadService is a mock implementation of media.UploadService
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, purpose string, file *multipart.FileHeader, uploaderID *string) (*media.MediaAsset, error) {
	args := m.Called(ctx, purpose, file, uploaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.MediaAsset), args.Error(1)
}

func (m *MockUploadService) UploadChunk(ctx context.Context, purpose string, chunk *media.ChunkUpload) (*media.ChunkResult, error) {
	args := m.Called(ctx, purpose, chunk)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.ChunkResult), args.Error(1)
}

func (m *MockUploadService) ChunkStatus(ctx context.Context, purpose, uploadID string) (*media.ChunkProgress, error) {
	args := m.Called(ctx, purpose, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.ChunkProgress), args.Error(1)
}

func (m *MockUploadService) AbortChunks(ctx context.Context, purpose, uploadID string) error {
	args := m.Called(ctx, purpose, uploadID)
	return args.Error(0)
}

func (m *MockUploadService) InitMultipart(ctx context.Context, purpose string, init *media.MultipartInit) (*media.MultipartSession, error) {
	args := m.Called(ctx, purpose, init)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.MultipartSession), args.Error(1)
}

func (m *MockUploadService) PresignParts(ctx context.Context, purpose string, request *media.PresignRequest) ([]media.PresignedPart, error) {
	args := m.Called(ctx, purpose, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]media.PresignedPart), args.Error(1)
}

func (m *MockUploadService) ListParts(ctx context.Context, purpose string, ref *media.MultipartRef) ([]media.Part, error) {
	args := m.Called(ctx, purpose, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]media.Part), args.Error(1)
}

func (m *MockUploadService) CompleteMultipart(ctx context.Context, purpose string, request *media.CompleteRequest, uploaderID *string) (*media.MediaAsset, error) {
	args := m.Called(ctx, purpose, request, uploaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.MediaAsset), args.Error(1)
}

func (m *MockUploadService) AbortMultipart(ctx context.Context, purpose string, ref *media.MultipartRef) error {
	args := m.Called(ctx, purpose, ref)
	return args.Error(0)
}

// MockSEOService is a mock implementation of seo.SEOService
type MockSEOService struct {
	mock.Mock
}

func (m *MockSEOService) Metadata(ctx context.Context, query *seo.MetadataQuery) (*seo.Metadata, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seo.Metadata), args.Error(1)
}

func (m *MockSEOService) Sitemap(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDashboardService is a mock implementation of dashboard.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}

// MockQuestionService is a mock implementation of ama.QuestionService
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Ask(ctx context.Context, question *ama.Question) (*ama.Question, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ama.Question), args.Error(1)
}

func (m *MockQuestionService) List(ctx context.Context, query *ama.QuestionQuery) ([]*ama.Question, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*ama.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionService) ListAnswered(ctx context.Context, query *ama.QuestionQuery) ([]*ama.Question, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*ama.Question), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuestionService) Answer(ctx context.Context, id string, answer *ama.Answer, answeredBy string) (*ama.Question, error) {
	args := m.Called(ctx, id, answer, answeredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ama.Question), args.Error(1)
}

func (m *MockQuestionService) Reject(ctx context.Context, id string) (*ama.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ama.Question), args.Error(1)
}

func (m *MockQuestionService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
