package test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rivvo/internal/models"
	"rivvo/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, name, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (*models.User, error) {
	args := m.Called(ctx, userID, fileName, contentType, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) ListMine(ctx context.Context, callerID uuid.UUID) ([]models.OrgWithRole, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrgWithRole), args.Error(1)
}

func (m *MockOrgService) Create(ctx context.Context, callerID uuid.UUID, name string) (*models.Organization, error) {
	args := m.Called(ctx, callerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrgService) AddMember(ctx context.Context, orgID, callerID uuid.UUID, email, role string) (*models.OrgMember, error) {
	args := m.Called(ctx, orgID, callerID, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrgMember), args.Error(1)
}

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) List(ctx context.Context, orgID, callerID uuid.UUID) ([]models.BoardWithPostCount, error) {
	args := m.Called(ctx, orgID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BoardWithPostCount), args.Error(1)
}

func (m *MockBoardService) Create(ctx context.Context, orgID, callerID uuid.UUID, name string, description *string) (*models.Board, error) {
	args := m.Called(ctx, orgID, callerID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) GetBySlug(ctx context.Context, orgID, callerID uuid.UUID, slug string) (*models.Board, error) {
	args := m.Called(ctx, orgID, callerID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) Update(ctx context.Context, orgID, callerID uuid.UUID, slug, name string, description *string) (*models.Board, error) {
	args := m.Called(ctx, orgID, callerID, slug, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardService) Delete(ctx context.Context, orgID, callerID uuid.UUID, slug string) error {
	args := m.Called(ctx, orgID, callerID, slug)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostSummary, error) {
	args := m.Called(ctx, boardID, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostSummary), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, boardID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error) {
	args := m.Called(ctx, boardID, callerID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetail, error) {
	args := m.Called(ctx, postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) GetInBoard(ctx context.Context, boardID, postID, callerID uuid.UUID) (*models.PostDetail, error) {
	args := m.Called(ctx, boardID, postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, boardID, postID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error) {
	args := m.Called(ctx, boardID, postID, callerID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) UpdateStatus(ctx context.Context, boardID, postID, callerID uuid.UUID, status string) (*models.PostDetail, error) {
	args := m.Called(ctx, boardID, postID, callerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetail), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, boardID, postID, callerID uuid.UUID) error {
	args := m.Called(ctx, boardID, postID, callerID)
	return args.Error(0)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) Toggle(ctx context.Context, postID, callerID uuid.UUID) (*models.VoteResult, error) {
	args := m.Called(ctx, postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteResult), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, postID, callerID uuid.UUID) ([]models.CommentWithAuthorRow, error) {
	args := m.Called(ctx, postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithAuthorRow), args.Error(1)
}

func (m *MockCommentService) Create(ctx context.Context, postID, callerID uuid.UUID, body string) (*models.CommentWithAuthorRow, error) {
	args := m.Called(ctx, postID, callerID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentWithAuthorRow), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	args := m.Called(ctx, commentID, callerID)
	return args.Error(0)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context, boardID, callerID uuid.UUID) ([]models.Tag, error) {
	args := m.Called(ctx, boardID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagService) Create(ctx context.Context, boardID, callerID uuid.UUID, name string, color *string) (*models.Tag, error) {
	args := m.Called(ctx, boardID, callerID, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, tagID, callerID uuid.UUID) error {
	args := m.Called(ctx, tagID, callerID)
	return args.Error(0)
}

func (m *MockTagService) Assign(ctx context.Context, postID, tagID, callerID uuid.UUID) error {
	args := m.Called(ctx, postID, tagID, callerID)
	return args.Error(0)
}

func (m *MockTagService) Unassign(ctx context.Context, postID, tagID, callerID uuid.UUID) error {
	args := m.Called(ctx, postID, tagID, callerID)
	return args.Error(0)
}

type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) (*service.HealthStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HealthStatus), args.Error(1)
}
