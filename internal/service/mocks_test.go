package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rivvo/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithWorkspace(ctx context.Context, user *models.User, orgName, orgSlug string) (*models.Organization, error) {
	args := m.Called(ctx, user, orgName, orgSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*models.User, error) {
	args := m.Called(ctx, userID, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockOrgRepository struct {
	mock.Mock
}

func (m *MockOrgRepository) Create(ctx context.Context, name, slug string, creatorID uuid.UUID) (*models.Organization, error) {
	args := m.Called(ctx, name, slug, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrgRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.OrgWithRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrgWithRole), args.Error(1)
}

func (m *MockOrgRepository) GetMember(ctx context.Context, orgID, userID uuid.UUID) (*models.OrgMember, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrgMember), args.Error(1)
}

func (m *MockOrgRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID, role string) (*models.OrgMember, error) {
	args := m.Called(ctx, orgID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrgMember), args.Error(1)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, orgID uuid.UUID, name, slug string, description *string) (*models.Board, error) {
	args := m.Called(ctx, orgID, name, slug, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.BoardWithPostCount, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BoardWithPostCount), args.Error(1)
}

func (m *MockBoardRepository) GetBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*models.Board, error) {
	args := m.Called(ctx, orgID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, boardID uuid.UUID) (*models.Board, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, boardID uuid.UUID, name, slug string, description *string) (*models.Board, error) {
	args := m.Called(ctx, boardID, name, slug, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Board), args.Error(1)
}

func (m *MockBoardRepository) Delete(ctx context.Context, boardID uuid.UUID) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, boardID, authorID uuid.UUID, title string, description *string) (*models.Post, error) {
	args := m.Called(ctx, boardID, authorID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostListRow, error) {
	args := m.Called(ctx, boardID, callerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostListRow), args.Error(1)
}

func (m *MockPostRepository) GetDetail(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetailRow, error) {
	args := m.Called(ctx, postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostDetailRow), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, postID uuid.UUID, title string, description *string) (*models.Post, error) {
	args := m.Called(ctx, postID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateStatus(ctx context.Context, postID uuid.UUID, status string) (*models.Post, error) {
	args := m.Called(ctx, postID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Toggle(ctx context.Context, postID, userID uuid.UUID) (*models.VoteResult, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteResult), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, postID, authorID uuid.UUID, body string, isAdminReply bool) (*models.Comment, error) {
	args := m.Called(ctx, postID, authorID, body, isAdminReply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) List(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthorRow, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentWithAuthorRow), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID, callerID uuid.UUID, callerIsAdmin bool, postID uuid.UUID) error {
	args := m.Called(ctx, commentID, callerID, callerIsAdmin, postID)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, boardID uuid.UUID, name string, color *string) (*models.Tag, error) {
	args := m.Called(ctx, boardID, name, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context, boardID uuid.UUID) ([]models.Tag, error) {
	args := m.Called(ctx, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByID(ctx context.Context, tagID uuid.UUID) (*models.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) ListForPost(ctx context.Context, postID uuid.UUID) ([]models.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) ListForPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]models.Tag), args.Error(1)
}

func (m *MockTagRepository) Delete(ctx context.Context, tagID uuid.UUID) error {
	args := m.Called(ctx, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) Assign(ctx context.Context, postID, tagID uuid.UUID) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) Unassign(ctx context.Context, postID, tagID uuid.UUID) error {
	args := m.Called(ctx, postID, tagID)
	return args.Error(0)
}

type MockHealthRepository struct {
	mock.Mock
}

func (m *MockHealthRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHealthRepository) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, userID, fileName, contentType, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteObject(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

// fixture wires a Gate over fresh mocks.
type fixture struct {
	users    *MockUserRepository
	orgs     *MockOrgRepository
	boards   *MockBoardRepository
	posts    *MockPostRepository
	votes    *MockVoteRepository
	comments *MockCommentRepository
	tags     *MockTagRepository
	gate     *Gate

	orgID  uuid.UUID
	board  *models.Board
	admin  uuid.UUID
	member uuid.UUID
}

func newFixture() *fixture {
	f := &fixture{
		users:    new(MockUserRepository),
		orgs:     new(MockOrgRepository),
		boards:   new(MockBoardRepository),
		posts:    new(MockPostRepository),
		votes:    new(MockVoteRepository),
		comments: new(MockCommentRepository),
		tags:     new(MockTagRepository),
		orgID:    uuid.New(),
		admin:    uuid.New(),
		member:   uuid.New(),
	}
	f.gate = NewGate(f.orgs, f.boards, f.posts)
	f.board = &models.Board{ID: uuid.New(), OrgID: f.orgID, Name: "Feature Requests", Slug: "feature-requests"}
	return f
}

func (f *fixture) expectBoard() {
	f.boards.On("GetByID", mock.Anything, f.board.ID).Return(f.board, nil)
}

func (f *fixture) expectRole(userID uuid.UUID, role string) {
	f.orgs.On("GetMember", mock.Anything, f.orgID, userID).
		Return(&models.OrgMember{ID: uuid.New(), OrgID: f.orgID, UserID: userID, Role: role}, nil)
}

func (f *fixture) expectPost(authorID uuid.UUID) *models.Post {
	post := &models.Post{
		ID:       uuid.New(),
		BoardID:  f.board.ID,
		AuthorID: uuid.NullUUID{UUID: authorID, Valid: true},
		Title:    "Dark mode",
		Status:   models.StatusOpen,
	}
	f.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil)
	f.expectBoard()
	return post
}
