package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/models"
	"rivvo/internal/repository"
)

const previewLength = 200

type PostService interface {
	List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostSummary, error)
	Create(ctx context.Context, boardID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error)
	Get(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetail, error)
	GetInBoard(ctx context.Context, boardID, postID, callerID uuid.UUID) (*models.PostDetail, error)
	Update(ctx context.Context, boardID, postID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error)
	UpdateStatus(ctx context.Context, boardID, postID, callerID uuid.UUID, status string) (*models.PostDetail, error)
	Delete(ctx context.Context, boardID, postID, callerID uuid.UUID) error
}

type postService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
	gate     *Gate
}

func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository, gate *Gate) PostService {
	return &postService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
		gate:     gate,
	}
}

// Preview cuts a description down to previewLength characters, appending
// an ellipsis when anything was removed.
func Preview(description *string) *string {
	if description == nil {
		return nil
	}
	runes := []rune(*description)
	if len(runes) <= previewLength {
		return description
	}
	preview := string(runes[:previewLength]) + "..."
	return &preview
}

func (s *postService) List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostSummary, error) {
	if _, err := s.gate.Board(ctx, boardID, callerID); err != nil {
		return nil, err
	}

	rows, err := s.postRepo.List(ctx, boardID, callerID, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tags, err := s.tagRepo.ListForPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PostSummary, 0, len(rows))
	for _, row := range rows {
		postTags := tags[row.ID]
		if postTags == nil {
			postTags = []models.Tag{}
		}
		summaries = append(summaries, models.PostSummary{
			PostListRow:        row,
			DescriptionPreview: Preview(row.Description),
			Tags:               postTags,
		})
	}

	return summaries, nil
}

func (s *postService) Create(ctx context.Context, boardID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error) {
	if _, err := s.gate.Board(ctx, boardID, callerID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.Create(ctx, boardID, callerID, title, description)
	if err != nil {
		return nil, err
	}

	return s.detail(ctx, post.ID, callerID)
}

func (s *postService) Get(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetail, error) {
	if _, err := s.gate.Post(ctx, postID, callerID); err != nil {
		return nil, err
	}
	return s.detail(ctx, postID, callerID)
}

func (s *postService) GetInBoard(ctx context.Context, boardID, postID, callerID uuid.UUID) (*models.PostDetail, error) {
	if _, err := s.gate.PostInBoard(ctx, boardID, postID, callerID); err != nil {
		return nil, err
	}
	return s.detail(ctx, postID, callerID)
}

func (s *postService) Update(ctx context.Context, boardID, postID, callerID uuid.UUID, title string, description *string) (*models.PostDetail, error) {
	scope, err := s.gate.PostInBoard(ctx, boardID, postID, callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireOwnerOrAdmin(scope.Member, scope.Post.AuthorID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.Update(ctx, postID, title, description); err != nil {
		return nil, err
	}

	return s.detail(ctx, postID, callerID)
}

func (s *postService) UpdateStatus(ctx context.Context, boardID, postID, callerID uuid.UUID, status string) (*models.PostDetail, error) {
	scope, err := s.gate.PostInBoard(ctx, boardID, postID, callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireAdmin(scope.Member); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.UpdateStatus(ctx, postID, status); err != nil {
		return nil, err
	}

	return s.detail(ctx, postID, callerID)
}

func (s *postService) Delete(ctx context.Context, boardID, postID, callerID uuid.UUID) error {
	scope, err := s.gate.PostInBoard(ctx, boardID, postID, callerID)
	if err != nil {
		return err
	}
	if err := RequireOwnerOrAdmin(scope.Member, scope.Post.AuthorID, callerID); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}

func (s *postService) detail(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetail, error) {
	row, err := s.postRepo.GetDetail(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &models.PostDetail{PostDetailRow: *row, Tags: tags}, nil
}
