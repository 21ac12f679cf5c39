package handlers

import (
	"time"

	"github.com/google/uuid"

	"rivvo/internal/models"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type OrgResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	LogoURL *string   `json:"logo_url"`
	Role    string    `json:"role"`
}

type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	OrgID     uuid.UUID `json:"org_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type BoardResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	PostCount   int64     `json:"post_count"`
}

type TagResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

type PostListResponse struct {
	ID                 uuid.UUID     `json:"id"`
	Title              string        `json:"title"`
	DescriptionPreview *string       `json:"description_preview"`
	Status             string        `json:"status"`
	VoteCount          int           `json:"vote_count"`
	CommentCount       int           `json:"comment_count"`
	Pinned             bool          `json:"pinned"`
	AuthorName         *string       `json:"author_name"`
	HasVoted           bool          `json:"has_voted"`
	Tags               []TagResponse `json:"tags"`
	CreatedAt          time.Time     `json:"created_at"`
}

type PostAuthor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url"`
}

type PostDetailResponse struct {
	ID           uuid.UUID     `json:"id"`
	BoardID      uuid.UUID     `json:"board_id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description"`
	Status       string        `json:"status"`
	VoteCount    int           `json:"vote_count"`
	CommentCount int           `json:"comment_count"`
	Pinned       bool          `json:"pinned"`
	Author       *PostAuthor   `json:"author"`
	HasVoted     bool          `json:"has_voted"`
	Tags         []TagResponse `json:"tags"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CommentAuthor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url"`
}

type CommentResponse struct {
	ID           uuid.UUID      `json:"id"`
	Body         string         `json:"body"`
	IsAdminReply bool           `json:"is_admin_reply"`
	Author       *CommentAuthor `json:"author"`
	CreatedAt    time.Time      `json:"created_at"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Tables   *int   `json:"tables,omitempty"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func toOrgResponse(o models.OrgWithRole) OrgResponse {
	return OrgResponse{ID: o.ID, Name: o.Name, Slug: o.Slug, LogoURL: o.LogoURL, Role: o.Role}
}

func toMemberResponse(m *models.OrgMember) MemberResponse {
	return MemberResponse{ID: m.ID, OrgID: m.OrgID, UserID: m.UserID, Role: m.Role, CreatedAt: m.CreatedAt}
}

// toBoardResponse is used where no count is loaded, the count is zero.
func toBoardResponse(b *models.Board) BoardResponse {
	return BoardResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, Description: b.Description}
}

func toBoardListResponse(b models.BoardWithPostCount) BoardResponse {
	return BoardResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, Description: b.Description, PostCount: b.PostCount}
}

func toTagResponses(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return out
}

func toPostListResponse(p models.PostSummary) PostListResponse {
	return PostListResponse{
		ID:                 p.ID,
		Title:              p.Title,
		DescriptionPreview: p.DescriptionPreview,
		Status:             p.Status,
		VoteCount:          p.VoteCount,
		CommentCount:       p.CommentCount,
		Pinned:             p.Pinned,
		AuthorName:         p.AuthorName,
		HasVoted:           p.HasVoted,
		Tags:               toTagResponses(p.Tags),
		CreatedAt:          p.CreatedAt,
	}
}

func toPostDetailResponse(p *models.PostDetail) PostDetailResponse {
	var author *PostAuthor
	if p.AuthorID.Valid {
		author = &PostAuthor{
			ID:        p.AuthorID.UUID,
			Name:      deref(p.AuthorName),
			Email:     deref(p.AuthorEmail),
			AvatarURL: p.AuthorAvatarURL,
		}
	}

	return PostDetailResponse{
		ID:           p.ID,
		BoardID:      p.BoardID,
		Title:        p.Title,
		Description:  p.Description,
		Status:       p.Status,
		VoteCount:    p.VoteCount,
		CommentCount: p.CommentCount,
		Pinned:       p.Pinned,
		Author:       author,
		HasVoted:     p.HasVoted,
		Tags:         toTagResponses(p.Tags),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toCommentResponse(c models.CommentWithAuthorRow) CommentResponse {
	var author *CommentAuthor
	if c.AuthorID.Valid {
		author = &CommentAuthor{
			ID:        c.AuthorID.UUID,
			Name:      deref(c.AuthorName),
			AvatarURL: c.AuthorAvatarURL,
		}
	}

	return CommentResponse{
		ID:           c.ID,
		Body:         c.Body,
		IsAdminReply: c.IsAdminReply,
		Author:       author,
		CreatedAt:    c.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
