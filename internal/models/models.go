package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	StatusOpen       = "open"
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusClosed     = "closed"
)

var ValidStatuses = []string{StatusOpen, StatusPlanned, StatusInProgress, StatusDone, StatusClosed}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

const DefaultTagColor = "#6366f1"

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	Provider     *string   `json:"-" db:"provider"`
	ProviderID   *string   `json:"-" db:"provider_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Organization struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Slug         string          `json:"slug" db:"slug"`
	LogoURL      *string         `json:"logo_url" db:"logo_url"`
	CustomDomain *string         `json:"custom_domain" db:"custom_domain"`
	Plan         string          `json:"plan" db:"plan"`
	Settings     json.RawMessage `json:"settings" db:"settings"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

type OrgMember struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrgID     uuid.UUID `json:"org_id" db:"org_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *OrgMember) IsAdmin() bool {
	return m != nil && m.Role == RoleAdmin
}

// OrgWithRole is one row of the caller's organization list.
type OrgWithRole struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Slug    string    `db:"slug"`
	LogoURL *string   `db:"logo_url"`
	Role    string    `db:"role"`
}

type Board struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrgID       uuid.UUID `json:"org_id" db:"org_id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description" db:"description"`
	IsPrivate   bool      `json:"is_private" db:"is_private"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type BoardWithPostCount struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	PostCount   int64     `db:"post_count"`
}

type Post struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	BoardID      uuid.UUID     `json:"board_id" db:"board_id"`
	AuthorID     uuid.NullUUID `json:"author_id" db:"author_id"`
	Title        string        `json:"title" db:"title"`
	Description  *string       `json:"description" db:"description"`
	Status       string        `json:"status" db:"status"`
	Category     *string       `json:"category" db:"category"`
	VoteCount    int           `json:"vote_count" db:"vote_count"`
	CommentCount int           `json:"comment_count" db:"comment_count"`
	Pinned       bool          `json:"pinned" db:"pinned"`
	MergedIntoID uuid.NullUUID `json:"merged_into_id" db:"merged_into_id"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// PostListRow is the flat result of the board post list query.
type PostListRow struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Description  *string   `db:"description"`
	Status       string    `db:"status"`
	VoteCount    int       `db:"vote_count"`
	CommentCount int       `db:"comment_count"`
	Pinned       bool      `db:"pinned"`
	AuthorName   *string   `db:"author_name"`
	HasVoted     bool      `db:"has_voted"`
	CreatedAt    time.Time `db:"created_at"`
}

// PostDetailRow is the flat result of the single post query, author
// columns are null when the author account is gone.
type PostDetailRow struct {
	ID              uuid.UUID     `db:"id"`
	BoardID         uuid.UUID     `db:"board_id"`
	Title           string        `db:"title"`
	Description     *string       `db:"description"`
	Status          string        `db:"status"`
	VoteCount       int           `db:"vote_count"`
	CommentCount    int           `db:"comment_count"`
	Pinned          bool          `db:"pinned"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`
	AuthorID        uuid.NullUUID `db:"author_id"`
	AuthorName      *string       `db:"author_name"`
	AuthorEmail     *string       `db:"author_email"`
	AuthorAvatarURL *string       `db:"author_avatar_url"`
	HasVoted        bool          `db:"has_voted"`
}

// PostSummary is a list row with its tags attached and the description
// cut down to a preview.
type PostSummary struct {
	PostListRow
	DescriptionPreview *string
	Tags               []Tag
}

type PostDetail struct {
	PostDetailRow
	Tags []Tag
}

type PostListFilter struct {
	Sort   string
	Status string
}

type Vote struct {
	ID        uuid.UUID `db:"id"`
	PostID    uuid.UUID `db:"post_id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type VoteResult struct {
	Voted     bool `json:"voted"`
	VoteCount int  `json:"vote_count"`
}

type Comment struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	PostID       uuid.UUID     `json:"post_id" db:"post_id"`
	AuthorID     uuid.NullUUID `json:"author_id" db:"author_id"`
	Body         string        `json:"body" db:"body"`
	IsAdminReply bool          `json:"is_admin_reply" db:"is_admin_reply"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

type CommentWithAuthorRow struct {
	ID              uuid.UUID     `db:"id"`
	Body            string        `db:"body"`
	IsAdminReply    bool          `db:"is_admin_reply"`
	CreatedAt       time.Time     `db:"created_at"`
	AuthorID        uuid.NullUUID `db:"author_id"`
	AuthorName      *string       `db:"author_name"`
	AuthorAvatarURL *string       `db:"author_avatar_url"`
}

type Tag struct {
	ID      uuid.UUID `json:"id" db:"id"`
	BoardID uuid.UUID `json:"board_id" db:"board_id"`
	Name    string    `json:"name" db:"name"`
	Color   string    `json:"color" db:"color"`
}

// PostTagRow carries the owning post id next to the tag for batched lookups.
type PostTagRow struct {
	PostID uuid.UUID `db:"post_id"`
	Tag
}
