package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserSummary is the author shape embedded in feed items and comments.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}

type CommentResponse struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Author    UserSummary `json:"author"`
}

// SnippetResponse is a snippet merged with its viewer overlay: aggregate
// counts are always present, the boolean flags are false for anonymous
// viewers.
type SnippetResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Code          string            `json:"code"`
	Language      string            `json:"language"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Author        UserSummary       `json:"author"`
	LikesCount    int64             `json:"likes_count"`
	SavesCount    int64             `json:"saves_count"`
	CommentsCount int64             `json:"comments_count"`
	IsLiked       bool              `json:"isLiked"`
	IsBookmarked  bool              `json:"isBookmarked"`
	Comments      []CommentResponse `json:"comments"`
}

type DocumentResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Content       string            `json:"content"`
	Tags          []string          `json:"tags"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Author        UserSummary       `json:"author"`
	LikesCount    int64             `json:"likes_count"`
	SavesCount    int64             `json:"saves_count"`
	CommentsCount int64             `json:"comments_count"`
	IsLiked       bool              `json:"isLiked"`
	IsSaved       bool              `json:"isSaved"`
	IsFollowed    bool              `json:"isFollowed"`
	Comments      []CommentResponse `json:"comments,omitempty"`
}

type BugResponse struct {
	ID           uuid.UUID   `json:"id"`
	Content      string      `json:"content"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Author       UserSummary `json:"author"`
	UpvotesCount int64       `json:"upvotes_count"`
	IsUpvoted    bool        `json:"isUpvoted"`
}

type ComponentResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Code        string      `json:"code"`
	CreatedAt   time.Time   `json:"created_at"`
	Author      UserSummary `json:"author"`
}

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Image          string    `json:"image"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	SnippetsCount  int64     `json:"snippets_count"`
	DocumentsCount int64     `json:"documents_count"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"isFollowing"`
}

type CommunityUserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Image          string    `json:"image"`
	Bio            string    `json:"bio"`
	FollowersCount int64     `json:"followers_count"`
	IsFollowing    bool      `json:"isFollowing"`
}

type NotificationResponse struct {
	ID         uuid.UUID   `json:"id"`
	Type       string      `json:"type"`
	Link       string      `json:"link"`
	Read       bool        `json:"read"`
	CreatedAt  time.Time   `json:"created_at"`
	Originator UserSummary `json:"originator"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}
