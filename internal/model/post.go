package model

import "time"

// Post is a blog entry. Korean title/content are required; English and
// Chinese translations are optional.
type Post struct {
	ID           int64      `json:"id"`
	TitleKo      string     `json:"title_ko"`
	TitleEn      *string    `json:"title_en,omitempty"`
	TitleZh      *string    `json:"title_zh,omitempty"`
	ContentKo    string     `json:"content_ko"`
	ContentEn    *string    `json:"content_en,omitempty"`
	ContentZh    *string    `json:"content_zh,omitempty"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	IsPublic     bool       `json:"is_public"`
	ViewCount    int        `json:"view_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PostListItem is the list projection of a post: no content fields.
type PostListItem struct {
	ID           int64     `json:"id"`
	TitleKo      string    `json:"title_ko"`
	TitleEn      *string   `json:"title_en,omitempty"`
	TitleZh      *string   `json:"title_zh,omitempty"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	IsPublic     bool      `json:"is_public"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PostPatch is a sparse update: nil fields are left untouched.
type PostPatch struct {
	TitleKo      *string `json:"title_ko"`
	TitleEn      *string `json:"title_en"`
	TitleZh      *string `json:"title_zh"`
	ContentKo    *string `json:"content_ko"`
	ContentEn    *string `json:"content_en"`
	ContentZh    *string `json:"content_zh"`
	ThumbnailURL *string `json:"thumbnail_url"`
	IsPublic     *bool   `json:"is_public"`
}

// IsZero reports whether the patch carries no fields at all.
func (p PostPatch) IsZero() bool {
	return p.TitleKo == nil && p.TitleEn == nil && p.TitleZh == nil &&
		p.ContentKo == nil && p.ContentEn == nil && p.ContentZh == nil &&
		p.ThumbnailURL == nil && p.IsPublic == nil
}

// PostListOptions carries filter parameters for listing posts.
type PostListOptions struct {
	// PublicOnly restricts the listing to public posts.
	PublicOnly bool
	Limit      int
	Offset     int
}
