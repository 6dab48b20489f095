package model

import "time"

// Service is a public service listing shown on the services page.
type Service struct {
	ID            int64      `json:"id"`
	TitleKo       string     `json:"title_ko"`
	TitleEn       *string    `json:"title_en,omitempty"`
	TitleZh       *string    `json:"title_zh,omitempty"`
	DescriptionKo string     `json:"description_ko"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	DescriptionZh *string    `json:"description_zh,omitempty"`
	Icon          *string    `json:"icon,omitempty"`
	IsPublished   bool       `json:"is_published"`
	IsFeatured    bool       `json:"is_featured"`
	DisplayOrder  int        `json:"order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ServicePatch is a sparse update: nil fields are left untouched.
type ServicePatch struct {
	TitleKo       *string `json:"title_ko"`
	TitleEn       *string `json:"title_en"`
	TitleZh       *string `json:"title_zh"`
	DescriptionKo *string `json:"description_ko"`
	DescriptionEn *string `json:"description_en"`
	DescriptionZh *string `json:"description_zh"`
	Icon          *string `json:"icon"`
	IsPublished   *bool   `json:"is_published"`
	IsFeatured    *bool   `json:"is_featured"`
	DisplayOrder  *int    `json:"order"`
}

// IsZero reports whether the patch carries no fields at all.
func (p ServicePatch) IsZero() bool {
	return p.TitleKo == nil && p.TitleEn == nil && p.TitleZh == nil &&
		p.DescriptionKo == nil && p.DescriptionEn == nil && p.DescriptionZh == nil &&
		p.Icon == nil && p.IsPublished == nil && p.IsFeatured == nil && p.DisplayOrder == nil
}

// ServiceListOptions carries filter parameters for listing services.
type ServiceListOptions struct {
	// PublishedOnly restricts the listing to published services.
	PublishedOnly bool
	// FeaturedOnly additionally restricts to featured services.
	FeaturedOnly bool
	Limit        int
	Offset       int
}
