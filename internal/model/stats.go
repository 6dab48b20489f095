package model

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalPosts        int `json:"total_posts"`
	PublicPosts       int `json:"public_posts"`
	TotalContacts     int `json:"total_contacts"`
	UnreadContacts    int `json:"unread_contacts"`
	UnrepliedContacts int `json:"unreplied_contacts"`
}

// Dashboard bundles the stats with recent activity for the admin console.
type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentPosts    []*PostListItem `json:"recent_posts"`
	RecentContacts []*Contact      `json:"recent_contacts"`
}

// Home is the aggregate for the public landing page.
type Home struct {
	FeaturedServices []*Service      `json:"featured_services"`
	LatestPosts      []*PostListItem `json:"latest_posts"`
}
