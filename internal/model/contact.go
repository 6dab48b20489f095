package model

import "time"

// Contact is a citizen-submitted inquiry from the contact form. A secret
// inquiry hides its content from everyone except the admin and callers who
// verify the per-inquiry password.
type Contact struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"` // phone or email
	Message string `json:"message"`

	IsSecret bool `json:"is_secret"`
	// SecretPasswordHash is set only when the inquiry is secret and a
	// password was supplied at creation. A secret inquiry without a hash is
	// viewable by the admin only.
	SecretPasswordHash *string `json:"-"`

	AdminReply    *string    `json:"admin_reply,omitempty"`
	ReplyIsPublic bool       `json:"reply_is_public"`
	RepliedAt     *time.Time `json:"replied_at,omitempty"`

	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// HasReply reports whether the admin has replied to the inquiry.
func (c *Contact) HasReply() bool {
	return c.AdminReply != nil
}

// ContactListItem is the public list projection of an inquiry. Message and
// contact method are never part of it; secret names are masked by the
// service layer before it is built.
type ContactListItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsSecret  bool      `json:"is_secret"`
	HasReply  bool      `json:"has_reply"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListOptions carries filter parameters for listing inquiries.
type ContactListOptions struct {
	Limit  int
	Offset int
}
