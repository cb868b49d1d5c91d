package entity

import "time"

// Note belongs to exactly one user; every repository operation is
// scoped by the owner id.
type Note struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	IsPinned  bool      `json:"isPinned"`
	CreatedOn time.Time `json:"createdOn"`
	UpdatedAt time.Time `json:"updatedAt"`
}
