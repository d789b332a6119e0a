// filepath: internal/models/models.go
package models

import "time"

// Roles known to the system. Stored on the users row and carried in tokens.
const (
	RoleStudent   = "student"
	RoleLibrarian = "librarian"
)

// Book request statuses. Transitions are unrestricted (any status to any).
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
	RequestStatusOrdered  = "ordered"
	RequestStatusReceived = "received"
)

// User is a credential record. Rows are created by the `user add` CLI
// command, never through the API.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Identity is the {userId, role} pair decoded from a verified token.
// It lives in the request context for the duration of one request.
type Identity struct {
	UserID int64
	Role   string
}

// Book is a catalog record.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	ISBN          string    `json:"isbn"`
	PublishedDate *string   `json:"published_date"`
	Description   *string   `json:"description"`
	CoverImageURL *string   `json:"cover_image_url"`
	ShelfNumber   *string   `json:"shelf_number"`
	RowPosition   *string   `json:"row_position"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookSearch is a per-title search-frequency counter. At most one row
// exists per exact (trimmed, case-sensitive) title string.
type BookSearch struct {
	Title          string    `json:"title"`
	SearchCount    int64     `json:"search_count"`
	LastSearchedAt time.Time `json:"last_searched_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// BookRequest is a student acquisition request with a status workflow.
// RequestedBy is nulled when the requesting user is deleted.
type BookRequest struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Author              *string   `json:"author"`
	ISBN                *string   `json:"isbn"`
	Reason              *string   `json:"reason"`
	AdditionalNotes     *string   `json:"additional_notes"`
	Status              string    `json:"status"`
	RequestedBy         *int64    `json:"requested_by"`
	RequestedByUsername string    `json:"requested_by_username,omitempty"`
	RequestedAt         time.Time `json:"requested_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ValidRequestStatus reports whether s is one of the five workflow statuses.
func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected,
		RequestStatusOrdered, RequestStatusReceived:
		return true
	}
	return false
}
