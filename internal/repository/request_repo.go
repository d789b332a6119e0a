// filepath: internal/repository/request_repo.go
package repository

import (
	"database/sql"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"
)

// CreateBookRequest inserts a new request with status "pending" and returns
// the stored record.
func (s *Repository) CreateBookRequest(req *models.BookRequest) (*models.BookRequest, error) {
	query := `
		INSERT INTO book_requests
		(title, author, isbn, reason, additional_notes, requested_by, status)
		VALUES (?, ?, ?, ?, ?, ?, 'pending')
	`
	result, err := s.DB.Exec(query,
		req.Title, req.Author, req.ISBN, req.Reason, req.AdditionalNotes, req.RequestedBy,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateBookRequest: request '%s' created with ID %d", req.Title, id)
	return s.GetBookRequestByID(id)
}

// GetBookRequestByID retrieves a single request or ErrNotFound.
func (s *Repository) GetBookRequestByID(id int64) (*models.BookRequest, error) {
	query := `
		SELECT id, title, author, isbn, reason, additional_notes, status,
		       requested_by, requested_at, updated_at
		FROM book_requests WHERE id = ?
	`
	var req models.BookRequest
	err := s.DB.QueryRow(query, id).Scan(
		&req.ID, &req.Title, &req.Author, &req.ISBN, &req.Reason, &req.AdditionalNotes,
		&req.Status, &req.RequestedBy, &req.RequestedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetBookRequests returns all requests joined with the requesting user's
// username, newest first. Requests whose user was deleted keep an empty
// username.
func (s *Repository) GetBookRequests() ([]models.BookRequest, error) {
	query := `
		SELECT r.id, r.title, r.author, r.isbn, r.reason, r.additional_notes, r.status,
		       r.requested_by, COALESCE(u.username, ''), r.requested_at, r.updated_at
		FROM book_requests r
		LEFT JOIN users u ON r.requested_by = u.id
		ORDER BY r.requested_at DESC, r.id DESC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.BookRequest, 0)
	for rows.Next() {
		var req models.BookRequest
		if err := rows.Scan(
			&req.ID, &req.Title, &req.Author, &req.ISBN, &req.Reason, &req.AdditionalNotes,
			&req.Status, &req.RequestedBy, &req.RequestedByUsername, &req.RequestedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateBookRequestStatus sets the status of a request. Any status may move
// to any other status. Returns ErrNotFound for an unknown id.
func (s *Repository) UpdateBookRequestStatus(id int64, status string) error {
	query := "UPDATE book_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	result, err := s.DB.Exec(query, status, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
