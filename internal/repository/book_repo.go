// filepath: internal/repository/book_repo.go
package repository

import (
	"database/sql"
	"strings"

	"horizonlib/internal/logging"
	"horizonlib/internal/models"

	"github.com/Masterminds/squirrel"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "published_date", "description",
	"cover_image_url", "shelf_number", "row_position", "created_at", "updated_at",
}

// scanBook scans a single row into a Book.
func scanBook(row squirrel.RowScanner) (*models.Book, error) {
	var b models.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.PublishedDate, &b.Description,
		&b.CoverImageURL, &b.ShelfNumber, &b.RowPosition, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBooks retrieves all books. No pagination; the catalog is expected to
// stay small.
func (s *Repository) GetBooks() ([]models.Book, error) {
	query, args, err := s.Builder.Select(bookColumns...).From("books").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

// GetBookByID retrieves a single book or ErrNotFound.
func (s *Repository) GetBookByID(id int64) (*models.Book, error) {
	query, args, err := s.Builder.Select(bookColumns...).From("books").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	b, err := scanBook(s.DB.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetBookIDByISBN returns the id of the book with the given ISBN, or
// ErrNotFound if no such book exists.
func (s *Repository) GetBookIDByISBN(isbn string) (int64, error) {
	var id int64
	err := s.DB.QueryRow("SELECT id FROM books WHERE isbn = ?", isbn).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// SearchBooks matches books whose title, author, or isbn contains q as a
// case-insensitive substring. Capped at limit rows, natural order.
func (s *Repository) SearchBooks(q string, limit uint64) ([]models.Book, error) {
	// Both sides folded with LOWER() so the comparison uses one collation.
	pattern := "%" + q + "%"
	query, args, err := s.Builder.Select(bookColumns...).From("books").
		Where(squirrel.Or{
			squirrel.Expr("LOWER(title) LIKE LOWER(?)", pattern),
			squirrel.Expr("LOWER(author) LIKE LOWER(?)", pattern),
			squirrel.Expr("LOWER(isbn) LIKE LOWER(?)", pattern),
		}).
		Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("SearchBooks: generated SQL: %s", query)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

// CreateBook inserts a new book row and returns the stored record.
func (s *Repository) CreateBook(b *models.Book) (*models.Book, error) {
	query := `
		INSERT INTO books
		(title, author, isbn, published_date, description, cover_image_url, shelf_number, row_position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB.Exec(query,
		b.Title, b.Author, b.ISBN, b.PublishedDate, b.Description,
		b.CoverImageURL, b.ShelfNumber, b.RowPosition,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: books.isbn") {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateBook: book '%s' created with ID %d", b.Title, id)
	return s.GetBookByID(id)
}

// UpdateBook replaces all mutable fields of a book, including the cover
// image reference. Returns ErrNotFound for an unknown id.
func (s *Repository) UpdateBook(b *models.Book) error {
	query := `
		UPDATE books
		SET title = ?, author = ?, isbn = ?, published_date = ?, description = ?,
		    cover_image_url = ?, shelf_number = ?, row_position = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := s.DB.Exec(query,
		b.Title, b.Author, b.ISBN, b.PublishedDate, b.Description,
		b.CoverImageURL, b.ShelfNumber, b.RowPosition, b.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: books.isbn") {
			return ErrDuplicateISBN
		}
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

// DeleteBook removes a book row. Returns ErrNotFound for an unknown id.
// The stored cover image file is left in place.
func (s *Repository) DeleteBook(id int64) error {
	result, err := s.DB.Exec("DELETE FROM books WHERE id = ?", id)
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

// CountBooks returns the number of rows in the books table.
func (s *Repository) CountBooks() (int64, error) {
	var count int64
	err := s.DB.QueryRow("SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}
