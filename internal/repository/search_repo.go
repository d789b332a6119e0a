// filepath: internal/repository/search_repo.go
package repository

import (
	"horizonlib/internal/logging"
	"horizonlib/internal/models"
)

// TrackSearch records one search for the given (already trimmed) title.
// The upsert is a single atomic statement, so concurrent searches for the
// same title never lose an increment.
func (s *Repository) TrackSearch(title string) error {
	query := `
		INSERT INTO book_searches (title, search_count) VALUES (?, 1)
		ON CONFLICT(title) DO UPDATE SET
			search_count = search_count + 1,
			last_searched_at = CURRENT_TIMESTAMP
	`
	_, err := s.DB.Exec(query, title)
	return err
}

// GetMostSearched returns up to limit search records ordered by count
// descending, ties broken by the most recent search.
func (s *Repository) GetMostSearched(limit uint64) ([]models.BookSearch, error) {
	query, args, err := s.Builder.
		Select("title", "search_count", "last_searched_at", "created_at").
		From("book_searches").
		OrderBy("search_count DESC", "last_searched_at DESC").
		Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.BookSearch, 0)
	for rows.Next() {
		var rec models.BookSearch
		if err := rows.Scan(&rec.Title, &rec.SearchCount, &rec.LastSearchedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ClearSearchHistory deletes all search records and returns how many were removed.
func (s *Repository) ClearSearchHistory() (int64, error) {
	result, err := s.DB.Exec("DELETE FROM book_searches")
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	logging.Log.Debugf("ClearSearchHistory: removed %d records", deleted)
	return deleted, nil
}
