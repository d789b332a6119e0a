// filepath: internal/repository/book_repo_test.go
package repository

import (
	"testing"

	"horizonlib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetBook(t *testing.T) {
	repo := setupTestRepo(t)

	desc := "A book about ships"
	shelf := "A3"
	book := newTestBook("Moby Dick", "978-0-14-243724-7")
	book.Description = &desc
	book.ShelfNumber = &shelf

	created, err := repo.CreateBook(book)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Moby Dick", created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	loaded, err := repo.GetBookByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	require.NotNil(t, loaded.Description)
	assert.Equal(t, desc, *loaded.Description)
	require.NotNil(t, loaded.ShelfNumber)
	assert.Equal(t, shelf, *loaded.ShelfNumber)
	assert.Nil(t, loaded.CoverImageURL)
}

func TestGetBookByID_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetBookByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBook_DuplicateISBN(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateBook(newTestBook("First", "123-456"))
	require.NoError(t, err)

	_, err = repo.CreateBook(newTestBook("Second", "123-456"))
	assert.ErrorIs(t, err, ErrDuplicateISBN)

	count, err := repo.CountBooks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateBook(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.CreateBook(newTestBook("Old Title", "111"))
	require.NoError(t, err)

	created.Title = "New Title"
	cover := "/uploads/book-cover-test.png"
	created.CoverImageURL = &cover
	require.NoError(t, repo.UpdateBook(created))

	loaded, err := repo.GetBookByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", loaded.Title)
	require.NotNil(t, loaded.CoverImageURL)
	assert.Equal(t, cover, *loaded.CoverImageURL)
}

func TestUpdateBook_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	ghost := newTestBook("Ghost", "404")
	ghost.ID = 12345
	assert.ErrorIs(t, repo.UpdateBook(ghost), ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.CreateBook(newTestBook("Doomed", "222"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteBook(created.ID))
	_, err = repo.GetBookByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBook_UnknownLeavesCatalogUntouched(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreateBook(newTestBook("Survivor", "333"))
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteBook(9999), ErrNotFound)

	count, err := repo.CountBooks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSearchBooks(t *testing.T) {
	repo := setupTestRepo(t)

	books := []*models.Book{
		{Title: "The Go Programming Language", Author: "Donovan", ISBN: "aaa-1"},
		{Title: "Learning Python", Author: "Lutz", ISBN: "bbb-2"},
		{Title: "Go Web Programming", Author: "Chang", ISBN: "ccc-3"},
	}
	for _, b := range books {
		_, err := repo.CreateBook(b)
		require.NoError(t, err)
	}

	// Case-insensitive title substring, either direction
	results, err := repo.SearchBooks("go", 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = repo.SearchBooks("GO WEB", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Go Web Programming", results[0].Title)

	// Author match
	results, err = repo.SearchBooks("lutz", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Learning Python", results[0].Title)

	// ISBN match
	results, err = repo.SearchBooks("ccc", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// No match
	results, err = repo.SearchBooks("rust", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchBooks_Limit(t *testing.T) {
	repo := setupTestRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.CreateBook(newTestBook("Common Title", string(rune('a'+i))))
		require.NoError(t, err)
	}

	results, err := repo.SearchBooks("Common", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
