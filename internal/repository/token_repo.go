// filepath: internal/repository/token_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// RevokeToken adds a token id to the denylist. The row is kept until the
// token would have expired anyway; the cache entry carries the same TTL.
func (s *Repository) RevokeToken(jti string, expiry time.Time) error {
	query := "INSERT OR IGNORE INTO revoked_tokens (jti, expiry) VALUES (?, ?)"
	if _, err := s.DB.Exec(query, jti, expiry); err != nil {
		return err
	}

	ttl := time.Until(expiry)
	if ttl > 0 {
		s.Cache.Set(revokedCacheKey(jti), true, ttl)
	}
	return nil
}

// IsTokenRevoked checks the denylist, cache first.
func (s *Repository) IsTokenRevoked(jti string) (bool, error) {
	if _, found := s.Cache.Get(revokedCacheKey(jti)); found {
		return true, nil
	}

	query := "SELECT expiry FROM revoked_tokens WHERE jti = ?"
	var expiry time.Time
	err := s.DB.QueryRow(query, jti).Scan(&expiry)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}

	if ttl := time.Until(expiry); ttl > 0 {
		s.Cache.Set(revokedCacheKey(jti), true, ttl)
	}
	return true, nil
}

// PurgeExpiredTokens removes denylist rows whose tokens have expired.
func (s *Repository) PurgeExpiredTokens() (int64, error) {
	result, err := s.DB.Exec("DELETE FROM revoked_tokens WHERE expiry <= ?", time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func revokedCacheKey(jti string) string {
	return fmt.Sprintf("revoked_token_%s", jti)
}
