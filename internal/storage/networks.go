package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNetworkNotFound is returned by LoadNetwork for an unknown name.
var ErrNetworkNotFound = errors.New("storage: network not found")

// NetworkInfo describes a stored network.
type NetworkInfo struct {
	Name      string
	Size      int
	UpdatedAt time.Time
}

// SaveNetwork stores encoded weights under name, replacing any previous ones.
func (s *Store) SaveNetwork(name string, weights []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO networks (name, weights) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET weights = excluded.weights, updated_at = CURRENT_TIMESTAMP`,
		name, weights,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save network %q: %w", name, err)
	}
	return nil
}

// LoadNetwork returns the encoded weights stored under name.
func (s *Store) LoadNetwork(name string) ([]byte, error) {
	var weights []byte
	err := s.db.QueryRow("SELECT weights FROM networks WHERE name = ?", name).Scan(&weights)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load network %q: %w", name, err)
	}
	return weights, nil
}

// ListNetworks returns the stored networks sorted by name.
func (s *Store) ListNetworks() ([]NetworkInfo, error) {
	rows, err := s.db.Query("SELECT name, LENGTH(weights), updated_at FROM networks ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list networks: %w", err)
	}
	defer rows.Close()

	var out []NetworkInfo
	for rows.Next() {
		var n NetworkInfo
		var updated any
		if err := rows.Scan(&n.Name, &n.Size, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan network: %w", err)
		}
		n.UpdatedAt = parseTime(updated)
		out = append(out, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}
