package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("storage: algorithm not found")
	ErrExists   = errors.New("storage: algorithm already exists")
)

// Algorithm is a named expression saved in the library together with its expansion.
type Algorithm struct {
	AlgorithmID string
	Name        string
	Expression  string
	Expansion   string
	MoveCount   int
	Tag         string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AlgorithmRepository provides CRUD operations for saved algorithms.
type AlgorithmRepository struct {
	db *DB
}

// NewAlgorithmRepository creates a new algorithm repository.
func NewAlgorithmRepository(db *DB) *AlgorithmRepository {
	return &AlgorithmRepository{db: db}
}

const algorithmColumns = `algorithm_id, name, expression, expansion, move_count, tag, notes, created_at, updated_at`

// Create saves a new algorithm and returns its ID.
// Names are unique; saving an existing name returns ErrExists.
func (r *AlgorithmRepository) Create(name, expression, expansion string, moveCount int, tag, notes string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow("SELECT COUNT(*) FROM algorithms WHERE name = ?", name).Scan(&count); err != nil {
			return fmt.Errorf("failed to check algorithm name: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}

		_, err := tx.Exec(`
			INSERT INTO algorithms (algorithm_id, name, expression, expansion, move_count, tag, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, name, expression, expansion, moveCount, tag, notesPtr, now, now)
		if err != nil {
			return fmt.Errorf("failed to create algorithm: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get retrieves an algorithm by name.
func (r *AlgorithmRepository) Get(name string) (*Algorithm, error) {
	row := r.db.QueryRow(`SELECT `+algorithmColumns+` FROM algorithms WHERE name = ?`, name)

	a, err := scanAlgorithm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get algorithm: %w", err)
	}
	return a, nil
}

// List returns saved algorithms ordered by name. An empty tag lists everything.
func (r *AlgorithmRepository) List(tag string) ([]Algorithm, error) {
	query := `SELECT ` + algorithmColumns + ` FROM algorithms`
	var args []any
	if tag != "" {
		query += ` WHERE tag = ?`
		args = append(args, tag)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list algorithms: %w", err)
	}
	defer rows.Close()

	var algorithms []Algorithm
	for rows.Next() {
		a, err := scanAlgorithm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan algorithm: %w", err)
		}
		algorithms = append(algorithms, *a)
	}

	return algorithms, rows.Err()
}

// Update replaces the expression and expansion of an existing algorithm.
func (r *AlgorithmRepository) Update(name, expression, expansion string, moveCount int) error {
	now := time.Now().UTC().Format(time.RFC3339)

	result, err := r.db.Exec(`
		UPDATE algorithms
		SET expression = ?, expansion = ?, move_count = ?, updated_at = ?
		WHERE name = ?
	`, expression, expansion, moveCount, now, name)
	if err != nil {
		return fmt.Errorf("failed to update algorithm: %w", err)
	}

	return requireAffected(result, name)
}

// Delete removes an algorithm by name.
func (r *AlgorithmRepository) Delete(name string) error {
	result, err := r.db.Exec("DELETE FROM algorithms WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete algorithm: %w", err)
	}

	return requireAffected(result, name)
}

// Count returns the number of saved algorithms.
func (r *AlgorithmRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM algorithms").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count algorithms: %w", err)
	}
	return count, nil
}

func requireAffected(result sql.Result, name string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlgorithm(row rowScanner) (*Algorithm, error) {
	var a Algorithm
	var createdAt, updatedAt string

	err := row.Scan(&a.AlgorithmID, &a.Name, &a.Expression, &a.Expansion, &a.MoveCount, &a.Tag, &a.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &a, nil
}
