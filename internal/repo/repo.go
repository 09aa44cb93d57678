package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

// SavedEstimate is a snapshot of one calculator run: the inputs the user
// entered and the result they saw, frozen at save time.
type SavedEstimate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type EstimateRepository interface {
	SaveEstimate(ctx context.Context, userID int, name string, input, result json.RawMessage) (string, error)
	ListEstimates(ctx context.Context, userID int) ([]SavedEstimate, error)
	GetEstimate(ctx context.Context, userID int, id string) (SavedEstimate, error)
	DeleteEstimate(ctx context.Context, userID int, id string) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the tables on first run.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			login TEXT UNIQUE NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS estimates (
			id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			input JSONB NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveEstimate(ctx context.Context, userID int, name string, input, result json.RawMessage) (string, error) {
	id := uuid.NewString()
	query := "INSERT INTO estimates (id, user_id, name, input, result, created_at) VALUES ($1, $2, $3, $4, $5, $6)"
	_, err := r.db.ExecContext(ctx, query, id, userID, name, []byte(input), []byte(result), time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) ListEstimates(ctx context.Context, userID int) ([]SavedEstimate, error) {
	query := "SELECT id, name, input, result, created_at FROM estimates WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedEstimate
	for rows.Next() {
		var e SavedEstimate
		var input, result []byte
		if err := rows.Scan(&e.ID, &e.Name, &input, &result, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Input = json.RawMessage(input)
		e.Result = json.RawMessage(result)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetEstimate(ctx context.Context, userID int, id string) (SavedEstimate, error) {
	query := "SELECT id, name, input, result, created_at FROM estimates WHERE user_id=$1 AND id=$2"
	var e SavedEstimate
	var input, result []byte
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&e.ID, &e.Name, &input, &result, &e.CreatedAt)
	if err != nil {
		return SavedEstimate{}, err
	}
	e.Input = json.RawMessage(input)
	e.Result = json.RawMessage(result)
	return e, nil
}

func (r *PostgresRepository) DeleteEstimate(ctx context.Context, userID int, id string) error {
	query := "DELETE FROM estimates WHERE user_id=$1 AND id=$2"
	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
