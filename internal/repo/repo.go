package repo

import (
	"context"
	"database/sql"
	"time"
)

// Profile is the account view the API exposes. Mix designs are never stored
// here; the database holds accounts and premium status only.
type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Organization string     `json:"organization"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, organization string) error
	SetPremiumUntil(ctx context.Context, id int, until time.Time) error
	ClearPremium(ctx context.Context, id int) error
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
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

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var until sql.NullTime

	query := "SELECT id, login, email, COALESCE(organization, ''), premium_until FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Organization, &until)
	if err != nil {
		return Profile{}, err
	}
	if until.Valid {
		t := until.Time
		p.PremiumUntil = &t
		p.IsPremium = time.Now().Before(t)
	}
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, organization string) error {
	query := "UPDATE users SET login=$2, organization=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, organization)
	return err
}

func (r *PostgresUserRepository) SetPremiumUntil(ctx context.Context, id int, until time.Time) error {
	query := "UPDATE users SET premium_until=$2 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, until)
	return err
}

func (r *PostgresUserRepository) ClearPremium(ctx context.Context, id int) error {
	query := "UPDATE users SET premium_until=NULL WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
