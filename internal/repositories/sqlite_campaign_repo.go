package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creative-copilot/backend/internal/models"
	"github.com/google/uuid"
)

// fixed width so text ordering matches time ordering
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteCampaignRepo keeps CLI-generated campaigns on the local machine.
type SQLiteCampaignRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteCampaignRepo(db *sql.DB) *SQLiteCampaignRepo {
	return &SQLiteCampaignRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *SQLiteCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	brief, err := json.Marshal(c.Brief)
	if err != nil {
		return fmt.Errorf("encode brief: %w", err)
	}
	artifacts, err := json.Marshal(c.Artifacts)
	if err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = r.now()
	c.UpdatedAt = c.CreatedAt

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO campaigns (id, user_id, brief, seed, artifacts, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID.String(), c.UserID.String(), string(brief), int64(c.Seed), string(artifacts),
		c.CreatedAt.Format(sqliteTimeLayout), c.UpdatedAt.Format(sqliteTimeLayout))
	return err
}

func (r *SQLiteCampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, brief, seed, artifacts, created_at, updated_at
		FROM campaigns WHERE id = ?
	`, id.String())
	c, err := scanSQLiteCampaign(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCampaignNotFound
	}
	return c, err
}

func (r *SQLiteCampaignRepo) UpdateArtifacts(ctx context.Context, c *models.Campaign) error {
	artifacts, err := json.Marshal(c.Artifacts)
	if err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}
	c.UpdatedAt = r.now()

	res, err := r.db.ExecContext(ctx, `
		UPDATE campaigns SET seed = ?, artifacts = ?, updated_at = ? WHERE id = ?
	`, int64(c.Seed), string(artifacts), c.UpdatedAt.Format(sqliteTimeLayout), c.ID.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *SQLiteCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *SQLiteCampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT id, user_id, brief, seed, artifacts, created_at, updated_at FROM campaigns`
	var where []string
	var args []any

	if f.UserID != nil {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID.String())
	}
	if f.Goal != nil {
		where = append(where, "json_extract(brief, '$.goal') = ?")
		args = append(args, string(*f.Goal))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, f.limit(), f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanSQLiteCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteCampaign(row rowScanner) (*models.Campaign, error) {
	var (
		c                    models.Campaign
		id, userID           string
		brief, artifacts     string
		seed                 int64
		createdAt, updatedAt string
	)
	if err := row.Scan(&id, &userID, &brief, &seed, &artifacts, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parse campaign id: %w", err)
	}
	if c.UserID, err = uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	if err := json.Unmarshal([]byte(brief), &c.Brief); err != nil {
		return nil, fmt.Errorf("decode brief: %w", err)
	}
	if err := json.Unmarshal([]byte(artifacts), &c.Artifacts); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	c.Seed = uint64(seed)
	if c.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(sqliteTimeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &c, nil
}
