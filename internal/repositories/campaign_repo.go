package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/creative-copilot/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignFilter struct {
	UserID *uuid.UUID
	Goal   *models.Goal
	Limit  int
	Offset int
}

func (f CampaignFilter) limit() int {
	if f.Limit <= 0 || f.Limit > 100 {
		return 20
	}
	return f.Limit
}

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, user_id, product_name, product_description, target_audience,
	goal, tone, platforms, seed, artifacts, created_at, updated_at`

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	artifacts, err := json.Marshal(c.Artifacts)
	if err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (id, user_id, product_name, product_description, target_audience,
		                       goal, tone, platforms, seed, artifacts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, c.ID, c.UserID, c.Brief.ProductName, c.Brief.ProductDescription, c.Brief.TargetAudience,
		string(c.Brief.Goal), string(c.Brief.Tone), platformsOrEmpty(c.Brief.Platforms),
		int64(c.Seed), artifacts,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateArtifacts replaces the generated output of a campaign.
func (r *CampaignRepo) UpdateArtifacts(ctx context.Context, c *models.Campaign) error {
	artifacts, err := json.Marshal(c.Artifacts)
	if err != nil {
		return fmt.Errorf("encode artifacts: %w", err)
	}

	err = r.pool.QueryRow(ctx, `
		UPDATE campaigns SET seed = $1, artifacts = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`, int64(c.Seed), artifacts, c.ID).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCampaignNotFound
	}
	return err
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", argIdx))
		args = append(args, *f.UserID)
		argIdx++
	}
	if f.Goal != nil {
		where = append(where, fmt.Sprintf("goal = $%d", argIdx))
		args = append(args, string(*f.Goal))
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, f.limit(), f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var (
		c         models.Campaign
		goal      string
		tone      string
		seed      int64
		artifacts []byte
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Brief.ProductName, &c.Brief.ProductDescription,
		&c.Brief.TargetAudience, &goal, &tone, &c.Brief.Platforms, &seed, &artifacts,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Brief.Goal = models.Goal(goal)
	c.Brief.Tone = models.Tone(tone)
	c.Seed = uint64(seed)
	if err := json.Unmarshal(artifacts, &c.Artifacts); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	return &c, nil
}

func platformsOrEmpty(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}
