package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"uniformnavi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepo interface {
	Create(ctx context.Context, in *models.AdvisorInquiry) error
	List(ctx context.Context, limit, offset int) ([]*models.AdvisorInquiry, error)
}

type inquiryRepo struct{ db *pgxpool.Pool }

func NewInquiryRepo(db *pgxpool.Pool) InquiryRepo { return &inquiryRepo{db: db} }

func (r *inquiryRepo) Create(ctx context.Context, in *models.AdvisorInquiry) error {
	in.ID = uuid.NewString()
	if in.Status == "" {
		in.Status = models.InquiryStatusNew
	}
	if in.Recommendations == nil {
		in.Recommendations = []string{}
	}
	recsJSON, err := json.Marshal(in.Recommendations)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}

	const q = `
		INSERT INTO advisor_inquiries (
			id, company_name, contact_person, email, category, selected_feature, recommendations, status
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7::jsonb,$8)
		RETURNING created_at
	`
	err = r.db.QueryRow(ctx, q,
		in.ID, in.CompanyName, in.ContactPerson, in.Email,
		in.Category, in.SelectedFeature, recsJSON, in.Status,
	).Scan(&in.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert advisor inquiry: %w", err)
	}
	return nil
}

func (r *inquiryRepo) List(ctx context.Context, limit, offset int) ([]*models.AdvisorInquiry, error) {
	const q = `
		SELECT id, company_name, contact_person, email, category, selected_feature,
		       recommendations, status, created_at
		FROM advisor_inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list advisor inquiries: %w", err)
	}
	defer rows.Close()

	list := make([]*models.AdvisorInquiry, 0, limit)
	for rows.Next() {
		var in models.AdvisorInquiry
		var recsRaw []byte
		if err := rows.Scan(
			&in.ID, &in.CompanyName, &in.ContactPerson, &in.Email, &in.Category,
			&in.SelectedFeature, &recsRaw, &in.Status, &in.CreatedAt,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(recsRaw, &in.Recommendations)
		list = append(list, &in)
	}
	return list, rows.Err()
}
