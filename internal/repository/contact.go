package repository

import (
	"context"
	"fmt"

	"uniformnavi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepo interface {
	Create(ctx context.Context, c *models.ContactSubmission) error
	List(ctx context.Context, limit, offset int) ([]*models.ContactSubmission, error)
}

type contactRepo struct{ db *pgxpool.Pool }

func NewContactRepo(db *pgxpool.Pool) ContactRepo { return &contactRepo{db: db} }

// Create assigns the id and stores the submission; created_at comes from the database clock.
func (r *contactRepo) Create(ctx context.Context, c *models.ContactSubmission) error {
	c.ID = uuid.NewString()

	const q = `
		INSERT INTO contacts (
			id, company_name, department, name, email, phone, postal_code, address,
			purpose, quantity, preferred_colors, preferred_materials, needs_consultation, message
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, q,
		c.ID, c.CompanyName, c.Department, c.Name, c.Email, c.Phone, c.PostalCode, c.Address,
		c.Purpose, c.Quantity, c.PreferredColors, c.PreferredMaterials, c.NeedsConsultation, c.Message,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *contactRepo) List(ctx context.Context, limit, offset int) ([]*models.ContactSubmission, error) {
	const q = `
		SELECT id, company_name, department, name, email, phone, postal_code, address,
		       purpose, quantity, preferred_colors, preferred_materials, needs_consultation,
		       message, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	list := make([]*models.ContactSubmission, 0, limit)
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(
			&c.ID, &c.CompanyName, &c.Department, &c.Name, &c.Email, &c.Phone, &c.PostalCode, &c.Address,
			&c.Purpose, &c.Quantity, &c.PreferredColors, &c.PreferredMaterials, &c.NeedsConsultation,
			&c.Message, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
