package repository

import (
	"context"
	"errors"

	"uniformnavi/internal/models"
)

// ErrNotConfigured is returned by the stand-in repositories used when no
// database is configured. Content pages keep working; submissions fail.
var ErrNotConfigured = errors.New("database is not configured")

type unavailableContactRepo struct{}

func NewUnavailableContactRepo() ContactRepo { return unavailableContactRepo{} }

func (unavailableContactRepo) Create(context.Context, *models.ContactSubmission) error {
	return ErrNotConfigured
}

func (unavailableContactRepo) List(context.Context, int, int) ([]*models.ContactSubmission, error) {
	return nil, ErrNotConfigured
}

type unavailableInquiryRepo struct{}

func NewUnavailableInquiryRepo() InquiryRepo { return unavailableInquiryRepo{} }

func (unavailableInquiryRepo) Create(context.Context, *models.AdvisorInquiry) error {
	return ErrNotConfigured
}

func (unavailableInquiryRepo) List(context.Context, int, int) ([]*models.AdvisorInquiry, error) {
	return nil, ErrNotConfigured
}
