package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"uniformnavi/internal/models"
)

type mockContactRepo struct {
	saved []*models.ContactSubmission
	err   error
}

func (m *mockContactRepo) Create(_ context.Context, c *models.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	c.ID = "contact-1"
	c.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	m.saved = append(m.saved, c)
	return nil
}

func (m *mockContactRepo) List(_ context.Context, limit, offset int) ([]*models.ContactSubmission, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.saved, nil
}

type mockInquiryRepo struct {
	saved []*models.AdvisorInquiry
	err   error
}

func (m *mockInquiryRepo) Create(_ context.Context, in *models.AdvisorInquiry) error {
	if m.err != nil {
		return m.err
	}
	in.ID = "inquiry-1"
	in.CreatedAt = time.Now()
	m.saved = append(m.saved, in)
	return nil
}

func (m *mockInquiryRepo) List(_ context.Context, limit, offset int) ([]*models.AdvisorInquiry, error) {
	return m.saved, m.err
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

type mockMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
	// ctxErr records whether the context was already cancelled at send time.
	ctxErr error
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErr = ctx.Err()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *mockMailer) HealthCheck(context.Context) error { return m.err }

func (m *mockMailer) Close() error { return nil }

var errUnreachable = errors.New("dial tcp: connection refused")
