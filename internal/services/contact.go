package services

import (
	"context"
	"strings"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"
	"uniformnavi/internal/repository"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/zap"
)

type ContactService struct {
	repo     repository.ContactRepo
	notifier *Notifier
}

func NewContactService(repo repository.ContactRepo, notifier *Notifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

func validateContact(req *models.ContactRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.CompanyName, ruleRequired, ruleShort),
		validation.Field(&req.Department, ruleShort),
		validation.Field(&req.Name, ruleRequired, ruleShort),
		validation.Field(&req.Email, ruleRequired, ruleShort, is.EmailFormat.Error("メールアドレスの形式が正しくありません")),
		validation.Field(&req.Phone, ruleRequired, ruleShort),
		validation.Field(&req.PostalCode, ruleRequired, ruleShort),
		validation.Field(&req.Address, ruleRequired, ruleShort),
		validation.Field(&req.Purpose, ruleRequired, ruleShort),
		validation.Field(&req.Quantity, ruleShort),
		validation.Field(&req.PreferredColors, ruleShort),
		validation.Field(&req.PreferredMaterials, ruleShort),
		validation.Field(&req.Message, ruleRequired, ruleLong),
	)
}

// Submit validates and stores a contact form submission, then notifies the
// administrator. Once the record is stored the submission has succeeded:
// a failed email is logged and does not change the result.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactSubmission, error) {
	log := logger.WithCtx(ctx)

	trimContact(&req)
	if err := validateContact(&req); err != nil {
		return nil, newValidationError(err)
	}

	sub := &models.ContactSubmission{
		CompanyName:        req.CompanyName,
		Department:         req.Department,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		PostalCode:         req.PostalCode,
		Address:            req.Address,
		Purpose:            req.Purpose,
		Quantity:           req.Quantity,
		PreferredColors:    req.PreferredColors,
		PreferredMaterials: req.PreferredMaterials,
		NeedsConsultation:  req.NeedsConsultation,
		Message:            req.Message,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, &ExternalServiceError{Service: "database", Err: err}
	}
	log.Info("contact: submission stored", zap.String("id", sub.ID))

	if err := s.notifier.NotifyContact(ctx, sub); err != nil {
		log.Error("contact: admin notification failed", zap.String("id", sub.ID), zap.Error(err))
	}
	return sub, nil
}

func (s *ContactService) List(ctx context.Context, limit, offset int) ([]*models.ContactSubmission, error) {
	list, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, &ExternalServiceError{Service: "database", Err: err}
	}
	return list, nil
}

func trimContact(r *models.ContactRequest) {
	for _, f := range []*string{
		&r.CompanyName, &r.Department, &r.Name, &r.Email, &r.Phone, &r.PostalCode,
		&r.Address, &r.Purpose, &r.Quantity, &r.PreferredColors, &r.PreferredMaterials,
	} {
		*f = strings.TrimSpace(*f)
	}
	r.Message = strings.TrimRight(r.Message, " \t\r\n")
}
