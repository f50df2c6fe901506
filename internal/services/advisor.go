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

// Recommend maps the advisor answers to a fixed list of product names.
// Unknown combinations yield an empty, non-nil list.
func Recommend(sel models.AdvisorSelection) []string {
	switch sel.Category {
	case "security":
		if sel.SecurityBrand == "best" {
			return []string{"ベストユニフォーム 警備服Aシリーズ", "ベストユニフォーム プロフェッショナルライン"}
		}
		return []string{"金星 警備服プレミアム", "金星 オールシーズンモデル"}
	case "workwear":
		switch sel.WorkwearFeature {
		case "durability":
			return []string{"タカヤ 耐久王シリーズ", "自重堂 Z-DRAGON", "寅壱 プロフェッショナル"}
		case "comfort":
			return []string{"バートル エアークラフト", "アイトス 快適作業服", "クロダルマ AIR SERIES"}
		case "cost":
			return []string{"桑和 VALUE SERIES", "アタックベース エコノミー", "コーコス 現場職人"}
		}
	case "cooling":
		switch sel.CoolingFeature {
		case "battery":
			return []string{"空調服 バッテリー重視モデル", "サンエス 長時間稼働タイプ", "村上被服 大容量バッテリー"}
		case "airflow":
			return []string{"空調服 風量重視モデル", "サンエス パワフルエアー", "村上被服 ターボファン"}
		case "lightweight":
			return []string{"空調服 軽量モデル", "サンエス フェザーライト", "村上被服 ウルトラライト"}
		}
	}
	return []string{}
}

// AdvisorCategoryLabel is the Japanese name used in advisor notifications.
func AdvisorCategoryLabel(category string) string {
	switch category {
	case "workwear":
		return "ワークウェア"
	case "security":
		return "セキュリティウェア"
	case "cooling":
		return "クーリングウェア"
	default:
		return "作業服全般"
	}
}

type AdvisorService struct {
	repo     repository.InquiryRepo
	notifier *Notifier
}

func NewAdvisorService(repo repository.InquiryRepo, notifier *Notifier) *AdvisorService {
	return &AdvisorService{repo: repo, notifier: notifier}
}

func (s *AdvisorService) Recommend(sel models.AdvisorSelection) []string {
	return Recommend(sel)
}

// SubmitInquiry stores an advisor lead with status "new" and notifies the
// administrator. Email failures are logged only.
func (s *AdvisorService) SubmitInquiry(ctx context.Context, req models.AdvisorInquiryRequest) (*models.AdvisorInquiry, error) {
	log := logger.WithCtx(ctx)

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.ContactPerson = strings.TrimSpace(req.ContactPerson)
	req.Email = strings.TrimSpace(req.Email)
	req.Category = strings.TrimSpace(req.Category)
	req.SelectedFeature = strings.TrimSpace(req.SelectedFeature)

	err := validation.ValidateStruct(&req,
		validation.Field(&req.CompanyName, ruleRequired, ruleShort),
		validation.Field(&req.ContactPerson, ruleRequired, ruleShort),
		validation.Field(&req.Email, ruleRequired, ruleShort, is.EmailFormat.Error("メールアドレスの形式が正しくありません")),
		validation.Field(&req.Category, ruleShort),
		validation.Field(&req.SelectedFeature, ruleShort),
		validation.Field(&req.Recommendations, validation.Length(0, 20)),
	)
	if err != nil {
		return nil, newValidationError(err)
	}

	recs := req.Recommendations
	if recs == nil {
		recs = []string{}
	}
	in := &models.AdvisorInquiry{
		CompanyName:     req.CompanyName,
		ContactPerson:   req.ContactPerson,
		Email:           req.Email,
		Category:        req.Category,
		SelectedFeature: req.SelectedFeature,
		Recommendations: recs,
		Status:          models.InquiryStatusNew,
	}
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, &ExternalServiceError{Service: "database", Err: err}
	}
	log.Info("advisor: inquiry stored", zap.String("id", in.ID), zap.String("category", in.Category))

	if err := s.notifier.NotifyAdvisorInquiry(ctx, in); err != nil {
		log.Error("advisor: admin notification failed", zap.String("id", in.ID), zap.Error(err))
	}
	return in, nil
}

func (s *AdvisorService) List(ctx context.Context, limit, offset int) ([]*models.AdvisorInquiry, error) {
	list, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, &ExternalServiceError{Service: "database", Err: err}
	}
	return list, nil
}
