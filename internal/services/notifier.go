package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uniformnavi/internal/logger"
	"uniformnavi/internal/models"
	helpers "uniformnavi/internal/utils/helpers"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const notProvided = "未入力"

// Notifier builds administrator emails for form submissions and sends them
// through a Mailer. User input is escaped before it reaches the HTML body.
type Notifier struct {
	mailer  Mailer
	to      []string
	timeout time.Duration
	policy  *bluemonday.Policy
}

func NewNotifier(mailer Mailer, adminEmail string, timeout time.Duration) *Notifier {
	var to []string
	if adminEmail = strings.TrimSpace(adminEmail); adminEmail != "" {
		to = []string{adminEmail}
	}
	return &Notifier{
		mailer:  mailer,
		to:      to,
		timeout: timeout,
		policy:  bluemonday.StrictPolicy(),
	}
}

// deliver sends on a context detached from the caller, so a finished HTTP
// request does not abort the delivery; the notifier's own timeout applies.
func (n *Notifier) deliver(ctx context.Context, subject, html string) error {
	if len(n.to) == 0 {
		logger.WithCtx(ctx).Warn("mail: admin address is empty, notification skipped",
			zap.String("subject", subject))
		return nil
	}

	ctx = context.WithoutCancel(ctx)
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}
	if err := n.mailer.Send(ctx, n.to, subject, html); err != nil {
		return &ExternalServiceError{Service: "mail", Err: err}
	}
	return nil
}

func (n *Notifier) esc(s string) string {
	return n.policy.Sanitize(s)
}

func (n *Notifier) escOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return n.esc(s)
}

func (n *Notifier) NotifyContact(ctx context.Context, c *models.ContactSubmission) error {
	customer := []helpers.Row{
		{Label: "会社名", Value: n.esc(c.CompanyName)},
		{Label: "部署名", Value: n.escOrDefault(c.Department)},
		{Label: "担当者名", Value: n.esc(c.Name)},
		{Label: "メールアドレス", Value: n.esc(c.Email)},
		{Label: "電話番号", Value: n.esc(c.Phone)},
		{Label: "郵便番号", Value: n.esc(c.PostalCode)},
		{Label: "住所", Value: n.esc(c.Address)},
	}
	consultation := "希望しない"
	if c.NeedsConsultation {
		consultation = "希望する"
	}
	details := []helpers.Row{
		{Label: "お問い合わせ目的", Value: n.esc(c.Purpose)},
		{Label: "希望数量", Value: n.escOrDefault(c.Quantity)},
		{Label: "希望カラー", Value: n.escOrDefault(c.PreferredColors)},
		{Label: "希望素材", Value: n.escOrDefault(c.PreferredMaterials)},
		{Label: "専門スタッフからの提案", Value: consultation},
	}
	message := strings.ReplaceAll(n.esc(c.Message), "\n", "<br>")

	subject := fmt.Sprintf("【新規お問い合わせ】%s - %s", headerSafe(c.CompanyName), headerSafe(c.Purpose))
	return n.deliver(ctx, subject, helpers.BuildContactHTML(customer, details, message))
}

func (n *Notifier) NotifyAdvisorInquiry(ctx context.Context, in *models.AdvisorInquiry) error {
	details := []helpers.Row{
		{Label: "会社名", Value: n.esc(in.CompanyName)},
		{Label: "担当者名", Value: n.esc(in.ContactPerson)},
		{Label: "メールアドレス", Value: n.esc(in.Email)},
		{Label: "カテゴリー", Value: AdvisorCategoryLabel(in.Category)},
	}
	products := make([]string, 0, len(in.Recommendations))
	for _, p := range in.Recommendations {
		products = append(products, n.esc(p))
	}

	return n.deliver(ctx, "【ワークウェア提案依頼】新規お問い合わせ", helpers.BuildAdvisorInquiryHTML(details, products))
}

// headerSafe keeps user input from breaking out of the Subject header.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
