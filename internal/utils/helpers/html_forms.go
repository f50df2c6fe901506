package helpers

import (
	"fmt"
	"strings"
)

// Row is one label/value line of a notification table. Values must already be
// escaped by the caller.
type Row struct {
	Label string
	Value string
}

func BuildSimpleHTML(title, body string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif; background:#f9f9f9;">
    <table width="100%%" cellpadding="0" cellspacing="0" bgcolor="#f9f9f9">
      <tr>
        <td align="center" style="padding:32px 0;">
          <table width="600" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:8px; box-shadow:0 1px 6px #eee;">
            <tr>
              <td>
                <h2 style="color:#3b82f6; margin-top:0; border-bottom:2px solid #e2e8f0; padding-bottom:10px;">%s</h2>
                <div style="font-size:15px; color:#0f172a;">%s</div>
                <hr style="margin:32px 0 16px 0; border:0; border-top:1px solid #e2e8f0;">
                <div style="font-size:12px; color:#64748b;">このメールは自動送信されています。お問い合わせ管理システムからも確認できます。</div>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, title, body)
}

func buildSection(heading string, rows []Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, `
      <div style="background-color:#f8fafc; padding:20px; border-radius:8px; margin:20px 0; border-left:4px solid #3b82f6;">
        <h3 style="margin-top:0; color:#0f172a;">%s</h3>
        <table style="width:100%%; border-collapse:collapse;">`, heading)
	for _, r := range rows {
		fmt.Fprintf(&b, `
          <tr>
            <td style="padding:8px 0; font-weight:bold; width:30%%;">%s:</td>
            <td style="padding:8px 0;">%s</td>
          </tr>`, r.Label, r.Value)
	}
	b.WriteString(`
        </table>
      </div>`)
	return b.String()
}

// BuildContactHTML renders the administrator notification for a contact form submission.
func BuildContactHTML(customer, details []Row, messageHTML string) string {
	body := buildSection("お客様情報", customer) +
		buildSection("お問い合わせ詳細", details) +
		fmt.Sprintf(`
      <p style="font-weight:bold; margin-bottom:5px;">お問い合わせ内容:</p>
      <div style="background-color:#fff; padding:15px; border-radius:4px; border:1px solid #e2e8f0;">%s</div>
      <p style="background-color:#fef2f2; color:#b91c1c; padding:10px; border-radius:4px; font-weight:bold;">
        このお問い合わせには速やかに対応してください。
      </p>`, messageHTML)

	return BuildSimpleHTML("新しいお問い合わせが届きました", body)
}

// BuildAdvisorInquiryHTML renders the administrator notification for a product advisor lead.
func BuildAdvisorInquiryHTML(details []Row, products []string) string {
	var items strings.Builder
	for _, p := range products {
		fmt.Fprintf(&items, "<li>%s</li>", p)
	}
	if len(products) == 0 {
		items.WriteString("<li>なし</li>")
	}

	body := buildSection("問い合わせ詳細", details) +
		fmt.Sprintf(`
      <p><strong>興味のある製品:</strong></p>
      <ul style="padding-left:20px;">%s</ul>
      <p>管理画面からこの問い合わせの詳細を確認し、対応してください。</p>`, items.String())

	return BuildSimpleHTML("新しいワークウェア提案依頼がありました", body)
}
