package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/nhadat/marketplace/internal/application/property/usecases"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/shared/biztime"
	"github.com/nhadat/marketplace/internal/shared/config"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/services/markdown"
)

const defaultRejectionReason = "Thông tin chưa chính xác, vui lòng cập nhật."

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ModerationNotifier emails sellers when their listing is approved or
// rejected. Bodies are written as markdown and sent as sanitized HTML with
// the markdown source as the plain-text part.
type ModerationNotifier struct {
	cfg      config.EmailConfig
	sender   sender
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewModerationNotifier(cfg config.EmailConfig, renderer markdown.Renderer, logger logger.Interface) *ModerationNotifier {
	return &ModerationNotifier{
		cfg:      cfg,
		sender:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		renderer: renderer,
		logger:   logger,
	}
}

func (n *ModerationNotifier) NotifyModeration(ctx context.Context, notice usecases.ModerationNotice) error {
	if !n.cfg.Configured() {
		n.logger.Warnw("SMTP credentials missing, skipping email send", "to", notice.To)
		return nil
	}
	if notice.To == "" {
		return fmt.Errorf("notification recipient is empty")
	}

	subject, body := composeModeration(notice)
	htmlBody, err := n.renderer.Render(body)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.fromAddress(), n.fromName())
	m.SetHeader("To", notice.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Infow("moderation email sent", "to", notice.To, "status", notice.Status)
	return nil
}

func (n *ModerationNotifier) fromAddress() string {
	if n.cfg.FromAddress != "" {
		return n.cfg.FromAddress
	}
	return n.cfg.SMTPUser
}

func (n *ModerationNotifier) fromName() string {
	if n.cfg.FromName != "" {
		return n.cfg.FromName
	}
	return "Marketplace"
}

func composeModeration(notice usecases.ModerationNotice) (subject, body string) {
	var b strings.Builder
	fmt.Fprintf(&b, "## Xin chào %s,\n\n", escapeMarkdown(notice.Name))

	if notice.Status == vo.PropertyStatusApproved {
		subject = "Tin đăng của bạn đã được duyệt"
		fmt.Fprintf(&b, "Tin đăng **%s** của bạn đã được duyệt.\n\n", escapeMarkdown(notice.Title))
		b.WriteString("Tin đã hiển thị trên trang chủ marketplace.\n\n")
	} else {
		subject = "Tin đăng cần chỉnh sửa"
		reason := strings.TrimSpace(notice.Reason)
		if reason == "" {
			reason = defaultRejectionReason
		}
		fmt.Fprintf(&b, "Tin đăng **%s** của bạn đã bị từ chối.\n\n", escapeMarkdown(notice.Title))
		fmt.Fprintf(&b, "Lý do: %s\n\n", escapeMarkdown(reason))
	}

	if !notice.DecidedAt.IsZero() {
		fmt.Fprintf(&b, "Thời gian xét duyệt: %s\n\n", biztime.Display(notice.DecidedAt))
	}
	b.WriteString("Trân trọng,\nMarketplace Team\n")
	return subject, b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", "&lt;", ">", "&gt;", "#", `\#`,
)

// escapeMarkdown keeps user-written names and titles from being read as markup.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
