// Package ses is the email transport adapter. It composes a notification
// message into a raw MIME document (HTML + text + attachments) and transmits
// it through AWS SESv2's raw-message API.
package ses

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/notification"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/go-resty/resty/v2"
	"github.com/jordan-wright/email"
)

const attachmentContentType = "application/pdf"

// RawMessageAPI is the subset of the SESv2 client the sender uses.
type RawMessageAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements ports.NotificationSender over SESv2. Attachment content
// is fetched from its URL at send time.
type Sender struct {
	api         RawMessageAPI
	attachments *resty.Client
}

// NewSender creates a sender for the given SESv2 API. Attachment downloads
// are bounded by timeout.
func NewSender(api RawMessageAPI, timeout time.Duration) *Sender {
	return &Sender{
		api:         api,
		attachments: resty.New().SetTimeout(timeout),
	}
}

// Send composes msg into a raw MIME message and transmits it.
func (s *Sender) Send(ctx context.Context, msg notification.Message) error {
	e := email.NewEmail()
	e.From = msg.From
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)
	e.HTML = []byte(msg.HTML)

	for _, att := range msg.Attachments {
		resp, err := s.attachments.R().SetContext(ctx).Get(att.Path)
		if err != nil {
			return fmt.Errorf("fetch attachment %s: %w", att.Filename, err)
		}
		if resp.IsError() {
			return fmt.Errorf("fetch attachment %s: %s", att.Filename, resp.Status())
		}
		if _, err := e.Attach(bytes.NewReader(resp.Body()), att.Filename, attachmentContentType); err != nil {
			return fmt.Errorf("attach %s: %w", att.Filename, err)
		}
	}

	raw, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("compose raw message: %w", err)
	}

	_, err = s.api.SendEmail(ctx, &sesv2.SendEmailInput{
		Content: &sestypes.EmailContent{
			Raw: &sestypes.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return fmt.Errorf("send raw email: %w", err)
	}
	return nil
}
