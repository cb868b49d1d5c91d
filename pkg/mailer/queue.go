package mailer

import (
	"context"

	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

// QueueMailer dispatches mail by enqueuing jobs on RabbitMQ; the email
// worker consumes the queue and talks to Mailgun. A publish failure is
// surfaced to the caller as a delivery failure.
type QueueMailer struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueMailer(pub *helpers.RabbitPublisher) *QueueMailer {
	return &QueueMailer{Pub: pub}
}

func (q *QueueMailer) SendOtpMail(ctx context.Context, to, code string) error {
	job := EmailJob{
		To:       to,
		Template: TemplateOtpCode,
		Data:     map[string]any{"Email": to, "Code": code},
	}
	return q.Pub.PublishJSON(ctx, job)
}
