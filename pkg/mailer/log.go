package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogMailer writes codes to the log instead of sending mail. Used in
// development when no Mailgun credentials are configured.
type LogMailer struct {
	Logger *logrus.Logger
}

func (l *LogMailer) SendOtpMail(_ context.Context, to, code string) error {
	l.Logger.WithFields(logrus.Fields{"to": to, "code": code}).Info("otp mail suppressed")
	return nil
}
