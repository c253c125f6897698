package mailer

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/callcenter/pkg/config"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Client struct {
	cfg    config.Mailer
	dialer *gomail.Dialer
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) SendMessage(subject, message string, recipients []string) error {
	if err := c.dialer.DialAndSend(c.NewMessage(subject, message, recipients)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) NewMessage(subject, message string, recipients []string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)

	if isHTML(message) {
		msg.SetBody("text/html", message)
	} else {
		msg.SetBody("text/plain", message)
	}

	return msg
}

func isHTML(message string) bool {
	return htmlTag.MatchString(message)
}

// Noop drops every message. Used when MAILER_HOST is empty.
type Noop struct{}

func (Noop) SendMessage(string, string, []string) error {
	return nil
}
