package mailer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/pkg/config"
	"github.com/samandr77/microservices/callcenter/pkg/mailer"
)

func TestClient_NewMessage(t *testing.T) {
	t.Parallel()

	c := mailer.New(config.Mailer{Host: "smtp.example", Port: 587, From: "noreply@example.com", FromName: "Call Center"})

	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{"plain", "Ticket ticket_7 is yours", "text/plain"},
		{"html", "<p>Ticket <b>ticket_7</b> is yours</p>", "text/html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := c.NewMessage("Ticket assigned", tt.body, []string{"agent@acme.example"})

			require.Equal(t, []string{"agent@acme.example"}, msg.GetHeader("To"))
			require.Equal(t, []string{"Ticket assigned"}, msg.GetHeader("Subject"))

			var buf bytes.Buffer
			_, err := msg.WriteTo(&buf)
			require.NoError(t, err)
			require.Contains(t, buf.String(), "Content-Type: "+tt.contentType)
		})
	}
}
