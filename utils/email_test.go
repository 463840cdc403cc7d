package utils

import (
	"strings"
	"testing"
)

func TestSendEmailRejectsBadSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	err := SendEmail("vecino@example.com", "Verificá tu cuenta", "<p>Hola</p>")
	if err == nil {
		t.Fatal("expected an error for a non-numeric SMTP_PORT")
	}
	if !strings.Contains(err.Error(), "SMTP_PORT") {
		t.Fatalf("error should name the offending variable, got %v", err)
	}
}
