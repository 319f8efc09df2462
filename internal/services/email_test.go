package services

import (
	"context"
	"errors"
	"testing"

	"schoolactivities/internal/domain"
)

type mockMailer struct {
	err     error
	to      string
	subject string
	html    string
	text    string
	sendCnt int
}

func (m *mockMailer) Send(to, subject, html, text string) error {
	m.sendCnt++
	if m.err != nil {
		return m.err
	}
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return nil
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(templateName string, data any) (string, string, string, error) {
	if m.err != nil {
		return "", "", "", m.err
	}
	return "subject:" + templateName, "<p>html</p>", "text", nil
}

func TestEmailService_SendSignupConfirmation(t *testing.T) {
	mailer := &mockMailer{}
	svc := NewEmailService(mailer, &mockRenderer{})

	data := &domain.SignupConfirmationEmailData{
		Email:        "newemail@mergington.edu",
		ActivityName: "Chess Club",
	}
	if err := svc.SendSignupConfirmation(context.Background(), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailer.to != "newemail@mergington.edu" {
		t.Fatalf("unexpected recipient: %q", mailer.to)
	}
	if mailer.subject != "subject:signup_confirmation" {
		t.Fatalf("unexpected subject: %q", mailer.subject)
	}
}

func TestEmailService_SendSignupConfirmation_NilData(t *testing.T) {
	svc := NewEmailService(&mockMailer{}, &mockRenderer{})
	if err := svc.SendSignupConfirmation(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil data")
	}
}

func TestEmailService_SendSignupConfirmation_RenderError(t *testing.T) {
	mailer := &mockMailer{}
	svc := NewEmailService(mailer, &mockRenderer{err: errors.New("render failed")})

	err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mailer.sendCnt != 0 {
		t.Fatal("nothing should be sent when rendering fails")
	}
}

func TestEmailService_SendSignupConfirmation_SendError(t *testing.T) {
	svc := NewEmailService(&mockMailer{err: errors.New("smtp down")}, &mockRenderer{})

	if err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{}); err == nil {
		t.Fatal("expected error")
	}
}
