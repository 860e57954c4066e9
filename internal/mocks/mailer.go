package mocks

import "context"

// SentMail records a single delivery made through MockMailer.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements service.Mailer for testing
type MockMailer struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, to, subject, body string) error

	// Sent records every successful default-path delivery
	Sent []SentMail

	// Err is returned by the default implementation when set
	Err error
}

// Send implements the service.Mailer interface
func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, body)
	}

	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
