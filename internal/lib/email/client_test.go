package email

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/skyless/internal/config"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{
		sender:    s,
		from:      config.DefaultEmailFrom,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:    &logger,
	}
}

func TestRender_PreviewData(t *testing.T) {
	c := newTestClient(nil)

	for name, data := range PreviewData {
		html, err := c.Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, html, "sky@example.com")
	}
}

func TestRender_EscapesInput(t *testing.T) {
	c := newTestClient(nil)

	html, err := c.Render(TemplateWelcome, map[string]string{"Email": "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := newTestClient(nil).Render("missing", nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	s := &fakeSender{}
	c := newTestClient(s)

	require.NoError(t, c.SendWelcomeEmail(context.Background(), "sky@example.com"))
	require.Len(t, s.sent, 1)
	assert.Equal(t, []string{"sky@example.com"}, s.sent[0].To)
	assert.Equal(t, welcomeSubject, s.sent[0].Subject)
	assert.Equal(t, config.DefaultEmailFrom, s.sent[0].From)
	assert.Contains(t, s.sent[0].Html, "Welcome to Skyless")
}

func TestSendEmail_ProviderError(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := c.SendWelcomeEmail(context.Background(), "sky@example.com")
	assert.ErrorContains(t, err, "failed to send email: rate limited")
}

func TestSendEmail_Disabled(t *testing.T) {
	c := NewClient(&config.Config{}, func() *zerolog.Logger { l := zerolog.Nop(); return &l }())
	assert.False(t, c.Enabled())
	assert.NoError(t, c.SendWelcomeEmail(context.Background(), "sky@example.com"))
}
