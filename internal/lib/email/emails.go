package email

import "context"

const welcomeSubject = "Welcome to Skyless"

// SendWelcomeEmail greets a newly registered email user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to string) error {
	return c.SendEmail(ctx, to, welcomeSubject, TemplateWelcome, map[string]string{
		"Email": to,
	})
}
