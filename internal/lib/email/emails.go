package email

// SendWelcomeEmail sends the post-signup welcome email.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.Send(
		to,
		"Welcome to LightBnB!",
		TemplateWelcome,
		data,
	)
}
