package email

// PreviewData is sample data for every template, keyed by template name.
// Used to render templates locally and in tests.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Email": "sky@example.com",
	},
}
