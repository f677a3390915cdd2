package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// ID is used by the worker to drop redelivered duplicates. Either Template
// with Data, or Subject with Text/HTML, must be set.
type EmailJob struct {
	ID       string         `json:"id"`
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "signup_verification"
	Data     map[string]any `json:"data,omitempty"`
}
