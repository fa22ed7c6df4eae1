package email

import (
	"html/template"
)

const contactNotificationTemplate = `
{{define "contact_notification"}}
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>New contact form submission</h2>
	<table cellpadding="6">
		<tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
		<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
		{{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
		{{if .Subject}}<tr><td><strong>Subject</strong></td><td>{{.Subject}}</td></tr>{{end}}
	</table>
	<h3>Message</h3>
	<p>{{.Message}}</p>
</body>
</html>
{{end}}
`

func loadTemplates() (*template.Template, error) {
	return template.New("emails").Parse(contactNotificationTemplate)
}
