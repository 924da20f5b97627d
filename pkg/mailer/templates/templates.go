package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names put on the queue by the API.
const (
	ActivateAccount = "activate_account"
	EmailChanged    = "email_changed"
)

var tmpl = template.Must(template.New("emails").Parse(`
{{define "activate_account"}}
<html>
  <body>
    <p>Hi {{.UserName}},</p>
    <p>Welcome to Jericho. Confirm your email address to activate your account:</p>
    <p><a href="{{.ConfirmURL}}">Activate account</a></p>
    <p>If the link does not work, use this token: <code>{{.Token}}</code></p>
  </body>
</html>
{{end}}

{{define "email_changed"}}
<html>
  <body>
    <p>Hi {{.UserName}},</p>
    <p>The email address on your Jericho account was changed to {{.NewEmail}}.</p>
    <p>If this was not you, contact support immediately.</p>
  </body>
</html>
{{end}}
`))

// Subject returns the subject line for a template name.
func Subject(name string) string {
	switch name {
	case ActivateAccount:
		return "Activate Account"
	case EmailChanged:
		return "Your email address was changed"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with data.
func RenderHTML(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
