package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"client-hub/internal/domain/client"
	"client-hub/pkg/mailer"
)

const signupSubject = "New ATC Client Hub signup"

const signupHTMLTemplate = `<p>A new client just registered on the landing page.</p>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>Email:</strong> {{.Email}}</li>
  <li><strong>Phone:</strong> {{.Phone}}</li>
  <li><strong>Project Type:</strong> {{.ProjectType}}</li>
  <li><strong>Budget:</strong> ${{.Budget}}</li>
  <li><strong>Status:</strong> {{.Status}}</li>
</ul>
<p>Created at: {{.CreatedAt}}</p>`

const signupTextTemplate = `A new client just registered on the landing page.

Name: %s
Email: %s
Phone: %s
Project Type: %s
Budget: $%s
Status: %s
Created at: %s`

var signupHTML = template.Must(template.New("signup_notification").Parse(signupHTMLTemplate))

type signupContext struct {
	Name        string
	Email       string
	Phone       string
	ProjectType client.ProjectType
	Budget      string
	Status      client.Status
	CreatedAt   string
}

func renderSignupEmail(c *client.Client, from, recipient string) (*mailer.Email, error) {
	budget := strconv.FormatFloat(c.Budget, 'f', -1, 64)

	var htmlBuf bytes.Buffer
	err := signupHTML.Execute(&htmlBuf, signupContext{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		ProjectType: c.ProjectType,
		Budget:      budget,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf(signupTextTemplate,
		c.Name, c.Email, c.Phone, c.ProjectType, budget, c.Status, c.CreatedAt)

	return &mailer.Email{
		From:    from,
		To:      []string{recipient},
		Subject: signupSubject,
		HTML:    htmlBuf.String(),
		Text:    text,
	}, nil
}
