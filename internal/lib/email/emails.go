package email

import "fmt"

// HireRequestData is rendered into the owner notification.
type HireRequestData struct {
	ID            int64
	Name          string
	Email         string
	Company       string
	Position      string
	Message       string
	Budget        string
	Timeline      string
	ContactMethod string
}

// SendHireRequestNotification tells the site owner about a new hire request.
func (c *Client) SendHireRequestNotification(to string, data HireRequestData) error {
	subject := fmt.Sprintf("New hire request from %s", data.Name)
	if data.Company != "" {
		subject = fmt.Sprintf("New hire request from %s (%s)", data.Name, data.Company)
	}
	return c.SendEmail(to, subject, TemplateHireRequest, data)
}
