package email

// Template names a file under the template directory, without ".html".
type Template string

const (
	TemplateHireRequest Template = "hire_request"
)
