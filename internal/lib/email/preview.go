package email

// PreviewData holds sample data per template, used by the
// `portfolio email-preview` command.
var PreviewData = map[Template]any{
	TemplateHireRequest: HireRequestData{
		ID:            1,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Company:       "Acme Corp",
		Position:      "Senior Backend Engineer",
		Message:       "We loved your portfolio and would like to talk about a role on our platform team.",
		Budget:        "$120k-$150k",
		Timeline:      "Q3",
		ContactMethod: "email",
	},
}
