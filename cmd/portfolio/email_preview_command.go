package main

import (
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/lib/email"
	"github.com/spf13/cobra"
)

func newEmailPreviewCommand(a *app) *cobra.Command {
	var templateDir string

	cmd := &cobra.Command{
		Use:   "email-preview <template>",
		Short: "Render an email template with sample data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.Template(args[0])
			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}

			log := a.log
			client := email.NewClientWithSender(nil, "", templateDir, &log)
			html, err := client.Render(name, data)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateDir, "templates", email.DefaultTemplateDir, "Email template directory")
	return cmd
}
