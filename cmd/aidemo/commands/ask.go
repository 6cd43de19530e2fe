package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/aidemo/internal/qa"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		showContext bool
		delay       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about the document",
		Example: `  aidemo ask "What are the key steps in the sales process?"
  aidemo ask --corpus handbook.md "What is the refund policy?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(delay)
			if err != nil {
				return err
			}

			stop := startSpinner(cmd.ErrOrStderr(), "Processing...")
			res, err := svc.Ask(cmd.Context(), strings.Join(args, " "))
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading(out, "Question")
			fmt.Fprintln(out, res.Question)
			fmt.Fprintln(out)
			if showContext {
				heading(out, "Retrieved Context")
				fmt.Fprintln(out, res.Context)
				fmt.Fprintln(out)
			}
			heading(out, "Answer")
			fmt.Fprintln(out, res.Answer)
			fmt.Fprintln(out)
			heading(out, "Process")
			for _, step := range qa.Process {
				fmt.Fprintln(out, step)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showContext, "context", false, "also print the retrieved section")
	cmd.Flags().DurationVar(&delay, "delay", 0, "simulated thinking time before answering")
	return cmd
}

func newSectionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the numbered sections of the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service(0)
			if err != nil {
				return err
			}

			doc := svc.Document()
			out := cmd.OutOrStdout()
			heading(out, doc.Title)
			for _, s := range doc.Sections {
				fmt.Fprintf(out, "%3d  %-40s ~%d tokens\n", s.Index, s.Heading, s.Tokens)
			}
			if len(doc.ExampleQuestions) > 0 {
				fmt.Fprintln(out)
				heading(out, "Sample Questions")
				for _, q := range doc.ExampleQuestions {
					field(out, q.Description, q.Text)
				}
			}
			return nil
		},
	}
}
