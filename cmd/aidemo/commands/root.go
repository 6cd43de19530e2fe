// Package commands implements the aidemo command line, which runs the demos
// offline against the configured corpus.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dgallion1/aidemo/internal/config"
	"github.com/dgallion1/aidemo/internal/corpus"
	"github.com/dgallion1/aidemo/internal/parser"
	"github.com/dgallion1/aidemo/internal/qa"
)

type rootOptions struct {
	configFile string
	corpusFile string
	noColor    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "aidemo",
		Short: "Run the AI feature demos from the command line",
		Long: `aidemo answers questions about a business document, turns requests into
SQL statements and extracts credit score parameters from free text. All
"AI" behavior is simulated with keyword matching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file with corpus_file and topics")
	root.PersistentFlags().StringVar(&opts.corpusFile, "corpus", "", "document to answer from (.txt, .md, .html, .pdf, .docx, .csv)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newAskCmd(opts),
		newSectionsCmd(opts),
		newSQLCmd(),
		newCreditCmd(),
	)
	return root
}

// Execute runs the root command and reports any error once on stderr.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		errorColor.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// service builds a Q&A service from the flags.
func (o *rootOptions) service(delay time.Duration) (*qa.Service, error) {
	var fc config.FileConfig
	if o.configFile != "" {
		var err error
		if fc, err = config.LoadFile(o.configFile); err != nil {
			return nil, err
		}
	}

	path := o.corpusFile
	if path == "" {
		path = fc.CorpusFile
	}

	doc := corpus.Default()
	if path != "" {
		var err error
		doc, err = parser.LoadCorpus(path, parser.Options{PDFFallbackPdftotext: true})
		if err != nil {
			return nil, err
		}
	}
	return qa.NewService(qa.Options{Corpus: &doc, Topics: fc.Topics, Delay: delay}), nil
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func heading(w io.Writer, text string) {
	headingColor.Fprintln(w, text)
}

func field(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%s: ", label)
	fmt.Fprintln(w, value)
}
