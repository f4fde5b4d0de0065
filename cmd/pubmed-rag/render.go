package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-rag/internal/report"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a text file to PDF",
	Long: `Render lays out plain text on A4 pages with the report title on every page
and a page number in the footer. Characters outside Latin-1 are
transliterated or replaced, so any input renders.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("in", "-", "input text file, or - for stdin")
	renderCmd.Flags().String("out", "", "output PDF file")
	renderCmd.Flags().String("title", "", "page header title (default from report.title)")
	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	in, _ := cmd.Flags().GetString("in")
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = appConfig.Report.Title
	}

	var r io.Reader = cmd.InOrStdin()
	if in != "-" {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("opening %s: %w", in, err)
		}
		defer f.Close()
		r = f
	}

	data, err := renderText(r, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %d bytes to %s\n", len(data), out)
	return nil
}

// renderText reads all of r and renders it with the given header title.
func renderText(r io.Reader, title string) ([]byte, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return report.New(title).Render(string(text))
}
