package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcosmenezes/portfolio/internal/content"
	"github.com/marcosmenezes/portfolio/internal/termview"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	previewLight   bool
	previewContent string
	previewWidth   int
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the portfolio to the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := previewContent
		if path == "" {
			path = os.Getenv("CONTENT_FILE")
		}
		doc, err := content.Load(path)
		if err != nil {
			return err
		}

		width := previewWidth
		if width <= 0 {
			width = terminalWidth()
		}
		fmt.Fprintln(cmd.OutOrStdout(), termview.Render(doc, !previewLight, width))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	previewCmd.Flags().BoolVar(&previewLight, "light", false, "use the light theme")
	previewCmd.Flags().StringVar(&previewContent, "content", "", "content file (default is the built-in document)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "output width (default is the terminal width)")
	rootCmd.AddCommand(previewCmd)
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			return w
		}
	}
	return 80
}
