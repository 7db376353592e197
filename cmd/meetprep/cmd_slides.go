package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spboyer/meetprep/internal/slides"
)

var (
	slidesOutputPath   string
	slidesHistoryIndex string
	slidesConfigPath   string
)

func newSlidesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides [document.md]",
		Short: "Render a preparation document as a PPTX deck",
		Long: `Render a markdown preparation document as a PPTX slide deck.

Level 1-2 headings become slides; list items and paragraphs become
bullets. The input is a markdown file, or a saved history entry selected
with --from-history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: slidesCommandE,
	}

	cmd.Flags().StringVarP(&slidesOutputPath, "output", "o", "", "Output PPTX path (default: <input>.pptx)")
	cmd.Flags().StringVar(&slidesHistoryIndex, "from-history", "", "Use the history entry at this index (0 = newest)")
	cmd.Flags().StringVar(&slidesConfigPath, "config", "", "Config file (default: ./.meetprep.yaml)")

	return cmd
}

func slidesCommandE(cmd *cobra.Command, args []string) error {
	var source []byte
	outputPath := slidesOutputPath

	switch {
	case slidesHistoryIndex != "":
		index, err := strconv.Atoi(slidesHistoryIndex)
		if err != nil {
			return fmt.Errorf("invalid history index %q", slidesHistoryIndex)
		}
		historyConfigPath = slidesConfigPath
		store, err := openHistory()
		if err != nil {
			return err
		}
		entry, err := store.Get(index)
		if err != nil {
			return err
		}
		source = []byte(entry.Result)
		if outputPath == "" {
			outputPath = "meetprep-deck.pptx"
		}

	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading document %s: %w", args[0], err)
		}
		source = data
		if outputPath == "" {
			outputPath = strings.TrimSuffix(args[0], ".md") + ".pptx"
		}

	default:
		return fmt.Errorf("provide a markdown file or --from-history")
	}

	deck, err := slides.BuildDeck(source)
	if err != nil {
		if errors.Is(err, slides.ErrEmptyDeck) {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to render: the document has no headings or content.")
			return nil
		}
		return err
	}

	if err := slides.WritePPTX(outputPath, deck); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d slide(s) to %s\n", len(deck), outputPath)
	return nil
}
