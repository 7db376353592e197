package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/meetprep/internal/pipeline"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Preparation completed
	ExitGenerationFailed = 1 // A pipeline stage failed to generate
	ExitError            = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var genErr *pipeline.GenerationError
		if errors.As(err, &genErr) {
			os.Exit(ExitGenerationFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
