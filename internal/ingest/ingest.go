// Package ingest extracts text from uploaded supporting materials. Failures
// are contained per file: a document that cannot be read is warned about and
// skipped, never failing the submission.
package ingest

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/spboyer/meetprep/internal/models"
)

// extractWorkers bounds concurrent extraction. Results stay in input order.
const extractWorkers = 4

// File is an uploaded blob with its original name.
type File struct {
	Name string
	Data []byte
}

// ExtractDocuments converts uploaded files into supporting documents,
// preserving input order. Empty blobs, blank extractions, and unreadable
// files are dropped; the latter emit a warning via slog.
func ExtractDocuments(files []File) []models.Document {
	if len(files) == 0 {
		return nil
	}

	extracted := make([]string, len(files))

	var g errgroup.Group
	g.SetLimit(extractWorkers)
	for i, f := range files {
		g.Go(func() error {
			if len(f.Data) == 0 {
				return nil
			}

			var text string
			var err error
			if strings.HasSuffix(strings.ToLower(f.Name), ".pdf") {
				text, err = extractPDF(f.Data)
			} else {
				text, err = decodeText(f.Data)
			}
			if err != nil {
				slog.Warn("could not read supporting document", "file", f.Name, "error", err)
				return nil
			}

			extracted[i] = strings.TrimSpace(text)
			return nil
		})
	}
	// Workers never return errors; failures are contained per file.
	_ = g.Wait()

	var docs []models.Document
	for i, f := range files {
		if extracted[i] == "" {
			continue
		}
		docs = append(docs, models.Document{Name: f.Name, Content: extracted[i]})
	}
	return docs
}

// extractPDF pulls text page by page. A page that yields no text contributes
// an empty string; only a document-level parse failure is an error.
func extractPDF(data []byte) (_ string, err error) {
	defer func() {
		// The pdf parser panics on some malformed inputs.
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// decodeText interprets a blob as UTF-8, replacing ill-formed sequences with
// the replacement rune instead of failing.
func decodeText(data []byte) (string, error) {
	clean, _, err := transform.Bytes(runes.ReplaceIllFormed(), data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(clean), nil
}
