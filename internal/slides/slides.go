// Package slides converts a markdown preparation document into a slide
// deck and renders it as a PPTX file.
package slides

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrEmptyDeck is returned when the markdown yields no slides.
var ErrEmptyDeck = errors.New("document produced no slides")

// maxBulletsPerSlide keeps slides readable. Overflow bullets continue on a
// numbered continuation slide.
const maxBulletsPerSlide = 8

// Slide is one rendered slide.
type Slide struct {
	Title   string
	Bullets []string
}

// BuildDeck parses markdown and maps level 1-2 headings to slides and list
// items and paragraphs to bullets. Content appearing before the first
// heading lands on an "Overview" slide.
func BuildDeck(source []byte) ([]Slide, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var deck []Slide
	current := -1

	openSlide := func(title string) {
		deck = append(deck, Slide{Title: title})
		current = len(deck) - 1
	}

	addBullet := func(b string) {
		if b == "" {
			return
		}
		if current < 0 {
			openSlide("Overview")
		}
		if len(deck[current].Bullets) >= maxBulletsPerSlide {
			openSlide(deck[current].Title + " (cont.)")
		}
		deck[current].Bullets = append(deck[current].Bullets, b)
	}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, source)
			if node.Level <= 2 {
				openSlide(title)
			} else {
				addBullet(title)
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			addBullet(nodeText(node, source))
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			addBullet(nodeText(node, source))
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if len(deck) == 0 {
		return nil, ErrEmptyDeck
	}
	return deck, nil
}

// nodeText flattens the plain text beneath a node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteString(" ")
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
