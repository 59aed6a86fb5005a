package agent

import (
	"fmt"
	"strings"
)

// PayloadKind tags the two shapes a responder answer can take.
type PayloadKind int

const (
	PayloadText PayloadKind = iota
	PayloadFragments
)

// Fragment is one piece of a structured answer: either text, or an arbitrary
// value coerced to its string form when flattened.
type Fragment struct {
	Text string
	Raw  interface{}
}

// AnswerPayload is the tagged variant returned by a responder gateway: a
// single text value or an ordered sequence of fragments.
type AnswerPayload struct {
	Kind      PayloadKind
	Text      string
	Fragments []Fragment
}

func TextPayload(text string) AnswerPayload {
	return AnswerPayload{Kind: PayloadText, Text: text}
}

func FragmentsPayload(fragments ...Fragment) AnswerPayload {
	return AnswerPayload{Kind: PayloadFragments, Fragments: fragments}
}

// Flatten extracts the flat answer text. Fragments are concatenated in order;
// a non-text fragment contributes its string form. Total over the variant.
func (p AnswerPayload) Flatten() string {
	if p.Kind != PayloadFragments {
		return p.Text
	}

	var b strings.Builder
	for _, f := range p.Fragments {
		if f.Text != "" {
			b.WriteString(f.Text)
			continue
		}
		if f.Raw != nil {
			fmt.Fprintf(&b, "%v", f.Raw)
		}
	}
	return b.String()
}
