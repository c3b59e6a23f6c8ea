package model

import (
	"fmt"
	"strings"
)

// Section is one labeled block of extracted page text.
type Section struct {
	Label string
	Text  string
}

// PageBundle accumulates per-page content and contact signals for a single
// site scrape. Sections keep their append order (homepage first, then the
// keyword pages in classifier order) because that order decides the primary
// contact. Bundles are discarded once folded into a CompanyRecord.
type PageBundle struct {
	Sections []Section
	Emails   *StringSet
	Phones   *StringSet
	Address  string
}

// NewPageBundle creates an empty PageBundle.
func NewPageBundle() *PageBundle {
	return &PageBundle{
		Emails: NewStringSet(),
		Phones: NewStringSet(),
	}
}

// AddSection appends a labeled text block. Empty text is kept out of the
// bundle so an unreachable page contributes nothing.
func (b *PageBundle) AddSection(label, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.Sections = append(b.Sections, Section{Label: label, Text: text})
}

// Empty reports whether the bundle holds no page text at all.
func (b *PageBundle) Empty() bool {
	return len(b.Sections) == 0
}

// CombinedText renders all sections under labeled headers, in section order.
func (b *PageBundle) CombinedText() string {
	var sb strings.Builder
	for _, s := range b.Sections {
		fmt.Fprintf(&sb, "\n--- %s ---\n%s\n", s.Label, s.Text)
	}
	return sb.String()
}
