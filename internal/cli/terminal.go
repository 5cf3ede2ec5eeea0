package cli

import (
	"strings"

	"github.com/bastiangx/pqwords/pkg/fuzzy"
	"github.com/charmbracelet/lipgloss"
)

// Styles colors the parts of a lookup verdict.
type Styles struct {
	Word     lipgloss.Style
	Verdict  lipgloss.Style
	Metadata lipgloss.Style
	Match    lipgloss.Style
}

// PlainStyles renders without any terminal escapes.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Word: s, Verdict: s, Metadata: s, Match: s}
}

// DefaultStyles matches the colors of the version banner.
func DefaultStyles() Styles {
	return Styles{
		Word:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		Verdict:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		Metadata: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"}),
		Match:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#c4a7e7"}),
	}
}

// FormatResult renders a lookup as a sentence without styling:
//
//	The word cat is in the dictionary. (nouns, easy, animals, general)
//	The word cta is not in the dictionary. Maybe you meant cat, cut or cot?
func FormatResult(word string, res fuzzy.Result) string {
	return RenderResult(word, res, PlainStyles())
}

// RenderResult is FormatResult with styles applied.
func RenderResult(word string, res fuzzy.Result, st Styles) string {
	var b strings.Builder
	b.WriteString("The word ")
	b.WriteString(st.Word.Render(word))

	if res.Success && len(res.Matches) > 0 {
		b.WriteString(" is in the dictionary. ")
		b.WriteString(st.Metadata.Render("(" + res.Matches[0].Metadata().String() + ")"))
		return b.String()
	}

	b.WriteString(" is ")
	b.WriteString(st.Verdict.Render("not"))
	b.WriteString(" in the dictionary.")
	if len(res.Matches) == 0 {
		return b.String()
	}

	b.WriteString(" Maybe you meant ")
	for i, m := range res.Matches {
		switch {
		case i == 0:
		case i == len(res.Matches)-1:
			b.WriteString(" or ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(st.Match.Render(m.Word()))
	}
	b.WriteString("?")
	return b.String()
}
