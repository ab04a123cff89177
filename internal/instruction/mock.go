package instruction

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"journalguru/internal/domain"
)

// Mock renders the canned reply used when no generator credential is
// configured. It interpolates the fields directly and never calls out.
func Mock(req domain.PromptRequest) string {
	title := cases.Title(language.English)
	style := req.Style
	if style == "" {
		style = "reflective"
	}
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "[Mock mode] %s journal %s for the %s age range\n", CountPhrase(req.Count), PromptNoun(req.Count), req.Age)
	fmt.Fprintf(sb, "Theme: %s | Lens: %s | Tone: %s\n\n", title.String(req.Situation), title.String(req.Lens), style)
	fmt.Fprintf(sb, "1. When you think about %s, what feels most alive for you right now, and what feels heavy?\n", req.Situation)
	fmt.Fprintf(sb, "   Guidance: write freely for ten minutes in a %s voice before you reread anything.\n\n", style)
	fmt.Fprintf(sb, "2. Which teaching from the %s tradition speaks to this moment, and how might you practice it this week?\n", req.Lens)
	sb.WriteString("   Guidance: name one small, concrete action.\n\n")
	sb.WriteString("3. Imagine yourself a year from now looking back on this season. What would you thank yourself for?\n")
	sb.WriteString("   Guidance: let the answer be specific rather than perfect.\n\n")
	sb.WriteString("Configure a generator API key to receive personalized prompts.")
	return sb.String()
}
