package instruction

import (
	"fmt"
	"strings"

	"journalguru/internal/domain"
)

// OutputDirective is appended when the instruction is handed to a generator
// service so the reply contains nothing but the prompts.
const OutputDirective = `IMPORTANT OUTPUT FORMAT: Respond with ONLY the journal prompts and any brief guidance for each one. Do not include any introduction, preamble, or conversational text before the prompts. Do not include any closing remarks, follow-up questions, offers of further help, or commentary after the prompts. Stop immediately after the final prompt.`

// Options tweaks how Build renders the instruction.
type Options struct {
	// OutputDirective appends the strict no-commentary formatting clause.
	OutputDirective bool
}

// Build renders the journaling instruction for req. The caller validates req
// beforehand.
func Build(req domain.PromptRequest, opts Options) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "You are a thoughtful journaling coach helping someone develop meaningful self-reflection practices. Please create %s journal %s for the following person:\n\n", CountPhrase(req.Count), PromptNoun(req.Count))

	fmt.Fprintf(sb, "Age Range: %s\n", req.Age)
	fmt.Fprintf(sb, "Life Situation: %s\n", req.Situation)
	fmt.Fprintf(sb, "Philosophical/Spiritual Lens: %s\n", req.Lens)
	if req.Style != "" {
		fmt.Fprintf(sb, "Style/Focus: %s\n", req.Style)
	}

	sb.WriteString("\nRequirements:\n")
	fmt.Fprintf(sb, "- Tailor the language and complexity to be age-appropriate for someone in the %s age range\n", req.Age)
	fmt.Fprintf(sb, "- Focus specifically on helping them explore \"%s\"\n", req.Situation)
	fmt.Fprintf(sb, "- Frame the prompts through a %s perspective, incorporating relevant principles and wisdom from this tradition\n", req.Lens)
	if req.Style != "" {
		fmt.Fprintf(sb, "- Use a %s style/tone in crafting these prompts\n", req.Style)
	}
	sb.WriteString("- Make each prompt open-ended to encourage deep reflection\n")
	sb.WriteString("- Ensure prompts are specific enough to be actionable but broad enough to allow personal interpretation\n")
	sb.WriteString("- Include gentle guidance on how to approach the prompt if helpful\n")

	sb.WriteString("\nPlease provide thoughtful, compassionate prompts that will genuinely help this person gain insight and clarity.")
	if opts.OutputDirective {
		sb.WriteString("\n\n")
		sb.WriteString(OutputDirective)
	}
	return sb.String()
}

// CountPhrase renders a count token for prose; "3-5" reads as "3 to 5".
func CountPhrase(count string) string {
	if count == "3-5" {
		return "3 to 5"
	}
	return count
}

// PromptNoun picks the singular noun only for a count of exactly one.
func PromptNoun(count string) string {
	if count == "1" {
		return "prompt"
	}
	return "prompts"
}
