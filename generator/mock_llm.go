package generator

import (
	"context"
	"strings"
)

// MockLLM is a deterministic stand-in so the full pipeline can run without
// an API key (the --mock flag). It keys off the prompt's stage and produces
// output of the shape each stage expects.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	var sb strings.Builder
	switch prompt.Stage {
	case StageMarketAnalysis:
		sb.WriteString("MARKET ANALYSIS: ")
		sb.WriteString("Demand in this niche currently favors first-person stories with one concrete takeaway. ")
		sb.WriteString("Posts that open with a contrarian observation and close with a direct question earn the most comments.\n")
		sb.WriteString("Input considered:\n")
		sb.WriteString(prompt.User)
		sb.WriteString("\nGENERATION PROMPT: ")
		sb.WriteString("Write a 150-200 word LinkedIn post on the topic above. ")
		sb.WriteString("Open with a hook, share one personal lesson, give two actionable takeaways, and end with a question to the reader.")
	case StageContent:
		sb.WriteString("Three years in, I finally understood what my audience actually wanted.\n\n")
		sb.WriteString("Not polish. Not jargon. Just one honest lesson they could use the same day.\n\n")
		sb.WriteString("Two things that changed my results:\n")
		sb.WriteString("1. Write the way you talk in a hallway conversation.\n")
		sb.WriteString("2. Cut every sentence that exists to impress rather than help.\n\n")
		sb.WriteString("What is the one lesson you wish someone had told you earlier? Share it below.")
	case StageImagePrompt:
		sb.WriteString("Clean, well-lit photo of a professional at a minimalist desk, ")
		sb.WriteString("laptop open beside a notebook, warm natural light, muted navy and white palette, ")
		sb.WriteString("confident and approachable mood, no text overlay, authentic rather than stock-photo feel.")
	default:
		sb.WriteString(prompt.User)
	}
	return sb.String(), nil
}
