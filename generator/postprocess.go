package generator

import "strings"

const (
	analysisMarker = "MARKET ANALYSIS:"
	promptMarker   = "GENERATION PROMPT:"
)

// ParseAnalysis splits the stage-1 output into the market analysis and the
// refined generation prompt. The model is asked to label both sections; if
// the GENERATION PROMPT marker is missing the text is split in half so a
// mostly-right answer still drives stage 2. Empty output, or a split that
// leaves either part empty, is a stage-1 failure reported by the caller.
func ParseAnalysis(raw string) (analysis, generationPrompt string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}

	if idx := strings.Index(raw, promptMarker); idx >= 0 {
		analysis = raw[:idx]
		generationPrompt = raw[idx+len(promptMarker):]
	} else {
		half := len(raw) / 2
		analysis = raw[:half]
		generationPrompt = raw[half:]
	}

	analysis = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(analysis), analysisMarker))
	analysis = strings.TrimSpace(analysis)
	generationPrompt = strings.TrimSpace(generationPrompt)
	if analysis == "" || generationPrompt == "" {
		return "", "", false
	}
	return analysis, generationPrompt, true
}
