package generator

import (
	"fmt"
	"strings"

	"linkodin/models"
)

// Stage identifies one of the three ordered pipeline calls.
type Stage string

const (
	StageMarketAnalysis Stage = "market_analysis"
	StageContent        Stage = "content"
	StageImagePrompt    Stage = "image_prompt"
)

// Prompt is the message pair sent to the LLM for one stage. Stage lets
// implementations (notably the mock) know which shape of output is expected;
// Temperature is advisory and ignored when zero.
type Prompt struct {
	Stage       Stage
	System      string
	User        string
	Temperature float64
}

const analysisSystemPrompt = `You are a LinkedIn marketing strategist. Your expertise lies in understanding what makes LinkedIn posts earn engagement.

Your task is to:
1. Conduct a current market analysis for the given persona's niche
2. Craft the prompt that will drive the post-writing step

Focus on:
- What drives discussions, comments, and shares on LinkedIn
- Storytelling techniques and engagement psychology
- Current market dynamics in the persona's niche
- Content patterns that read as authentic

Answer in exactly this format:
MARKET ANALYSIS: <your analysis>
GENERATION PROMPT: <the prompt for the post writer>`

// BuildMarketAnalysisPrompt composes the stage-1 prompt from the persona
// attributes plus the requested topic and optional extra context.
func BuildMarketAnalysisPrompt(p models.Persona, topic, context string) Prompt {
	var sb strings.Builder
	sb.WriteString("Persona Details:\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", p.Name))
	sb.WriteString(fmt.Sprintf("- Niche: %s\n", p.Niche))
	sb.WriteString(fmt.Sprintf("- Target Audience: %s\n", p.TargetAudience))
	sb.WriteString(fmt.Sprintf("- Language: %s\n", p.Language))
	sb.WriteString(fmt.Sprintf("- Tone: %s\n", p.Tone))
	sb.WriteString(fmt.Sprintf("- Industry: %s\n", p.Industry))
	sb.WriteString(fmt.Sprintf("- Experience Level: %s\n", p.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("- Content Themes: %s\n", strings.Join(p.ContentThemes, ", ")))
	sb.WriteString(fmt.Sprintf("- Engagement Style: %s\n", p.EngagementStyle))
	sb.WriteString(fmt.Sprintf("- Brand Keywords: %s\n", strings.Join(p.BrandKeywords, ", ")))
	sb.WriteString(fmt.Sprintf("- Posting Frequency: %s\n", p.PostingFreq))
	sb.WriteString(fmt.Sprintf("\nTopic: %s\n", topic))
	if context != "" {
		sb.WriteString(fmt.Sprintf("Additional Context: %s\n", context))
	}
	sb.WriteString("\nProvide the MARKET ANALYSIS and the GENERATION PROMPT for this persona and topic.")

	return Prompt{
		Stage:       StageMarketAnalysis,
		System:      analysisSystemPrompt,
		User:        sb.String(),
		Temperature: 0.8,
	}
}

const contentSystemPrompt = `You are an experienced LinkedIn content creator. You write posts that feel human, hook readers from the first line, and end with a question that invites comments. Match the persona's voice exactly. Output only the post text.`

// BuildContentPrompt composes the stage-2 prompt. The user message is the
// refined prompt produced by stage 1, not the raw topic.
func BuildContentPrompt(generationPrompt string, p models.Persona) Prompt {
	var sb strings.Builder
	sb.WriteString(generationPrompt)
	sb.WriteString(fmt.Sprintf("\n\nWrite in first person as %s, in %s, with a %s tone.", p.Name, p.Language, p.Tone))

	return Prompt{
		Stage:       StageContent,
		System:      contentSystemPrompt,
		User:        sb.String(),
		Temperature: 0.9,
	}
}

const imageSystemPrompt = `You are a visual content strategist. Given a LinkedIn post, produce one detailed image-generation prompt for a visual that grabs attention in the feed, complements the post, and matches the persona's brand. Output only the image prompt.`

// BuildImagePrompt composes the stage-3 prompt from the stage-2 content, the
// stage-1 analysis, and the persona's visual identity.
func BuildImagePrompt(content, analysis string, p models.Persona) Prompt {
	var sb strings.Builder
	sb.WriteString("Post Content:\n")
	sb.WriteString(content)
	sb.WriteString("\n\nMarket Analysis Context:\n")
	sb.WriteString(analysis)
	sb.WriteString("\n\nPersona:\n")
	sb.WriteString(fmt.Sprintf("- Niche: %s\n", p.Niche))
	sb.WriteString(fmt.Sprintf("- Industry: %s\n", p.Industry))
	sb.WriteString(fmt.Sprintf("- Brand Keywords: %s\n", strings.Join(p.BrandKeywords, ", ")))
	sb.WriteString(fmt.Sprintf("- Engagement Style: %s\n", p.EngagementStyle))
	sb.WriteString("\nGenerate the image prompt for this post.")

	return Prompt{
		Stage:       StageImagePrompt,
		System:      imageSystemPrompt,
		User:        sb.String(),
		Temperature: 0.7,
	}
}
