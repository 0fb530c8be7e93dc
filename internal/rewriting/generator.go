// Package rewriting orchestrates calls to the generative capability,
// producing rewritten Summary, Skills and Project Experience text constrained
// by extracted keywords and ranked projects.
package rewriting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// bulletsPerProject is the number of bullet lines requested per project
// write-up.
const bulletsPerProject = 3

// GenerateRequest is the structured input for one section rewrite. It is the
// full contract at the generative capability boundary.
type GenerateRequest struct {
	Section  types.SectionName
	JobText  string
	Keywords []string
	// ResumeText is the full resume with user overrides spliced in; it gives
	// the model cross-section context beyond the section being rewritten.
	ResumeText       string
	OriginalText     string
	SelectedProjects []types.RankedProject
}

// Generator is the narrow capability interface over the generative text
// service: rewrite text given constraints. Implementations must tolerate
// cancellation via ctx; callers tolerate any error, empty, or malformed
// response without failing the pipeline.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// GeminiGenerator implements Generator on the Gemini client.
type GeminiGenerator struct {
	client llm.Client
}

// NewGeminiGenerator builds a Generator backed by Gemini.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	return &GeminiGenerator{client: client}, nil
}

// NewGeneratorFromClient wraps an existing LLM client.
func NewGeneratorFromClient(client llm.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Generate builds the section prompt and requests a rewrite at the advanced
// tier (section rewriting needs nuance and instruction following). The reply
// is requested with the JSON response MIME so the model returns the strict
// single-key object the prompt demands.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	prompt, err := BuildSectionPrompt(req)
	if err != nil {
		return "", err
	}
	return g.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// BuildSectionPrompt assembles the prompt for a section rewrite from the
// embedded templates. Job text and original text are truncated to the prompt
// token budget so a pathological input cannot blow the context window.
func BuildSectionPrompt(req GenerateRequest) (string, error) {
	var key string
	switch req.Section {
	case types.SectionSkills:
		key = "skills-rewrite"
	case types.SectionProjectExperience:
		key = "projects-rewrite"
	case types.SectionSummary:
		key = "summary-rewrite"
	default:
		return "", fmt.Errorf("no prompt for section %q", req.Section)
	}

	var sb strings.Builder

	intro := prompts.MustGet("optimizer.json", key)
	if req.Section == types.SectionProjectExperience {
		intro = prompts.Format(intro, map[string]string{
			"Projects":    formatProjects(req.SelectedProjects),
			"BulletCount": fmt.Sprintf("%d", bulletsPerProject),
		})
	}
	sb.WriteString(intro)
	sb.WriteString("\n")

	budget := llm.DefaultPromptTokenBudget / 3
	contextTemplate := prompts.MustGet("optimizer.json", "section-context")
	sb.WriteString(prompts.Format(contextTemplate, map[string]string{
		"JobText":      llm.TruncateToTokens(req.JobText, budget),
		"Keywords":     strings.Join(req.Keywords, ", "),
		"ResumeText":   llm.TruncateToTokens(req.ResumeText, budget),
		"OriginalText": llm.TruncateToTokens(req.OriginalText, budget),
	}))

	return sb.String(), nil
}

// formatProjects renders the selected projects as prompt context.
func formatProjects(projects []types.RankedProject) string {
	var sb strings.Builder
	for i, rp := range projects {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rp.Project.Title))
		if rp.Project.Description != "" {
			sb.WriteString(rp.Project.Description)
			sb.WriteString("\n")
		}
		if len(rp.Project.Tags) > 0 {
			sb.WriteString("Tags: ")
			sb.WriteString(strings.Join(rp.Project.Tags, ", "))
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
