// Package core wires prompt construction and the provider call into
// one generation operation with a single failure mode.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartmcq/mcqgen/internal/domain"
	"github.com/smartmcq/mcqgen/internal/plugins/ai"
)

const systemPrompt = "You are an expert educational content creator specializing in " +
	"generating high-quality multiple-choice questions. Always respond with valid JSON format."

const promptTemplate = `Generate exactly %d high-quality multiple-choice questions based on the following content/topic: %s

Requirements:
- Difficulty Level: %s
- Target Audience: %s
- Each question should have exactly 4 options (A, B, C, D)
- Only one correct answer per question
- Include a brief, clear explanation for each answer
- Questions should be educational and test understanding, not just memorization

Please format your response as a JSON array with this exact structure:
[
  {
    "question": "Your question here?",
    "options": ["Option A text", "Option B text", "Option C text", "Option D text"],
    "answer": "A) Correct option text",
    "explanation": "Brief explanation of why this answer is correct"
  }
]

Make sure the JSON is valid and properly formatted.`

// BuildPrompt renders the user prompt for one generation request.
func BuildPrompt(params domain.GenerationParams) string {
	return fmt.Sprintf(promptTemplate,
		params.NumMCQs, strings.TrimSpace(params.Content), params.Level, params.Grade)
}

// Generator asks a vendor for MCQs. The raw response text is the
// product; callers normalize it on demand.
type Generator struct {
	vendor ai.Vendor
	opts   ai.Options
}

// NewGenerator builds a Generator with the request options every
// generation uses.
func NewGenerator(vendor ai.Vendor, opts ai.Options) *Generator {
	return &Generator{vendor: vendor, opts: opts}
}

// Generate issues one completion request. Transport failures, provider
// rejections and empty responses all surface as a single generic
// condition carrying the underlying message; there is no retry.
func (g *Generator) Generate(ctx context.Context, params domain.GenerationParams) (string, error) {
	if strings.TrimSpace(params.Content) == "" {
		return "", fmt.Errorf("generation failed: no content provided")
	}

	msgs := []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: BuildPrompt(params)},
	}
	out, err := g.vendor.Send(ctx, msgs, g.opts)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("generation failed: empty response from %s", g.vendor.Name())
	}
	return out, nil
}
