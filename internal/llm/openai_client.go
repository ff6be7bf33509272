package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkowalczyk/lullaby/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical pediatric sleep assistant for parents of babies and toddlers.

You receive aggregated sleep statistics for a single child. You must base your conclusions only on the provided data.

Your goals:
- Describe the child's current sleep in clear, supportive language aimed at a tired parent.
- Propose a realistic daily schedule (naps, bedtime routine, lights out) anchored on the child's observed average times.
- Give practical, behavioral recommendations to improve sleep consolidation.
- Give gentle guidance for handling night wakings.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, medication, or treatment.
- Focus only on routines and environment (bedtime regularity, wind-down habits, nap timing, light, noise).
- Anchor schedule times on the child's observed averages, not on generic age tables.
- If data is limited (few events, "--:--" placeholders), say that explicitly and keep suggestions conservative.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the child's sleep based on the numbers.",
  "schedule": [
    {"time": "HH:MM", "activity": "what the caregiver should do at this time"}
  ],
  "recommendations": [
    "3-6 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about bedtime regularity if variation is high."
  ],
  "night_waking_guidance": [
    "2-4 gentle, non-medical suggestions for handling night wakings.",
    "Tailor them to the observed waking frequency and duration."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this child's sleep data.

- "child_age_months" is the child's age in months.
- "stats" contains aggregated statistics: average night sleep duration, average bedtime and sleep-onset time, average wake time, bedtime variation, sleep-onset delays, nap duration, night-waking counts and durations, and the dominant emotional state at bedtime.
- "daily" contains per-day totals of night sleep and nap sleep for the same window.
- Clock times use HH:MM; "--:--" and "--" mean not enough data.

JSON:

%s

Based on this data, respond in the required JSON format.`

// PlanLLM is the interface for generating sleep plans using an LLM.
type PlanLLM interface {
	// GeneratePlan takes a context object and returns an LLM-generated sleep plan.
	GeneratePlan(ctx context.Context, planCtx *domain.PlanContext) (*domain.SleepPlanOutput, error)
}

// OpenAIClient implements PlanLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating sleep plans.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// WithSystemPrompt overrides the built-in system prompt, e.g. with one
// managed in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.systemPrompt = prompt
	}
	return c
}

// GeneratePlan calls OpenAI to generate a sleep plan.
func (c *OpenAIClient) GeneratePlan(ctx context.Context, planCtx *domain.PlanContext) (*domain.SleepPlanOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(planCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.SleepPlanOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
