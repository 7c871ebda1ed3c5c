package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAdvisor implements RideAdvisor using Google's Gemini models.
type GeminiAdvisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiAdvisor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAdvisor(ctx context.Context, apiKey string) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Set a reasonable temperature for creative but structured output.
	model.SetTemperature(0.4)

	return &GeminiAdvisor{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (a *GeminiAdvisor) Close() {
	a.client.Close()
}

// RecommendRide asks the model to pick one ride class for the trip.
func (a *GeminiAdvisor) RecommendRide(ctx context.Context, q RecommendationQuery) (*RideRecommendation, error) {
	prompt, err := buildRidePrompt(q)
	if err != nil {
		return nil, err
	}

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (json mode should handle this,
	// but models occasionally wrap output anyway).
	cleanJSON := cleanJSONString(responseText.String())

	var result RideRecommendation
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

func buildRidePrompt(q RecommendationQuery) (string, error) {
	estimatesJSON, err := json.MarshalIndent(q.Estimates, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal estimates: %w", err)
	}

	prefs := q.UserPrefs
	if prefs == "" {
		prefs = "No specific preferences provided."
	}

	return fmt.Sprintf(`You are an intelligent cab recommendation system. Analyze these ride options:

Origin Airport: %s
Destination: %s
Number of Passengers: %d

User Preferences:
%s

Available Options:
%s

Recommend the single best option considering:
1. Price vs. comfort balance
2. Number of passengers and luggage (assume standard luggage per passenger, factor in %d passengers)
3. Safety ratings (implied by ride class, e.g. premium_black often has higher standards)
4. Estimated arrival time (shorter duration is generally better)
5. Surge pricing (lower surge is better)
6. User's stated preferences.

Provide a clear recommendation and a detailed reason for your choice.

Respond with JSON containing:
- "recommendation": chosen ride class (one of "economy", "premium_large", "premium_black", "comfort")
- "reason": detailed explanation why this is the best choice for the user.
- "price_analysis": comparison of costs if relevant.
- "safety_notes": any safety considerations.
- "passenger_suitability": how well the recommended car suits the number of passengers.
`, q.Origin, q.Destination, q.Passengers, prefs, estimatesJSON, q.Passengers), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
