package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/banoqabil/jobhub/pkg/logx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

const (
	adviceModel = "gpt-4o-mini"

	adviceFallback  = "I'm sorry, I couldn't generate advice right now."
	adviceUnreached = "Error connecting to the career assistant."
	matchFallback   = "Could not analyze match."
)

// completer is the slice of the OpenAI client the advisor needs; tests
// substitute a canned implementation.
type completer interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// Advisor wraps the career-assistant model. Failures never propagate as
// errors: callers always get displayable text back.
type Advisor struct {
	completions completer
}

// New creates an advisor backed by the OpenAI API.
func New(apiKey string) *Advisor {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &Advisor{completions: &client.Chat.Completions}
}

// newWithCompleter is the test seam.
func newWithCompleter(c completer) *Advisor {
	return &Advisor{completions: c}
}

// Advise returns career guidance built from the student's bio and
// skills. An unreachable model or an empty completion yields a fixed
// fallback string.
func (a *Advisor) Advise(ctx context.Context, bio string, skills []string) string {
	prompt := fmt.Sprintf(
		"Based on my bio: %q and skills: %s, give me 3 professional career tips to succeed in the Pakistani tech market. Also, suggest one specific area of improvement.",
		bio, strings.Join(skills, ", "),
	)

	completion, err := a.completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are an expert career counselor for Bano Qabil students in Pakistan. Be encouraging and practical."),
			openai.UserMessage(prompt),
		},
		Model:       adviceModel,
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(600),
	})
	if err != nil {
		logx.Warnf("career assistant unreachable: %v", err)
		return adviceUnreached
	}

	text := completionText(completion)
	if text == "" {
		return adviceFallback
	}
	return text
}

// matchResult is the JSON shape the scoring prompt requests.
type matchResult struct {
	Percentage  int    `json:"percentage"`
	Explanation string `json:"explanation"`
}

// MatchJob scores a listing against the student's skills, 0 to 100,
// with a one-sentence explanation. Any failure yields a zero score with
// fallback text.
func (a *Advisor) MatchJob(ctx context.Context, title, description string, skills []string) (int, string) {
	prompt := fmt.Sprintf(
		"Job: %s\nDescription: %s\nUser Skills: %s\n\nRate the match from 0-100%% and provide a short 1-sentence explanation why. Respond as JSON: {\"percentage\": number, \"explanation\": string}.",
		title, description, strings.Join(skills, ", "),
	)

	completion, err := a.completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: adviceModel,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(200),
	})
	if err != nil {
		logx.Warnf("job match scoring unreachable: %v", err)
		return 0, matchFallback
	}

	result, err := parseMatch(completionText(completion))
	if err != nil {
		logx.Warnf("job match scoring returned malformed JSON: %v", err)
		return 0, matchFallback
	}
	return result.Percentage, result.Explanation
}

func completionText(completion *openai.ChatCompletion) string {
	if completion == nil || len(completion.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content)
}

func parseMatch(content string) (matchResult, error) {
	if content == "" {
		return matchResult{}, errors.New("empty completion")
	}
	var result matchResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return matchResult{}, err
	}
	return result, nil
}
