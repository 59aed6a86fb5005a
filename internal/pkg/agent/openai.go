package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultModel     = shared.ResponsesModel("gpt-5.1")
	previewByteLimit = 128 * 1024 // cap what we send to the model
)

var (
	// ErrMissingAPIKey is returned when OPENAI_API_KEY was not configured.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")
)

// OpenAIResponder answers questions over the OpenAI Responses API.
type OpenAIResponder struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func NewOpenAIResponder(apiKey, model string) *OpenAIResponder {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	r := &OpenAIResponder{client: &client, model: defaultModel}
	if model != "" {
		r.model = shared.ResponsesModel(model)
	}
	return r
}

// NewResponderFromEnv builds an OpenAIResponder using the OPENAI_API_KEY env var.
func NewResponderFromEnv() (*OpenAIResponder, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewOpenAIResponder(apiKey, ""), nil
}

// Ask sends the question plus a bounded snapshot of the employee table and
// returns the assistant's answer.
func (r *OpenAIResponder) Ask(ctx context.Context, question string, data DataHandle) (AnswerPayload, error) {
	if r == nil || r.client == nil {
		return AnswerPayload{}, errors.New("OpenAIResponder is not initialized")
	}

	snapshot, err := data.Snapshot(ctx, previewByteLimit)
	if err != nil {
		return AnswerPayload{}, fmt.Errorf("snapshot employee table: %w", err)
	}

	resp, err := r.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: r.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(responderSystemPrompt, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(buildResponderPrompt(question, snapshot), responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return AnswerPayload{}, fmt.Errorf("call OpenAI: %w", err)
	}

	output := strings.TrimSpace(resp.OutputText())
	if output == "" {
		return AnswerPayload{}, errors.New("model returned an empty response")
	}

	return TextPayload(output), nil
}

// OpenAIAuditor classifies question/answer pairs over the same API.
type OpenAIAuditor struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func NewOpenAIAuditor(apiKey, model string) *OpenAIAuditor {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	a := &OpenAIAuditor{client: &client, model: defaultModel}
	if model != "" {
		a.model = shared.ResponsesModel(model)
	}
	return a
}

// NewAuditorFromEnv builds an OpenAIAuditor using the OPENAI_API_KEY env var.
func NewAuditorFromEnv() (*OpenAIAuditor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewOpenAIAuditor(apiKey, ""), nil
}

// Audit asks the auditor model for a one-line verdict. An unparsable reply is
// reported as an error; the orchestrator degrades it, never this layer.
func (a *OpenAIAuditor) Audit(ctx context.Context, question, answer string) (Verdict, error) {
	if a == nil || a.client == nil {
		return Verdict{}, errors.New("OpenAIAuditor is not initialized")
	}

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: a.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(auditorSystemPrompt, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(buildAuditorPrompt(question, answer), responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("call OpenAI: %w", err)
	}

	return ParseVerdict(resp.OutputText())
}
