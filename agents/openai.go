package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reusee/duet/duetconfigs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/nets"
	"github.com/reusee/duet/patches"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type toolChoiceFunction struct {
	Name string `json:"name"`
}

type toolChoice struct {
	Type     string             `json:"type"`
	Function toolChoiceFunction `json:"function"`
}

type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens,omitempty"`
	Tools               []Tool        `json:"tools,omitempty"`
	ToolChoice          *toolChoice   `json:"tool_choice,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

type respondArgs struct {
	Edits []struct {
		Old string `json:"old"`
		New string `json:"new"`
	} `json:"edits"`
	Message string `json:"message"`
}

func (Module) Invoke(
	client nets.HTTPClient,
	model duetconfigs.ModelName,
	apiKey duetconfigs.APIKey,
	baseURL duetconfigs.BaseURL,
	maxTokens duetconfigs.MaxTokens,
	timeout duetconfigs.RequestTimeout,
	logger logs.Logger,
) Invoke {
	return func(ctx context.Context, req Request) (*Response, error) {
		ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout))
		defer cancel()

		logger.InfoContext(ctx, "agent request",
			"model", string(model),
			"source_len", len(req.Source),
			"has_error_context", req.LastError != "",
		)

		body, err := json.Marshal(chatCompletionRequest{
			Model: string(model),
			Messages: []chatMessage{
				{Role: "system", Content: SystemPrompt},
				{Role: "user", Content: userPrompt(req)},
			},
			MaxCompletionTokens: int(maxTokens),
			Tools:               []Tool{respondTool},
			ToolChoice: &toolChoice{
				Type: "function",
				Function: toolChoiceFunction{
					Name: RespondToolName,
				},
			},
		})
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(
			ctx,
			"POST",
			string(baseURL)+"/chat/completions",
			bytes.NewReader(body),
		)
		if err != nil {
			return nil, err
		}
		if apiKey != "" {
			httpReq.Header.Set("Authorization", "Bearer "+string(apiKey))
		}
		httpReq.Header.Set("Content-Type", "application/json")

		httpResp, err := client.Do(httpReq)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(httpResp.Body)
			return nil, logs.WrapSpan(ctx, fmt.Errorf(
				"agent bad status: %d, body: %s",
				httpResp.StatusCode,
				respBody,
			))
		}

		var resp chatCompletionResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
			return nil, fmt.Errorf("decode agent response: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("agent response has no choices")
		}

		for _, call := range resp.Choices[0].Message.ToolCalls {
			if call.Function.Name != RespondToolName {
				continue
			}
			var args respondArgs
			if err := json.Unmarshal(
				[]byte(call.Function.Arguments),
				&args,
			); err != nil {
				return nil, fmt.Errorf("decode respond arguments: %w", err)
			}
			ret := &Response{
				Message: args.Message,
			}
			for _, edit := range args.Edits {
				ret.Edits = append(ret.Edits, patches.Edit{
					Old: edit.Old,
					New: edit.New,
				})
			}
			logger.InfoContext(ctx, "agent response",
				"edits", len(ret.Edits),
				"message_len", len(ret.Message),
			)
			return ret, nil
		}

		return nil, fmt.Errorf("agent returned no tool response")
	}
}
