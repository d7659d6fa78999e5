package agents

import (
	"context"

	"github.com/reusee/duet/patches"
)

// Request is one collaborator round trip: the full document text at call
// time, plus the error from the previous failed batch, if any, so the
// collaborator can self-correct.
type Request struct {
	Source    string
	LastError string
}

// Response is the collaborator's proposal: an ordered edit batch and a
// free-text message destined for the conversation region. Edits are
// untrusted input; callers route them through the same patch/validate
// pipeline as manual edits.
type Response struct {
	Edits   []patches.Edit
	Message string
}

// Invoke performs one blocking request/response exchange.
type Invoke func(ctx context.Context, req Request) (*Response, error)

func userPrompt(req Request) string {
	prompt := "<source>\n" + req.Source + "\n</source>"
	if req.LastError != "" {
		prompt += "\n<error>" + req.LastError + "</error>\nPlease fix this."
	}
	return prompt
}
