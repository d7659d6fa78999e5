package sessions

import (
	"context"

	"github.com/reusee/duet/agents"
	"github.com/reusee/duet/docs"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/patches"
	"github.com/reusee/duet/stores"
)

type CycleState int

const (
	StateIdle CycleState = iota
	StateRequesting
	StateResponseReceived
	StatePatching
	StatePatchFailed
	StateSaving
	StateSaveFailed
	StateMaybeReloading
)

var cycleStateNames = [...]string{
	StateIdle:             "idle",
	StateRequesting:       "requesting",
	StateResponseReceived: "response-received",
	StatePatching:         "patching",
	StatePatchFailed:      "patch-failed",
	StateSaving:           "saving",
	StateSaveFailed:       "save-failed",
	StateMaybeReloading:   "maybe-reloading",
}

func (s CycleState) String() string {
	return cycleStateNames[s]
}

// RunCycle drives one collaborator interaction against the session: send
// the current source, apply the proposed edits, append the message to the
// conversation region, commit. Proposed edits go through the same
// patch/validate/save path as manual edits. The session is back in
// StateIdle when RunCycle returns; the outcome lives in Status and
// LastError.
type RunCycle func(ctx context.Context, session *Session) error

func (Module) RunCycle(
	invoke agents.Invoke,
	apply patches.Apply,
	save stores.Save,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunCycle {
	return func(ctx context.Context, session *Session) error {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			session.State = StateIdle
		}()

		session.State = StateRequesting
		session.Status = "Thinking..."
		source := session.Source()

		resp, err := invoke(ctx, agents.Request{
			Source:    source,
			LastError: session.LastError,
		})
		if err != nil {
			session.Status = "Error: " + truncate(err.Error(), 40)
			return logs.WrapSpan(ctx, err)
		}
		session.State = StateResponseReceived
		logger.InfoContext(ctx, "agent proposal",
			"edits", len(resp.Edits),
			"message_len", len(resp.Message),
		)

		session.State = StatePatching
		newSource, _, err := apply(source, resp.Edits)
		if err != nil {
			// feed the failure back on the next round so the
			// collaborator can self-correct
			session.State = StatePatchFailed
			session.LastError = err.Error()
			session.Status = "Edit failed: " + truncate(err.Error(), 50)
			return logs.WrapSpan(ctx, err)
		}
		session.LastError = ""

		if resp.Message != "" {
			newSource = docs.AppendMessage(newSource, resp.Message)
		}
		session.SetSource(newSource)
		session.CursorToEnd()

		session.State = StateSaving
		result, err := save(ctx, newSource)
		if err != nil {
			session.State = StateSaveFailed
			session.LastError = err.Error()
			session.Status = truncate(err.Error(), 60)
			return logs.WrapSpan(ctx, err)
		}
		if result.KernelChanged {
			session.State = StateMaybeReloading
			if result.ReloadErr != nil {
				session.Status = "Reload failed: " + truncate(result.ReloadErr.Error(), 40)
				return nil
			}
		}
		session.Status = "Agent responded!"
		return nil
	}
}
