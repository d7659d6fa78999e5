package sessions

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/agents"
	"github.com/reusee/duet/docs"
	"github.com/reusee/duet/kernels"
	"github.com/reusee/duet/modes"
	"github.com/reusee/duet/patches"
	"github.com/reusee/duet/stores"
)

const cycleKernel = "def op():\n    return 1\n"
const cycleDocument = cycleKernel + docs.Marker + "\n# hello"

func cycleScope(t *testing.T, invoke agents.Invoke) (dscope.Scope, string) {
	path := filepath.Join(t.TempDir(), "doc.star")
	if err := os.WriteFile(path, []byte(cycleDocument), 0644); err != nil {
		t.Fatal(err)
	}
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() stores.DocumentPath {
			return stores.DocumentPath(path)
		},
		func() agents.Invoke {
			return invoke
		},
	)
	return scope, path
}

func TestCycleAppliesAndCommits(t *testing.T) {
	var gotRequest agents.Request
	scope, path := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		gotRequest = req
		return &agents.Response{
			Edits: []patches.Edit{
				{Old: "return 1", New: "return 2"},
			},
			Message: "Changed it",
		}, nil
	})

	scope.Call(func(
		run RunCycle,
		instance *kernels.Instance,
	) {
		session := NewSession(cycleDocument)
		if err := run(context.Background(), session); err != nil {
			t.Fatal(err)
		}

		if gotRequest.Source != cycleDocument {
			t.Fatalf("got %q", gotRequest.Source)
		}

		source := session.Source()
		if !strings.Contains(source, "return 2") {
			t.Fatalf("got %q", source)
		}
		if !strings.HasSuffix(source, "# hello\n#\n# Changed it") {
			t.Fatalf("got %q", source)
		}

		persisted, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(persisted) != source {
			t.Fatal("session and storage must agree after a cycle")
		}

		// kernel changed, so the new behavior is live
		if !instance.HasOp("op") {
			t.Fatal()
		}

		if session.Status != "Agent responded!" {
			t.Fatalf("got %q", session.Status)
		}
		if session.LastError != "" {
			t.Fatalf("got %q", session.LastError)
		}
		if session.State != StateIdle {
			t.Fatalf("got %v", session.State)
		}
		if session.CursorY != len(session.Lines)-1 || session.CursorX != 0 {
			t.Fatalf("got %d:%d", session.CursorY, session.CursorX)
		}
	})
}

func TestCycleMessageOnly(t *testing.T) {
	scope, _ := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		return &agents.Response{
			Message: "hi there\n\nsecond",
		}, nil
	})

	scope.Call(func(
		run RunCycle,
	) {
		session := NewSession(cycleDocument)
		if err := run(context.Background(), session); err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(
			session.Source(),
			"# hello\n#\n# hi there\n#\n# second",
		) {
			t.Fatalf("got %q", session.Source())
		}
		// the kernel region is untouched
		if docs.KernelOf(session.Source()) != strings.TrimRight(cycleKernel, "\n") {
			t.Fatalf("got %q", docs.KernelOf(session.Source()))
		}
	})
}

func TestCyclePatchFailure(t *testing.T) {
	scope, path := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		return &agents.Response{
			Edits: []patches.Edit{
				{Old: "no such text", New: "whatever"},
			},
		}, nil
	})

	scope.Call(func(
		run RunCycle,
	) {
		session := NewSession(cycleDocument)
		err := run(context.Background(), session)
		var notFound *patches.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("got %v", err)
		}

		if session.LastError == "" {
			t.Fatal("failure must be recorded for the next round")
		}
		if !strings.HasPrefix(session.Status, "Edit failed: ") {
			t.Fatalf("got %q", session.Status)
		}
		// nothing applied, nothing written
		if session.Source() != cycleDocument {
			t.Fatalf("got %q", session.Source())
		}
		persisted, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(persisted) != cycleDocument {
			t.Fatal("storage must be untouched")
		}
	})
}

func TestCycleFeedsBackLastError(t *testing.T) {
	var gotLastError string
	scope, _ := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		gotLastError = req.LastError
		return &agents.Response{
			Message: "fixed",
		}, nil
	})

	scope.Call(func(
		run RunCycle,
	) {
		session := NewSession(cycleDocument)
		session.LastError = "Edit not found: 'nope'"
		if err := run(context.Background(), session); err != nil {
			t.Fatal(err)
		}
		if gotLastError != "Edit not found: 'nope'" {
			t.Fatalf("got %q", gotLastError)
		}
		// a clean round clears the carried error
		if session.LastError != "" {
			t.Fatalf("got %q", session.LastError)
		}
	})
}

func TestCycleAgentError(t *testing.T) {
	scope, _ := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		return nil, errors.New("connection refused")
	})

	scope.Call(func(
		run RunCycle,
	) {
		session := NewSession(cycleDocument)
		session.LastError = "stale"
		if err := run(context.Background(), session); err == nil {
			t.Fatal("should error")
		}
		if !strings.HasPrefix(session.Status, "Error: ") {
			t.Fatalf("got %q", session.Status)
		}
		// transport failures are not edit failures
		if session.LastError != "stale" {
			t.Fatalf("got %q", session.LastError)
		}
		if session.Source() != cycleDocument {
			t.Fatal()
		}
	})
}

func TestCycleReloadFailure(t *testing.T) {
	scope, path := cycleScope(t, func(ctx context.Context, req agents.Request) (*agents.Response, error) {
		return &agents.Response{
			Edits: []patches.Edit{
				// compiles, fails at execution
				{Old: "def op():\n    return 1", New: "fail(\"boom\")"},
			},
		}, nil
	})

	scope.Call(func(
		run RunCycle,
	) {
		session := NewSession(cycleDocument)
		if err := run(context.Background(), session); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(session.Status, "Reload failed: ") {
			t.Fatalf("got %q", session.Status)
		}
		// the commit stands regardless
		persisted, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(persisted) != session.Source() {
			t.Fatal()
		}
	})
}
