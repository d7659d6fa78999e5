package main

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/duet/cmds"
	"github.com/reusee/duet/debugs"
	"github.com/reusee/duet/docs"
	"github.com/reusee/duet/kernels"
	"github.com/reusee/duet/logs"
	"github.com/reusee/duet/modes"
	"github.com/reusee/duet/sessions"
	"github.com/reusee/duet/stores"
	"go.starlark.net/starlark"
	"golang.org/x/term"
)

const usage = `commands:
  :help                 print this help
  :show                 print the whole document
  :save                 validate and persist the document
  :reload               rebind behavior from the persisted document
  :agent                let the collaborator take a turn
  :ops                  list kernel operations
  :call <op> [args...]  call a kernel operation with string arguments
  :inspect              drop into a REPL over the live state
  :quit                 exit
a plain line is appended to the conversation and the collaborator replies
`

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		path stores.DocumentPath,
		ensure stores.EnsureDocument,
		reload stores.Reload,
		save stores.Save,
		run sessions.RunCycle,
		instance *kernels.Instance,
		tap debugs.Tap,
	) {
		content, err := ensure()
		ce(err)
		ce(reload(ctx))
		logger.InfoContext(ctx, "document loaded",
			"path", string(path),
			"ops", instance.Ops(),
		)

		session := sessions.NewSession(content)

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			pt("%s\n", string(path))
			pt("type a message, or :help for commands\n")
		}

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			if interactive {
				pt("> ")
			}
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if !strings.HasPrefix(line, ":") {
				// a plain line goes into the conversation region,
				// then the collaborator takes a turn
				session.SetSource(docs.AppendMessage(session.Source(), line))
				if _, err := save(ctx, session.Source()); err != nil {
					pt("save: %v\n", err)
					continue
				}
				if err := run(ctx, session); err != nil {
					logger.ErrorContext(ctx, "agent cycle",
						"error", err,
					)
				}
				printTail(session)
				pt("%s\n", session.Status)
				continue
			}

			fields := strings.Fields(line)
			switch fields[0] {

			case ":help":
				pt(usage)

			case ":show":
				pt("%s\n", session.Source())

			case ":save":
				res, err := save(ctx, session.Source())
				if err != nil {
					session.LastError = err.Error()
					pt("save: %v\n", err)
					continue
				}
				session.LastError = ""
				switch {
				case res.ReloadErr != nil:
					pt("reload failed: %v\n", res.ReloadErr)
				case res.KernelChanged:
					pt("Reloaded!\n")
				default:
					pt("Saved!\n")
				}

			case ":reload":
				if err := reload(ctx); err != nil {
					pt("reload: %v\n", err)
					continue
				}
				pt("Reloaded!\n")

			case ":agent":
				if err := run(ctx, session); err != nil {
					logger.ErrorContext(ctx, "agent cycle",
						"error", err,
					)
				}
				printTail(session)
				pt("%s\n", session.Status)

			case ":ops":
				for _, name := range instance.Ops() {
					pt("%s\n", name)
				}

			case ":call":
				if len(fields) < 2 {
					pt("usage: :call <op> [args...]\n")
					continue
				}
				var args []starlark.Value
				for _, arg := range fields[2:] {
					args = append(args, starlark.String(arg))
				}
				ret, err := instance.Call(ctx, fields[1], args...)
				if err != nil {
					pt("call: %v\n", err)
					continue
				}
				pt("%s\n", ret.String())

			case ":inspect":
				tap(ctx, "instance", map[string]any{
					"state": instance.State(),
					"ops":   instance.Ops(),
				})

			case ":quit", ":q":
				return

			default:
				pt("unknown command %s\n", fields[0])
			}
		}
		ce(scanner.Err())
	})
}

// printTail shows the lines since the last message separator, which is
// what the collaborator just appended.
func printTail(session *sessions.Session) {
	lines := session.Lines
	start := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == "#" || lines[i] == docs.Marker {
			start = i + 1
			break
		}
	}
	for _, line := range lines[start:] {
		pt("%s\n", line)
	}
}
