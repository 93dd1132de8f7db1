package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

// true once a -log-* flag is given
var levelFlagged atomic.Bool

func setLevel(l slog.Level) func() {
	return func() {
		level.Set(l)
		levelFlagged.Store(true)
	}
}

func init() {
	cmds.Define("-log-debug", cmds.Func(setLevel(slog.LevelDebug)).
		Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(setLevel(slog.LevelInfo)).
		Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(setLevel(slog.LevelWarn)).
		Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(setLevel(slog.LevelError)).
		Desc("set log level to error"))
}

// modeLevel is debug in development mode until a level flag is given, and
// the flag level otherwise.
type modeLevel modes.Mode

func (m modeLevel) Level() slog.Level {
	if modes.Mode(m) == modes.ModeDevelopment && !levelFlagged.Load() {
		return slog.LevelDebug
	}
	return level.Level()
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	var handlers []slog.Handler

	// under systemd, the journal replaces the terminal
	var terminalHandler slog.Handler
	if !isSystemdService() {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: modeLevel(mode),
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminalHandler != nil {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journal field names allow only upper case letters, digits and underscores
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
