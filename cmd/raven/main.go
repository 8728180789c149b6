package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/raven-themes/raven/internal/actions"
	"github.com/raven-themes/raven/internal/app"
	"github.com/raven-themes/raven/internal/cli"
	"github.com/raven-themes/raven/internal/dispatchers"
	"github.com/raven-themes/raven/internal/ui"
	"github.com/raven-themes/raven/internal/ui/style"
	"github.com/raven-themes/raven/internal/usage"
)

// valueFlags take the following token as their value when not written as
// --flag=value.
var valueFlags = map[string]bool{
	"--pager":   true,
	"--host":    true,
	"--timeout": true,
	"--limit":   true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands := extractFlagsAndCommands(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	if len(commands) == 0 && flags.HasAny("--version", "-v") {
		commands = []string{"version"}
	}

	opts, err := app.DefaultOptions()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, actions.Describe(err))
		return 1
	}
	applyFlags(&opts, flags)
	app.Configure(opts)
	defer func() { _ = app.Shutdown() }()

	provider, err := app.Config()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, actions.Describe(err))
		return 1
	}
	settings, _ := provider.GetAll()
	style.Init(opts.StyleEnabled, settings)
	dispatchers.SetHelpPager(app.NewWriter(opts, provider).Pager)

	res, err := dispatchers.Dispatch(cli.BuildTree(), commands, flags)
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	// raven with no arguments prints help and still fails
	return res.ExitCode
}

func applyFlags(opts *app.Options, flags *dispatchers.ParsedFlags) {
	opts.StyleEnabled = ui.IsTerminal(os.Stdout) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", "")
	opts.Host = flags.String("--host", "")
	if sec := flags.Int("--timeout", 0); sec > 0 {
		opts.Timeout = time.Duration(sec) * time.Second
	}
}

func report(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintln(stderr, err.Error())

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// extractFlagsAndCommands splits args into flags and positional tokens.
// Value flags given as two tokens are joined into --flag=value. Everything
// after "--" is positional, so passwords may start with a dash.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			commands = append(commands, args[i+1:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			commands = append(commands, arg)
			continue
		}

		if valueFlags[arg] && i+1 < len(args) && args[i+1] != "--" {
			flags = append(flags, arg+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, arg)
	}

	return flags, commands
}
