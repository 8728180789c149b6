package dispatchers

import (
	"strings"

	"github.com/raven-themes/raven/internal/usage"
)

const defaultSuggestionsCount = 3

// handleHelpCommand resolves "raven help <cmd>" and "raven <cmd> help".
func handleHelpCommand(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error, bool) {
	for i, tok := range tokens {
		if tok != "help" {
			continue
		}

		targetPath := tokens[:i]
		if len(tokens[i+1:]) > 0 {
			targetPath = tokens[i+1:]
		}

		target := resolveNode(root, targetPath)
		if target != nil {
			return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, nil, true
		}

		suggestions := FindSimilarCommands(targetPath[0], root, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(strings.Join(targetPath, " "), suggestions...), true
	}
	return Resolution{}, nil, false
}

func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if flags == nil {
		flags = NewParsedFlags(nil)
	}
	if res, err, handled := handleHelpCommand(root, tokens, flags); handled {
		return res, err
	}

	current := root
	pathLen := 0

	for i, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			// An unknown top-level token is most likely a typo.
			if i == 0 && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				suggestions = append(suggestions, FindNestedCommands(tok, root, defaultSuggestionsCount)...)
				if len(suggestions) > defaultSuggestionsCount {
					suggestions = suggestions[:defaultSuggestionsCount]
				}
				return Resolution{}, usage.UnknownCommand(tok, suggestions...)
			}
			// Groups have no action, so unknown tokens are errors, not args.
			if current.Action == nil && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				cmdPath := strings.Join(append(append([]string{}, current.Path[1:]...), tok), " ")
				return Resolution{}, usage.UnknownCommand(cmdPath, suggestions...)
			}
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if hasHelpFlag(flags) {
		return Resolution{
			Node:    current,
			Flags:   flags,
			Execute: HelpAction(current, root),
		}, nil
	}

	valid := validFlagsForNode(current, root)
	if err := validateFlags(flags, valid); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		// No command specified: show help but exit with code 1 (like git)
		exitCode := 0
		if current == root && len(tokens) == 0 {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    flags,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Node:    current,
		Args:    args,
		Flags:   flags,
		Execute: current.Action,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)

	for _, f := range root.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	for _, f := range node.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name := f
		if idx := strings.Index(f, "="); idx != -1 {
			name = f[:idx]
		}
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}

	return current
}
