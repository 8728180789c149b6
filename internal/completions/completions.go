package completions

import (
	"sort"

	"github.com/raven-themes/raven/internal/dispatchers"
)

// CommandInfo represents a command extracted from the dispatch tree
type CommandInfo struct {
	Name        string
	Path        []string // Full path from root (e.g., ["raven", "theme", "download"])
	Summary     string
	Subcommands []string
	Flags       []FlagInfo

	// SubcommandSummaries maps each entry of Subcommands, aliases included,
	// to the summary of the command it runs.
	SubcommandSummaries map[string]string
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree and extracts all commands.
// Aliases are listed as subcommands of their parent but not visited twice.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	keys := make([]string, 0, len(node.Children))
	summaries := make(map[string]string, len(node.Children))
	for key, child := range node.Children {
		keys = append(keys, key)
		summaries[key] = child.Summary
	}
	sort.Strings(keys)

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: keys,
		Flags:       flags,

		SubcommandSummaries: summaries,
	})

	for _, key := range keys {
		child := node.Children[key]
		if child.Name != key {
			continue
		}
		extractNode(child, commands)
	}
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
