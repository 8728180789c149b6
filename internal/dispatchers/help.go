package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/raven-themes/raven/internal/ui/style"
)

var (
	helpPager   func(string) = func(content string) { fmt.Print(content) }
	helpPagerMu sync.RWMutex
)

// SetHelpPager sets the function that displays help output.
func SetHelpPager(fn func(string)) {
	helpPagerMu.Lock()
	defer helpPagerMu.Unlock()
	helpPager = fn
}

func showHelp(content string) {
	helpPagerMu.RLock()
	fn := helpPager
	helpPagerMu.RUnlock()
	fn(content)
}

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	// account
	"user create": 1,
	"login":       2,
	"logout":      3,
	"whoami":      4,
	"user delete": 5,
	// share
	"theme upload":    1,
	"theme download":  2,
	"theme unpublish": 3,
	// metadata
	"meta get":  1,
	"meta set":  2,
	"meta show": 3,
	// local
	"theme list":   1,
	"theme browse": 2,
	"theme export": 3,
	"theme import": 4,
	"theme remove": 5,
	// config
	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
	"logs":         5,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}

	for _, child := range node.subcommands() {
		collectLeafCommands(child, out)
	}
}

func sortByDisplayOrder(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI := strings.Join(nodes[i].Path[1:], " ")
		nameJ := strings.Join(nodes[j].Path[1:], " ")
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		if hasI && hasJ {
			return orderI < orderJ
		}
		if hasI {
			return true
		}
		if hasJ {
			return false
		}
		return nameI < nameJ
	})
}

func displayName(node *DispatchNode) string {
	name := strings.Join(node.Path[1:], " ")
	if len(node.Aliases) > 0 {
		name += " (" + strings.Join(node.Aliases, ", ") + ")"
	}
	return name
}

// RenderHelp returns the help text of node.
func RenderHelp(node *DispatchNode, root *DispatchNode) string {
	var out bytes.Buffer

	if node == root {
		out.WriteString(node.Name)
		out.WriteString(" - ")
		out.WriteString(node.Summary)
		out.WriteString("\n\n")

		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")

		grouped := make(map[CommandCategory][]*DispatchNode)

		var leaves []*DispatchNode
		for _, child := range root.subcommands() {
			collectLeafCommands(child, &leaves)
		}

		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(cat.String())
			out.WriteString("\n")

			sortByDisplayOrder(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-26s", displayName(cmd))), cmd.Summary)
			}
			out.WriteString("\n")
		}

		if len(root.Flags) > 0 {
			writeFlags(&out, root.Flags)
		}

		out.WriteString("See 'raven help <command>' for detailed help on a specific command.\n")
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(node.Usage))
	out.WriteString("\n\n")

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Aliases) > 0 {
		out.WriteString("ALIASES\n   ")
		out.WriteString(strings.Join(node.Aliases, ", "))
		out.WriteString("\n\n")
	}

	if children := node.subcommands(); len(children) > 0 {
		out.WriteString("COMMANDS\n")
		sortByDisplayOrder(children)
		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			desc := a.Description
			if !a.Required {
				desc += " (optional)"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", a.Name)), desc)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		writeFlags(&out, node.Flags)
	}

	out.WriteString("See 'raven help <command>' to read about a specific command.\n")
	return out.String()
}

func writeFlags(out *bytes.Buffer, flags []FlagDescriptor) {
	out.WriteString("FLAGS\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		showHelp(RenderHelp(node, root))
		return nil
	}
}
