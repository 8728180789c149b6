package completions

import (
	"fmt"
	"strings"
)

func programName(commands []CommandInfo) string {
	if len(commands) == 0 || commands[0].Name == "" {
		return "raven"
	}
	return commands[0].Name
}

func flagWords(cmd CommandInfo, root CommandInfo) []string {
	flags := cmd.Flags
	if len(cmd.Path) > 1 {
		flags = append(append([]FlagInfo{}, root.Flags...), cmd.Flags...)
	}

	var words []string
	for _, f := range flags {
		words = append(words, f.Names...)
	}
	return words
}

// GenerateBash returns a bash completion script. Completion is by command
// path: the words typed so far select the node whose children and flags are
// offered.
func GenerateBash(commands []CommandInfo) string {
	prog := programName(commands)
	fn := "_" + strings.ReplaceAll(prog, "-", "_") + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n\n", prog)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur path word\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    path=\"\"\n")
	b.WriteString("    for word in \"${COMP_WORDS[@]:1:COMP_CWORD-1}\"; do\n")
	b.WriteString("        [[ \"$word\" == -* ]] && continue\n")
	b.WriteString("        path=\"${path:+$path }$word\"\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$path\" in\n")

	var root CommandInfo
	if len(commands) > 0 {
		root = commands[0]
	}
	for _, cmd := range commands {
		key := strings.Join(cmd.Path[min(1, len(cmd.Path)):], " ")
		words := append(append([]string{}, cmd.Subcommands...), flagWords(cmd, root)...)
		fmt.Fprintf(&b, "        %q)\n", key)
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(words, " "))
		b.WriteString("            ;;\n")
	}

	b.WriteString("        *)\n")
	b.WriteString("            COMPREPLY=()\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, prog)
	return b.String()
}

// GenerateZsh returns a zsh completion script.
func GenerateZsh(commands []CommandInfo) string {
	prog := programName(commands)
	fn := "_" + strings.ReplaceAll(prog, "-", "_")

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", prog)

	fmt.Fprintf(&b, "%s_commands() {\n", fn)
	b.WriteString("    local -a cmds\n")
	b.WriteString("    case \"$1\" in\n")
	for _, cmd := range commands {
		if len(cmd.Subcommands) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %q)\n", strings.Join(cmd.Path[min(1, len(cmd.Path)):], " "))
		b.WriteString("            cmds=(\n")
		for _, sub := range cmd.Subcommands {
			summary := cmd.SubcommandSummaries[sub]
			fmt.Fprintf(&b, "                '%s:%s'\n", sub, zshEscape(summary))
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' cmds\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local path word\n")
	b.WriteString("    path=\"\"\n")
	b.WriteString("    for word in \"${words[@]:1:CURRENT-2}\"; do\n")
	b.WriteString("        [[ \"$word\" == -* ]] && continue\n")
	b.WriteString("        path=\"${path:+$path }$word\"\n")
	b.WriteString("    done\n")
	b.WriteString("    if [[ \"$PREFIX\" == -* ]]; then\n")
	if len(commands) > 0 {
		var flags []string
		for _, f := range commands[0].Flags {
			flags = append(flags, f.Names...)
		}
		fmt.Fprintf(&b, "        compadd -- %s\n", strings.Join(flags, " "))
	}
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	fmt.Fprintf(&b, "    %s_commands \"$path\"\n", fn)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef %s %s\n", fn, prog)
	return b.String()
}

// GenerateFish returns a fish completion script.
func GenerateFish(commands []CommandInfo) string {
	prog := programName(commands)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n\n", prog)
	fmt.Fprintf(&b, "complete -c %s -f\n", prog)

	for _, cmd := range commands {
		depth := len(cmd.Path) - 1
		for _, sub := range cmd.Subcommands {
			summary := cmd.SubcommandSummaries[sub]
			cond := "__fish_use_subcommand"
			if depth > 0 {
				cond = fmt.Sprintf("__fish_seen_subcommand_from %s; and not __fish_seen_subcommand_from %s",
					cmd.Name, strings.Join(cmd.Subcommands, " "))
			}
			fmt.Fprintf(&b, "complete -c %s -n '%s' -a %s -d '%s'\n", prog, cond, sub, fishEscape(summary))
		}

		for _, f := range cmd.Flags {
			for _, name := range f.Names {
				opt := "-s " + strings.TrimPrefix(name, "-")
				if strings.HasPrefix(name, "--") {
					opt = "-l " + strings.TrimPrefix(name, "--")
				}
				if f.HasValue {
					opt += " -r"
				}
				scope := ""
				if depth > 0 {
					scope = fmt.Sprintf(" -n '__fish_seen_subcommand_from %s'", cmd.Name)
				}
				fmt.Fprintf(&b, "complete -c %s%s %s -d '%s'\n", prog, scope, opt, fishEscape(f.Description))
			}
		}
	}

	return b.String()
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	return strings.ReplaceAll(s, ":", "\\:")
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
