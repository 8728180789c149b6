package completions

import (
	"strings"
	"testing"

	"github.com/raven-themes/raven/internal/dispatchers"
)

func buildTestTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "raven",
		Summary: "Test CLI",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--host"}, ValueHint: "<url>", Description: "Theme server"},
		},
	})

	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Manage themes",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "download",
		Aliases: []string{"install"},
		Parent:  theme,
		Summary: "Install a published theme",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--force", "-f"}, Description: "Don't ask"},
		},
	})

	meta := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "meta",
		Parent:  root,
		Summary: "Theme metadata",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  meta,
		Summary: "Show metadata",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  meta,
		Summary: "Publish metadata",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Print the version",
	})

	return root
}

func TestGenerateBash(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	// Verify script structure
	checks := []string{
		"_raven_completions()",
		"complete -F _raven_completions raven",
		`"theme download")`,
		"--force -f",
		"download install",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("bash script should contain %q", check)
		}
	}

	// Verify it's valid bash syntax (starts correctly)
	if !strings.HasPrefix(script, "# raven bash completion script") {
		t.Error("bash script should start with comment header")
	}
}

func TestGenerateZsh(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	// Verify script structure
	checks := []string{
		"#compdef raven",
		"_raven()",
		"_raven_commands()",
		"_describe",
		"'theme:Manage themes'",
		"'install:Install a published theme'",
		"compdef _raven raven",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("zsh script should contain %q", check)
		}
	}
}

func TestGenerateFish(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	// Verify script structure
	checks := []string{
		"complete -c raven -f",
		"__fish_use_subcommand",
		"-a theme -d 'Manage themes'",
		"__fish_seen_subcommand_from meta; and not __fish_seen_subcommand_from get set",
		"-l host -r -d 'Theme server'",
		"-d 'Don\\'t ask'",
	}

	for _, check := range checks {
		if !strings.Contains(script, check) {
			t.Errorf("fish script should contain %q", check)
		}
	}
}

func TestGenerateBash_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "raven",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateBash(commands)

	// Should still generate a valid script
	if !strings.Contains(script, "_raven_completions()") {
		t.Error("bash script should contain function definition even for empty tree")
	}
}

func TestGenerateZsh_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "raven",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateZsh(commands)

	// Should still generate a valid script
	if !strings.Contains(script, "#compdef raven") {
		t.Error("zsh script should contain compdef header even for empty tree")
	}
}

func TestGenerateFish_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "raven",
		Summary: "Test CLI",
	})

	commands := ExtractCommands(root)
	script := GenerateFish(commands)

	// Should still generate a valid script
	if !strings.Contains(script, "complete -c raven -f") {
		t.Error("fish script should contain basic completion setup even for empty tree")
	}
}
