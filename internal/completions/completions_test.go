package completions

import (
	"bytes"
	"testing"
)

func TestExtractCommands(t *testing.T) {
	root := buildTestTree()
	commands := ExtractCommands(root)

	// raven, meta, meta get, meta set, theme, theme download, version
	if len(commands) != 7 {
		t.Errorf("expected 7 commands, got %d", len(commands))
	}

	rootCmd := FindCommand(commands, []string{"raven"})
	if rootCmd == nil {
		t.Fatal("root command not found")
	}
	want := []string{"meta", "theme", "version"}
	if !pathsEqual(rootCmd.Subcommands, want) {
		t.Errorf("expected subcommands %v, got %v", want, rootCmd.Subcommands)
	}

	themeCmd := FindCommand(commands, []string{"raven", "theme"})
	if themeCmd == nil {
		t.Fatal("theme command not found")
	}
	if !pathsEqual(themeCmd.Subcommands, []string{"download", "install"}) {
		t.Errorf("expected alias listed next to its command, got %v", themeCmd.Subcommands)
	}

	download := FindCommand(commands, []string{"raven", "theme", "download"})
	if download == nil {
		t.Fatal("download command not found")
	}
	if download.Summary != "Install a published theme" {
		t.Errorf("unexpected summary %q", download.Summary)
	}
	if len(download.Flags) != 1 || download.Flags[0].HasValue {
		t.Errorf("expected one boolean flag, got %+v", download.Flags)
	}

	if FindCommand(commands, []string{"raven", "theme", "install"}) != nil {
		t.Error("aliases must not be extracted as separate commands")
	}
}

func TestFindCommand_NotFound(t *testing.T) {
	commands := []CommandInfo{
		{Name: "raven", Path: []string{"raven"}},
	}

	cmd := FindCommand(commands, []string{"raven", "nonexistent"})
	if cmd != nil {
		t.Error("expected nil for non-existent command")
	}
}

func TestPrintCompletions(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintCompletions(&buf, buildTestTree(), ShellFish); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a script")
	}

	if err := PrintCompletions(&buf, buildTestTree(), Shell("tcsh")); err == nil {
		t.Error("expected error for unsupported shell")
	}
	if err := PrintCompletions(&buf, nil, ShellBash); err == nil {
		t.Error("expected error for missing tree")
	}
}

func TestShellValid(t *testing.T) {
	for _, s := range Shells {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Shell("powershell").Valid() {
		t.Error("powershell should not be valid")
	}
}

func TestRunningShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	if got := RunningShell(); got != ShellZsh {
		t.Errorf("expected zsh, got %q", got)
	}
}

func TestSourceInstructions(t *testing.T) {
	if got := SourceInstructions(ShellBash, "raven"); got != `eval "$(raven completions bash --script)"` {
		t.Errorf("unexpected bash line %q", got)
	}
	if got := SourceInstructions(ShellFish, "raven"); got != "raven completions fish --script | source" {
		t.Errorf("unexpected fish line %q", got)
	}
	if RcFile(ShellZsh) != "~/.zshrc" {
		t.Error("unexpected zsh rc file")
	}
}
