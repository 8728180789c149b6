package cli

import "github.com/raven-themes/raven/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--host"},
			ValueHint:   "<url>",
			Description: "Theme server to talk to (overrides the host setting)",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--timeout"},
			ValueHint:   "<sec>",
			Description: "Seconds to wait for the server (overrides timeout_sec)",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	DownloadFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--force", "-f"},
			Description: "Install flagged themes without asking",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	RemoveFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--force", "-f"},
			Description: "Remove without asking for confirmation",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	LogsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--limit"},
			ValueHint:   "<n>",
			Description: "Number of lines to show (default 50)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--json"},
			Description: "Print entries as JSON",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
