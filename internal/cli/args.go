package cli

import "github.com/raven-themes/raven/internal/dispatchers"

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name, the directory under the themes root",
			Required:    true,
		},
	}

	ArchiveArg = []dispatchers.ArgSpec{
		{
			Name:        "file",
			Description: "Path to a theme archive (<name>.tar)",
			Required:    true,
		},
	}

	CreateUserArgs = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "User name (at most 20 characters)",
			Required:    true,
		},
		{
			Name:        "password",
			Description: "Password (at most 100 characters)",
			Required:    true,
		},
		{
			Name:        "confirm",
			Description: "The same password again",
			Required:    true,
		},
	}

	LoginArgs = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "User name",
			Required:    true,
		},
		{
			Name:        "password",
			Description: "Password",
			Required:    true,
		},
	}

	PasswordArg = []dispatchers.ArgSpec{
		{
			Name:        "password",
			Description: "Password of the logged-in user",
			Required:    true,
		},
	}

	MetaSetArgs = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Published theme you own",
			Required:    true,
		},
		{
			Name:        "kind",
			Description: "screen (alias screenshot) or description",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "New value, at most 200 characters",
			Required:    true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish",
			Required:    false,
		},
	}
)
