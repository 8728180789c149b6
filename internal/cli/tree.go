package cli

import (
	"github.com/raven-themes/raven/internal/actions"
	completionsactions "github.com/raven-themes/raven/internal/actions/completions"
	configactions "github.com/raven-themes/raven/internal/actions/config"
	logsactions "github.com/raven-themes/raven/internal/actions/logs"
	metaactions "github.com/raven-themes/raven/internal/actions/meta"
	themeactions "github.com/raven-themes/raven/internal/actions/theme"
	useractions "github.com/raven-themes/raven/internal/actions/user"
	"github.com/raven-themes/raven/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "raven",
		Summary: "Share window manager themes with the raven theme server",
		Usage:   "raven [--version] [--help] <command> [<args>]",
		Flags:   RootFlags,
	})

	addAccountCommands(root)
	addThemeCommands(root)
	addMetaCommands(root)
	addConfigCommands(root)
	addLogsCommands(root)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Print the raven version",
		Usage:    "raven version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryUncategorized,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "completions",
		Parent:  root,
		Summary: "Set up shell completion",
		Description: `Prints how to load completions for the given shell, or for $SHELL when
none is given. With --script the completion script itself is printed.`,
		Usage:    "raven completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     ShellArg,
		Action:   completionsactions.New(root),
		Category: dispatchers.CategoryUncategorized,
	})

	return root
}

func addAccountCommands(root *dispatchers.DispatchNode) {
	user := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "user",
		Parent:   root,
		Summary:  "Create or delete your account",
		Usage:    "raven user <command>",
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "create",
		Parent:  user,
		Summary: "Create an account on the theme server",
		Description: `Creates a new user. The password is given twice and must match;
nothing is sent to the server when it does not.`,
		Usage:    "raven user create <name> <password> <confirm>",
		Args:     CreateUserArgs,
		Action:   useractions.Create,
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "delete",
		Parent:  user,
		Summary: "Delete your account and every theme you own",
		Description: `Deletes the logged-in user on the server, together with all of the
themes they published, then logs out locally.`,
		Usage:    "raven user delete <password>",
		Args:     PasswordArg,
		Action:   useractions.Delete,
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "login",
		Parent:   root,
		Summary:  "Sign in and remember the session",
		Usage:    "raven login <name> <password>",
		Args:     LoginArgs,
		Action:   useractions.Login,
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "logout",
		Parent:   root,
		Summary:  "Forget the stored session",
		Usage:    "raven logout",
		Action:   useractions.Logout,
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "whoami",
		Parent:   root,
		Summary:  "Show the logged-in user",
		Usage:    "raven whoami",
		Action:   useractions.Whoami,
		Category: dispatchers.CategoryAccount,
	})
}

func addThemeCommands(root *dispatchers.DispatchNode) {
	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "theme",
		Parent:   root,
		Summary:  "Publish, install and manage themes",
		Usage:    "raven theme <command>",
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "upload",
		Aliases: []string{"publish"},
		Parent:  theme,
		Summary: "Publish a local theme, or update one you own",
		Description: `Packs the theme into <name>.tar in the current directory, uploads it
and removes the archive again.`,
		Usage:    "raven theme upload <name>",
		Args:     ThemeNameArg,
		Action:   themeactions.Upload,
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unpublish",
		Parent:   theme,
		Summary:  "Remove a theme you own from the server",
		Usage:    "raven theme unpublish <name>",
		Args:     ThemeNameArg,
		Action:   themeactions.Unpublish,
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "download",
		Aliases: []string{"install"},
		Parent:  theme,
		Summary: "Install a published theme",
		Description: `Downloads <name>.tar into the current directory, unpacks it into the
themes directory and fetches its metadata. Themes flagged by other users ask
for confirmation first unless --force is given. Themes that ship a script or
lemonbar file are reported after install.`,
		Usage:    "raven theme download <name> [--force]",
		Flags:    DownloadFlags,
		Args:     ThemeNameArg,
		Action:   themeactions.Download,
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Aliases:  []string{"ls"},
		Parent:   theme,
		Summary:  "List installed themes",
		Usage:    "raven theme list",
		Action:   themeactions.List,
		Category: dispatchers.CategoryLocal,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "browse",
		Parent:  theme,
		Summary: "Pick an installed theme interactively",
		Description: `Opens a full-screen picker over the installed themes with a preview
of their metadata. The directory of the chosen theme is printed on exit.`,
		Usage:    "raven theme browse",
		Action:   themeactions.Browse,
		Category: dispatchers.CategoryLocal,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "export",
		Parent:   theme,
		Summary:  "Write an installed theme to <name>.tar",
		Usage:    "raven theme export <name>",
		Args:     ThemeNameArg,
		Action:   themeactions.Export,
		Category: dispatchers.CategoryLocal,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "import",
		Parent:   theme,
		Summary:  "Install a theme from a local archive",
		Usage:    "raven theme import <file>",
		Args:     ArchiveArg,
		Action:   themeactions.Import,
		Category: dispatchers.CategoryLocal,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "remove",
		Aliases:  []string{"rm"},
		Parent:   theme,
		Summary:  "Delete an installed theme and its metadata",
		Usage:    "raven theme remove <name> [--force]",
		Flags:    RemoveFlags,
		Args:     ThemeNameArg,
		Action:   themeactions.Remove,
		Category: dispatchers.CategoryLocal,
	})
}

func addMetaCommands(root *dispatchers.DispatchNode) {
	meta := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "meta",
		Parent:   root,
		Summary:  "Read and publish theme metadata",
		Usage:    "raven meta <command>",
		Category: dispatchers.CategoryMetadata,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   meta,
		Summary:  "Show the published metadata of a theme",
		Usage:    "raven meta get <name>",
		Args:     ThemeNameArg,
		Action:   metaactions.Get,
		Category: dispatchers.CategoryMetadata,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  meta,
		Summary: "Publish a screenshot url or description",
		Description: `Updates one metadata field of a theme you own on the server and, once
accepted, in the local copy.`,
		Usage:    "raven meta set <name> <kind> <value>",
		Args:     MetaSetArgs,
		Action:   metaactions.Set,
		Category: dispatchers.CategoryMetadata,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "show",
		Parent:   meta,
		Summary:  "Show the locally stored metadata of a theme",
		Usage:    "raven meta show <name>",
		Args:     ThemeNameArg,
		Action:   metaactions.Show,
		Category: dispatchers.CategoryMetadata,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Parent:   root,
		Summary:  "Manage configuration",
		Usage:    "raven config <command>",
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print a config value",
		Usage:    "raven config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "raven config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Restore a config value to its default",
		Usage:    "raven config unset <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List every setting and where it comes from",
		Usage:    "raven config list",
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})
}

func addLogsCommands(root *dispatchers.DispatchNode) {
	logs := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "logs",
		Parent:   root,
		Summary:  "Show the raven log",
		Usage:    "raven logs [--limit=<n>] [--json]",
		Flags:    LogsFlags,
		Action:   logsactions.View,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "tail",
		Parent:   logs,
		Summary:  "Follow the raven log",
		Usage:    "raven logs tail",
		Action:   logsactions.Tail,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   logs,
		Summary:  "Empty the raven log",
		Usage:    "raven logs clear",
		Action:   logsactions.Clear,
		Category: dispatchers.CategoryConfig,
	})
}
