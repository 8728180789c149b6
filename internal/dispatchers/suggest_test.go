package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical strings", "theme", "theme", 0},
		{"one extra character", "login", "logins", 1},
		{"transposition", "theme", "tehme", 2},
		{"substitution", "logout", "logour", 1},
		{"completely different", "meta", "xyz123", 6},
		{"empty a", "", "login", 5},
		{"empty b", "login", "", 5},
		{"both empty", "", "", 0},
		{"multibyte", "thème", "theme", 1},
		{"case insensitive", "THEME", "theme", 0},
		{"missing letter", "config", "confg", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func suggestTree() *DispatchNode {
	root := Root(RootSpec{Name: "raven"})
	for _, name := range []string{"login", "logout", "whoami", "version", "theme", "meta", "user", "config"} {
		NewNode(name, root, "", "", "", nil, nil, nil)
	}
	return root
}

func TestFindSimilarCommands(t *testing.T) {
	root := suggestTree()

	tests := []struct {
		name       string
		input      string
		maxResults int
		want       []string
	}{
		{"typo suggests login", "logn", 3, []string{"login", "logout"}},
		{"closest first", "logot", 3, []string{"logout", "login"}},
		{"max results respected", "logot", 1, []string{"logout"}},
		{"exact match excluded", "theme", 3, []string{}},
		{"nothing close", "zzzzzzzzz", 3, []string{}},
		{"theme typo", "thme", 3, []string{"theme"}},
		{"prefix", "ver", 3, []string{"version"}},
		{"one letter is no prefix", "v", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, root, tt.maxResults))
		})
	}
}

func TestFindSimilarCommands_IncludesAliases(t *testing.T) {
	root := Root(RootSpec{Name: "raven"})
	theme := Group(GroupSpec{Name: "theme", Parent: root})
	Command(CommandSpec{Name: "download", Aliases: []string{"install"}, Parent: theme, Action: func([]string, *ParsedFlags) error { return nil }})

	require.Equal(t, []string{"install"}, FindSimilarCommands("instal", theme, 3))
}

func TestFindSimilarCommands_NilNode(t *testing.T) {
	require.Nil(t, FindSimilarCommands("x", nil, 3))
}

func TestFindNestedCommands(t *testing.T) {
	root := Root(RootSpec{Name: "raven"})
	theme := Group(GroupSpec{Name: "theme", Parent: root})
	Command(CommandSpec{Name: "upload", Aliases: []string{"publish"}, Parent: theme})
	Command(CommandSpec{Name: "download", Aliases: []string{"install"}, Parent: theme})
	meta := Group(GroupSpec{Name: "meta", Parent: root})
	Command(CommandSpec{Name: "set", Parent: meta})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"exact last word", "upload", []string{"theme upload"}},
		{"alias", "install", []string{"theme install"}},
		{"typo", "uplaod", []string{"theme upload"}},
		{"prefix", "down", []string{"theme download"}},
		{"top level names are skipped", "theme", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindNestedCommands(tt.input, root, 3))
		})
	}
}

func TestCollectAllCommands(t *testing.T) {
	root := Root(RootSpec{Name: "raven"})
	theme := Group(GroupSpec{Name: "theme", Parent: root})
	Command(CommandSpec{Name: "upload", Aliases: []string{"publish"}, Parent: theme})
	NewNode("login", root, "", "", "", nil, nil, nil)

	require.ElementsMatch(t,
		[]string{"theme", "theme upload", "theme publish", "login"},
		CollectAllCommands(root, ""),
	)
}

func TestCollectAllCommands_NilNode(t *testing.T) {
	require.Nil(t, CollectAllCommands(nil, ""))
}
