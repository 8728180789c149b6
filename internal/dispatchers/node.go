package dispatchers

type CommandFunc func(args []string, flags *ParsedFlags) error

type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

// DispatchNode is one command or group in the tree. Aliases are extra keys
// in the parent's Children map pointing at the same node.
type DispatchNode struct {
	Name        string
	Aliases     []string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}

// subcommands returns each child once, skipping alias entries.
func (n *DispatchNode) subcommands() []*DispatchNode {
	out := make([]*DispatchNode, 0, len(n.Children))
	for key, child := range n.Children {
		if key == child.Name {
			out = append(out, child)
		}
	}
	return out
}
