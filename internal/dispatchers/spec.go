package dispatchers

type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
}

type GroupSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Category    CommandCategory
}

type CommandSpec struct {
	Name        string
	Aliases     []string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Action      CommandFunc
	Category    CommandCategory
}
