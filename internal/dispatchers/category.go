package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryAccount                       // user create, login, logout
	CategoryShare                         // upload, download, unpublish
	CategoryMetadata                      // meta get/set/show
	CategoryLocal                         // local theme management
	CategoryConfig                        // Configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryAccount:
		return "manage your account"
	case CategoryShare:
		return "share themes"
	case CategoryMetadata:
		return "describe themes"
	case CategoryLocal:
		return "manage local themes"
	case CategoryConfig:
		return "configure raven"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryAccount,
	CategoryShare,
	CategoryMetadata,
	CategoryLocal,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
