package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconCursor   = "\uf054" // chevron-right

	// Containers
	IconContainer = "\uf1b2" // cube
	IconLink      = "\uf0c1" // link
	IconPlay      = "\uf04b" // play (running)
	IconStop      = "\uf04d" // stop (exited)
	IconPlus      = "\uf067" // plus
	IconMinus     = "\uf068" // minus
)
