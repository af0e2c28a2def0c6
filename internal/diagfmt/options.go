package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
	// PathModeAsIs prints the filename exactly as the diagnostic carries it.
	PathModeAsIs
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	case PathModeAsIs:
		return "as-is"
	default:
		return "auto"
	}
}

// ParsePathMode разбирает значение флага; неизвестное — auto.
func ParsePathMode(s string) PathMode {
	switch s {
	case "absolute":
		return PathModeAbsolute
	case "relative":
		return PathModeRelative
	case "basename":
		return PathModeBasename
	case "as-is":
		return PathModeAsIs
	default:
		return PathModeAuto
	}
}

// BannerOpts configures banner rendering of diagnostics.
type BannerOpts struct {
	Color     bool
	PathMode  PathMode
	BaseDir   string // для PathModeRelative
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	BaseDir      string
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}
