package config

const SourceFileExt = ".sl"

// ProfileFileNames are searched, in order, next to the source file.
var ProfileFileNames = []string{"simplelang.yaml", "simplelang.yml"}

// Language profiles
const (
	// ProfileClassic accepts only var and print statements.
	ProfileClassic = "classic"
	// ProfileExtended also accepts bare expression statements.
	ProfileExtended = "extended"
)

// Process exit codes
const (
	ExitOK            = 0
	ExitUserError     = 1
	ExitInternalError = 2
)
