package types

// LinkOperation describes a single file placement. It has no identity
// beyond its fields and is executed exactly once, never persisted.
type LinkOperation struct {
	// Source is the absolute path of the file inside the extracted package.
	Source string

	// Destination is the absolute path inside the target environment.
	Destination string

	// LinkType selects the placement strategy.
	LinkType LinkType

	// Force allows clobbering an existing destination.
	Force bool
}

// EntryPointSpec describes a console-script launcher to generate.
type EntryPointSpec struct {
	// Target is the absolute path the script is written to.
	Target string

	// Interpreter is the absolute path of the interpreter named in the
	// shebang line. Ignored for the Windows rendering.
	Interpreter string

	// Module and Func name the callable the launcher invokes.
	Module string
	Func   string

	// Windows selects the Windows rendering: no shebang line and no
	// executable bit. Dispatch happens through a separate native launcher.
	Windows bool
}
