package sheetpdf

// Access is the kind of access a PermissionGate is asked about.
type Access int

const (
	AccessRead Access = iota + 1
	AccessWrite
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	default:
		return "unknown"
	}
}

// PermissionGate decides whether a directory may be accessed. A nil error
// grants access.
type PermissionGate interface {
	Check(path string, access Access) error
}

// GateFunc adapts a function to PermissionGate.
type GateFunc func(path string, access Access) error

// Check calls f(path, access).
func (f GateFunc) Check(path string, access Access) error {
	return f(path, access)
}

// OSGate asks the operating system whether the current process may access a
// directory.
type OSGate struct{}

var _ PermissionGate = OSGate{}
