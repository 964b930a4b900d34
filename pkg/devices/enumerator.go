package devices

// Filter selects which devices a set contains.
type Filter struct {
	Present        bool // only devices currently present
	AllClasses     bool // devices of every setup class
	CurrentProfile bool // only devices in the current hardware profile
}

// DefaultFilter selects present devices of all classes in the current
// hardware profile.
var DefaultFilter = Filter{
	Present:        true,
	AllClasses:     true,
	CurrentProfile: true,
}

// Enumerator opens point-in-time device sets. Each platform provides its own
// implementation.
type Enumerator interface {
	Open(filter Filter) (Set, error)
}

// Set is a handle to a device set. A Set is owned by a single caller and must
// be closed exactly once.
type Set interface {
	// Next returns the entry at index. It returns an error wrapping
	// ErrEndOfSet when index is past the last entry.
	Next(index int) (Entry, error)
	Close() error
}

// Entry is a member of a Set. It is only valid until the Set is closed.
type Entry interface {
	InstanceID() (string, error)
	Property(p Property) (string, error)
}
