// Package devices enumerates devices known to the host's device
// configuration service and turns each entry into a Record.
package devices

// Record describes one device instance produced during a single
// enumeration pass.
type Record struct {
	// Index is the position of the device in enumeration order. Skipped
	// entries keep their index, so indices are not necessarily contiguous.
	Index int `json:"index"`

	InstanceID        string `json:"instance_id"`
	ClassName         string `json:"class"`
	FriendlyName      string `json:"friendly_name"`
	ClassDescription  string `json:"class_description"`
	DeviceDescription string `json:"device_description"`
}

// Property identifies a string property of a device entry.
type Property int

const (
	// InstanceID is only used to tag errors; it is read via Entry.InstanceID.
	InstanceID Property = iota
	ClassName
	DeviceDescription
	FriendlyName
	ClassDescription
)

// recordProperties is the order in which best-effort properties are fetched.
var recordProperties = []Property{ClassName, DeviceDescription, FriendlyName, ClassDescription}

func (p Property) String() string {
	switch p {
	case InstanceID:
		return "instance ID"
	case ClassName:
		return "class name"
	case DeviceDescription:
		return "device description"
	case FriendlyName:
		return "friendly name"
	case ClassDescription:
		return "class description"
	default:
		return "unknown property"
	}
}

func (r *Record) set(p Property, value string) {
	switch p {
	case InstanceID:
		r.InstanceID = value
	case ClassName:
		r.ClassName = value
	case DeviceDescription:
		r.DeviceDescription = value
	case FriendlyName:
		r.FriendlyName = value
	case ClassDescription:
		r.ClassDescription = value
	}
}
