package devlist

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/cloudradar-monitoring/devlist/pkg/devices"
)

// FormatRecord renders r as a text block. Every field line is present even
// when its value is empty.
func FormatRecord(r devices.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]\n", r.Index)
	fmt.Fprintf(&b, "-- Class: %s\n", r.ClassName)
	fmt.Fprintf(&b, "-- Friendly Name: %s\n", r.FriendlyName)
	fmt.Fprintf(&b, "-- Instance ID: %s\n", r.InstanceID)
	fmt.Fprintf(&b, "-- Class Description: %s\n", r.ClassDescription)
	fmt.Fprintf(&b, "-- Device Description: %s\n", r.DeviceDescription)
	b.WriteString("\n")
	return b.String()
}

// Printer writes records to an output stream in the configured format.
type Printer struct {
	w      io.Writer
	format string
}

func NewPrinter(w io.Writer, format string) *Printer {
	if format == "" {
		format = FormatText
	}
	return &Printer{w: w, format: format}
}

func (p *Printer) Print(r devices.Record) error {
	switch p.format {
	case FormatJSON:
		b, err := json.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "marshal record")
		}
		b = append(b, '\n')
		_, err = p.w.Write(b)
		return err
	case FormatText:
		_, err := io.WriteString(p.w, FormatRecord(r))
		return err
	default:
		return errors.Errorf("unsupported output format %q", p.format)
	}
}
