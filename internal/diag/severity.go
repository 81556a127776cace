package diag

import "fmt"

// Severity ranks a diagnostic. Bag sorts by it, highest first.
type Severity uint8

const (
	SevInfo Severity = iota // сводки парсера, сборку не валят
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

// String is the label printed in front of the code, e.g. "ERROR LEX1001".
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// IsError reports whether s fails a compilation.
func (s Severity) IsError() bool { return s >= SevError }
