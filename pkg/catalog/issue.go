package catalog

import (
	"fmt"
)

// Reasons for skipping a row or a slot.
const (
	ReasonNoKey        = "missing class number"
	ReasonNoInstructor = "missing instructor"
	ReasonNoSubject    = "missing subject"
	ReasonBadTime      = "unparseable time"
	ReasonEmptyRange   = "start not before end"
)

// Issue describes a recoverable problem with a row or one of its slots.
type Issue struct {
	Line   int    `json:"line"   yaml:"line"`
	Key    string `json:"key"    yaml:"key"`
	Reason string `json:"reason" yaml:"reason"`
	// SlotOnly is true when only a meeting slot was dropped and the row
	// still contributed to its section.
	SlotOnly bool   `json:"slotOnly" yaml:"slot_only"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

func (i Issue) String() string {
	res := fmt.Sprintf("line %d (%s): %s", i.Line, i.Key, i.Reason)
	if i.Detail != "" {
		res += ": " + i.Detail
	}
	return res
}
