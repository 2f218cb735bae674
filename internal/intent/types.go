// ABOUTME: Intent types for routing one line of user input to a command handler.
// ABOUTME: Defines the closed Type enum, parameter keys, and the immutable Intent value.

package intent

import (
	"fmt"
	"maps"
	"strings"
)

// Type is the closed set of recognizable command categories.
// Declaration order breaks scoring ties.
type Type int

const (
	List Type = iota
	Run
	Search
	Help
	Organize
	Show
	Create
	Delete
	Rename
	Move
	Summarize
	AIChat
	Exit
	Unknown
)

var typeNames = [...]string{
	List:      "list",
	Run:       "run",
	Search:    "search",
	Help:      "help",
	Organize:  "organize",
	Show:      "show",
	Create:    "create",
	Delete:    "delete",
	Rename:    "rename",
	Move:      "move",
	Summarize: "summarize",
	AIChat:    "ai_chat",
	Exit:      "exit",
	Unknown:   "unknown",
}

// String returns the lowercase name of the type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

// Types returns every member of the enum in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}

// ParseType maps a type name back to its Type.
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return Unknown, false
}

// Parameter keys.
const (
	ParamFileType  = "file_type"
	ParamScope     = "scope"
	ParamDirectory = "directory"
	ParamQuery     = "query"
	ParamArgs      = "args"
	ParamNewName   = "new_name"
	ParamTopic     = "topic"
)

// Intent is the structured result of classifying one line of input.
// It is never mutated after New returns.
type Intent struct {
	typ        Type
	confidence float64
	target     string
	params     map[string]string
	input      string
}

// New builds an Intent. Confidence is clamped to [0, 1]; an empty target
// means absent, and empty parameter values are dropped.
func New(t Type, confidence float64, target string, params map[string]string, input string) Intent {
	in := Intent{
		typ:        t,
		confidence: clamp(confidence),
		target:     target,
		input:      input,
	}
	for k, v := range params {
		if v == "" {
			continue
		}
		if in.params == nil {
			in.params = make(map[string]string, len(params))
		}
		in.params[k] = v
	}
	return in
}

func (i Intent) Type() Type             { return i.typ }
func (i Intent) Confidence() float64    { return i.confidence }
func (i Intent) Input() string          { return i.input }
func (i Intent) Target() (string, bool) { return i.target, i.target != "" }

// Param returns a parameter and whether it was extracted.
func (i Intent) Param(key string) (string, bool) {
	v, ok := i.params[key]
	return v, ok
}

// Params returns a copy of the parameter map.
func (i Intent) Params() map[string]string {
	out := make(map[string]string, len(i.params))
	maps.Copy(out, i.params)
	return out
}

func (i Intent) String() string {
	return fmt.Sprintf("%s(%.2f target=%q params=%v)", i.typ, i.confidence, i.target, i.params)
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
