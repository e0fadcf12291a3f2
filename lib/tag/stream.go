package tag

// Attribute names shared by every stream.
const (
	KeyAction  = "action"
	KeyTarget  = "target"
	KeyTargets = "targets"
)

// Scope selects which targeting attribute a stream carries.
type Scope uint8

const (
	// ScopeNone emits neither target nor targets.
	ScopeNone Scope = iota
	// ScopeTarget emits a single element id as target.
	ScopeTarget
	// ScopeTargets emits a CSS selector as targets.
	ScopeTargets
)

// String returns the attribute name for the scope, or "" for ScopeNone.
func (s Scope) String() string {
	switch s {
	case ScopeTarget:
		return KeyTarget
	case ScopeTargets:
		return KeyTargets
	default:
		return ""
	}
}

// Stream is the canonical form of one Turbo Stream action before
// serialization.
//
// Attributes holds only the action-specific attributes. The targeting key
// and the action name are added by String, in that order, so neither can be
// shadowed by a caller-supplied attribute of the same name.
type Stream struct {
	Action     string
	Scope      Scope
	Target     string
	Attributes Attributes
	Content    string
}

// AllAttributes returns the attribute set that String serializes.
func (s Stream) AllAttributes() Attributes {
	attrs := s.Attributes
	if key := s.Scope.String(); key != "" {
		attrs = attrs.With(key, s.Target)
	}
	return attrs.With(KeyAction, s.Action)
}

// String renders the stream as a <turbo-stream> fragment.
func (s Stream) String() string {
	return Tag(s.AllAttributes(), s.Content)
}
