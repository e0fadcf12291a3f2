// Package action models every Turbo Stream action as its own type.
//
// Each action name in the vocabulary has exactly one struct carrying only the
// fields that action needs, and each struct knows how to lower itself to a
// tag.Stream. A builder cannot forget a required attribute: the attribute
// table lives in the Stream methods below, checked by the compiler through
// the Action interface.
//
//	action.Render(action.Replace{Target: action.ID("message_1"), Content: "Test"})
//	// <turbo-stream action="replace" target="message_1"><template>Test</template></turbo-stream>
//
// Actions outside the vocabulary (Turbo custom actions) are expressed with
// Custom.
package action

import (
	"slices"

	"github.com/pthm/turbo/lib/tag"
)

// Action is a single Turbo Stream operation.
type Action interface {
	// Stream lowers the action to its canonical attribute form.
	Stream() tag.Stream
}

// Render serializes an action as a <turbo-stream> fragment.
func Render(a Action) string {
	return a.Stream().String()
}

// RenderAll serializes actions in order and concatenates the fragments.
func RenderAll(actions ...Action) string {
	var out []byte
	for _, a := range actions {
		out = append(out, Render(a)...)
	}
	return string(out)
}

// Target addresses the elements a standard action applies to: either one
// element by id (target) or every element matching a selector (targets).
//
// The zero value addresses the element with an empty id.
type Target struct {
	value string
	all   bool
}

// ID targets the single element whose id is id.
func ID(id string) Target {
	return Target{value: id}
}

// All targets every element matching a CSS selector.
func All(selector string) Target {
	return Target{value: selector, all: true}
}

// Value returns the id or selector.
func (t Target) Value() string {
	return t.value
}

// Scope reports which targeting attribute t produces.
func (t Target) Scope() tag.Scope {
	if t.all {
		return tag.ScopeTargets
	}
	return tag.ScopeTarget
}

// Custom is an action outside the built-in vocabulary.
//
// A nil Target emits no targeting attribute.
type Custom struct {
	Name       string
	Target     *Target
	Attributes tag.Attributes
	Content    string
}

func (c Custom) Stream() tag.Stream {
	s := tag.Stream{Action: c.Name, Attributes: c.Attributes, Content: c.Content}
	if c.Target != nil {
		s.Scope = c.Target.Scope()
		s.Target = c.Target.value
	}
	return s
}

// Standard action names.
const (
	NameRemove  = "remove"
	NameReplace = "replace"
	NameBefore  = "before"
	NameAfter   = "after"
	NameUpdate  = "update"
	NameAppend  = "append"
	NamePrepend = "prepend"
)

var standardNames = []string{
	NameAfter, NameAppend, NameBefore, NamePrepend, NameRemove, NameReplace, NameUpdate,
}

var powerNames = []string{
	"add_css_class", "clear_storage", "console_log", "console_table",
	"dispatch_event", "graft", "history_back", "history_forward",
	"history_go", "inner_html", "insert_adjacent_html",
	"insert_adjacent_text", "morph", "notification", "outer_html",
	"push_state", "redirect_to", "reload", "remove_attribute",
	"remove_css_class", "remove_storage_item", "replace_state",
	"reset_form", "scroll_into_view", "set_attribute", "set_cookie",
	"set_cookie_item", "set_dataset_attribute", "set_focus", "set_meta",
	"set_property", "set_storage_item", "set_style", "set_styles",
	"set_title", "set_value", "text_content", "toggle_css_class",
	"turbo_clear_cache", "turbo_frame_reload", "turbo_frame_set_src",
	"turbo_progress_bar_hide", "turbo_progress_bar_set_value",
	"turbo_progress_bar_show",
}

// Standard reports whether name is one of the seven DOM actions Turbo
// ships with.
func Standard(name string) bool {
	return slices.Contains(standardNames, name)
}

// Known reports whether name belongs to the built-in vocabulary.
func Known(name string) bool {
	return Standard(name) || slices.Contains(powerNames, name)
}

// Vocabulary returns every built-in action name in ascending order.
func Vocabulary() []string {
	names := make([]string, 0, len(standardNames)+len(powerNames))
	names = append(names, standardNames...)
	names = append(names, powerNames...)
	slices.Sort(names)
	return names
}
