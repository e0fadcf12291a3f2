package action

import "github.com/pthm/turbo/lib/tag"

func targeted(name string, t Target, content string) tag.Stream {
	return tag.Stream{Action: name, Scope: t.Scope(), Target: t.value, Content: content}
}

// Remove removes the target element(s). It carries no content.
type Remove struct {
	Target Target
}

func (a Remove) Stream() tag.Stream { return targeted(NameRemove, a.Target, "") }

// Replace replaces the target element(s) with Content.
type Replace struct {
	Target  Target
	Content string
}

func (a Replace) Stream() tag.Stream { return targeted(NameReplace, a.Target, a.Content) }

// Before inserts Content before the target element(s).
type Before struct {
	Target  Target
	Content string
}

func (a Before) Stream() tag.Stream { return targeted(NameBefore, a.Target, a.Content) }

// After inserts Content after the target element(s).
type After struct {
	Target  Target
	Content string
}

func (a After) Stream() tag.Stream { return targeted(NameAfter, a.Target, a.Content) }

// Update replaces the children of the target element(s) with Content.
type Update struct {
	Target  Target
	Content string
}

func (a Update) Stream() tag.Stream { return targeted(NameUpdate, a.Target, a.Content) }

// Append adds Content as the last children of the target element(s).
type Append struct {
	Target  Target
	Content string
}

func (a Append) Stream() tag.Stream { return targeted(NameAppend, a.Target, a.Content) }

// Prepend adds Content as the first children of the target element(s).
type Prepend struct {
	Target  Target
	Content string
}

func (a Prepend) Stream() tag.Stream { return targeted(NamePrepend, a.Target, a.Content) }
