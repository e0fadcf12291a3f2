package turbo

import "github.com/pthm/turbo/action"

// Remove removes the element whose id is target.
//
//	turbo.Remove("clearance_5")
func Remove(target string) string {
	return action.Render(action.Remove{Target: action.ID(target)})
}

// RemoveAll removes every element matching the targets selector.
//
//	turbo.RemoveAll(".clearance_item")
func RemoveAll(targets string) string {
	return action.Render(action.Remove{Target: action.All(targets)})
}

// Replace replaces the element whose id is target with content.
//
//	turbo.Replace("clearance_5", `<div id="clearance_5">Replaced</div>`)
func Replace(target, content string) string {
	return action.Render(action.Replace{Target: action.ID(target), Content: content})
}

// ReplaceAll replaces every element matching targets with content.
func ReplaceAll(targets, content string) string {
	return action.Render(action.Replace{Target: action.All(targets), Content: content})
}

// Before inserts content before the element whose id is target.
func Before(target, content string) string {
	return action.Render(action.Before{Target: action.ID(target), Content: content})
}

// BeforeAll inserts content before every element matching targets.
func BeforeAll(targets, content string) string {
	return action.Render(action.Before{Target: action.All(targets), Content: content})
}

// After inserts content after the element whose id is target.
func After(target, content string) string {
	return action.Render(action.After{Target: action.ID(target), Content: content})
}

// AfterAll inserts content after every element matching targets.
func AfterAll(targets, content string) string {
	return action.Render(action.After{Target: action.All(targets), Content: content})
}

// Update replaces the children of the element whose id is target, keeping
// the element itself.
func Update(target, content string) string {
	return action.Render(action.Update{Target: action.ID(target), Content: content})
}

// UpdateAll replaces the children of every element matching targets.
func UpdateAll(targets, content string) string {
	return action.Render(action.Update{Target: action.All(targets), Content: content})
}

// Append adds content as the last children of the element whose id is
// target. Turbo skips children whose ids already exist in the target.
//
//	turbo.Append("clearances", `<div id="clearance_5">New</div>`)
func Append(target, content string) string {
	return action.Render(action.Append{Target: action.ID(target), Content: content})
}

// AppendAll appends content to every element matching targets.
func AppendAll(targets, content string) string {
	return action.Render(action.Append{Target: action.All(targets), Content: content})
}

// Prepend adds content as the first children of the element whose id is
// target.
func Prepend(target, content string) string {
	return action.Render(action.Prepend{Target: action.ID(target), Content: content})
}

// PrependAll prepends content to every element matching targets.
func PrependAll(targets, content string) string {
	return action.Render(action.Prepend{Target: action.All(targets), Content: content})
}
