// Package power builds the extended turbo_power stream actions.
//
// These actions go beyond Turbo's seven DOM mutations: CSS classes,
// attributes and properties, Web Storage and cookies, history and
// navigation, console output, notifications and Turbo Drive controls. The
// client needs the turbo_power JavaScript library registered to apply them.
//
// Actions that address elements take a CSS selector and emit targets; the
// turbo-frame actions take a frame id and emit target. The rest take no
// target at all.
package power

import (
	"github.com/pthm/turbo/action"
	"github.com/pthm/turbo/lib/tag"
)

func AddCSSClass(targets, classes string) string {
	return action.Render(action.AddCSSClass{Targets: targets, Classes: classes})
}

func RemoveCSSClass(targets, classes string) string {
	return action.Render(action.RemoveCSSClass{Targets: targets, Classes: classes})
}

func ToggleCSSClass(targets, classes string) string {
	return action.Render(action.ToggleCSSClass{Targets: targets, Classes: classes})
}

// ClearStorage empties the storage area named by storageType ("local" or
// "session").
func ClearStorage(storageType string) string {
	return action.Render(action.ClearStorage{Type: action.StorageType(storageType)})
}

func ClearLocalStorage() string {
	return ClearStorage(string(action.LocalStorage))
}

func ClearSessionStorage() string {
	return ClearStorage(string(action.SessionStorage))
}

func ConsoleLog(level, message string) string {
	return action.Render(action.ConsoleLog{Level: level, Message: message})
}

// ConsoleTable logs a table; data and columns are JSON arrays.
func ConsoleTable(data, columns string) string {
	return action.Render(action.ConsoleTable{Data: data, Columns: columns})
}

// DispatchEvent dispatches a CustomEvent on the matched elements. detail is
// the JSON event detail and travels as template content, unescaped.
func DispatchEvent(targets, name, detail string) string {
	return action.Render(action.DispatchEvent{Targets: targets, Name: name, Detail: detail})
}

// Graft moves the matched elements into parent.
func Graft(targets, parent string) string {
	return action.Render(action.Graft{Targets: targets, Parent: parent})
}

func HistoryBack() string {
	return action.Render(action.HistoryBack{})
}

func HistoryForward() string {
	return action.Render(action.HistoryForward{})
}

// HistoryGo moves delta entries through the session history.
func HistoryGo(delta int) string {
	return action.Render(action.HistoryGo{Delta: delta})
}

func InnerHTML(targets, html string) string {
	return action.Render(action.InnerHTML{Targets: targets, HTML: html})
}

// InsertAdjacentHTML inserts html at position (beforebegin, afterbegin,
// beforeend or afterend) relative to the matched elements.
func InsertAdjacentHTML(targets, position, html string) string {
	return action.Render(action.InsertAdjacentHTML{
		Targets:  targets,
		Position: action.Position(position),
		HTML:     html,
	})
}

// InsertAdjacentText inserts text at position relative to the matched
// elements. The text travels as an attribute and is escaped.
func InsertAdjacentText(targets, position, text string) string {
	return action.Render(action.InsertAdjacentText{
		Targets:  targets,
		Position: action.Position(position),
		Text:     text,
	})
}

func Morph(targets, html string) string {
	return action.Render(action.Morph{Targets: targets, HTML: html})
}

// Notification shows a browser notification. options become attributes
// next to title; a "title" option is overridden by title.
func Notification(title string, options tag.Attributes, body string) string {
	return action.Render(action.Notification{Title: title, Options: options, Body: body})
}

func OuterHTML(targets, html string) string {
	return action.Render(action.OuterHTML{Targets: targets, HTML: html})
}

func PushState(url, title, state string) string {
	return action.Render(action.PushState{URL: url, Title: title, State: state})
}

func ReplaceState(url, title, state string) string {
	return action.Render(action.ReplaceState{URL: url, Title: title, State: state})
}

// RedirectTo visits url with the Turbo visit action turboAction. A non-empty
// turboFrame scopes the visit to that frame.
//
//	power.RedirectTo("/users/1", "advance", "")
func RedirectTo(url, turboAction, turboFrame string) string {
	return action.Render(action.RedirectTo{
		URL:         url,
		TurboAction: action.Visit(turboAction),
		TurboFrame:  turboFrame,
	})
}

func Reload() string {
	return action.Render(action.Reload{})
}

func RemoveAttribute(targets, attribute string) string {
	return action.Render(action.RemoveAttribute{Targets: targets, Attribute: attribute})
}

func RemoveStorageItem(key, storageType string) string {
	return action.Render(action.RemoveStorageItem{Key: key, Type: action.StorageType(storageType)})
}

func RemoveLocalStorageItem(key string) string {
	return RemoveStorageItem(key, string(action.LocalStorage))
}

func RemoveSessionStorageItem(key string) string {
	return RemoveStorageItem(key, string(action.SessionStorage))
}

func ResetForm(targets string) string {
	return action.Render(action.ResetForm{Targets: targets})
}

func ScrollIntoView(targets string) string {
	return action.Render(action.ScrollIntoView{Targets: targets})
}

func SetAttribute(targets, attribute, value string) string {
	return action.Render(action.SetAttribute{Targets: targets, Attribute: attribute, Value: value})
}

// SetCookie assigns cookie to document.cookie as-is, e.g.
// "name=value; SameSite=Lax".
func SetCookie(cookie string) string {
	return action.Render(action.SetCookie{Cookie: cookie})
}

func SetCookieItem(key, value string) string {
	return action.Render(action.SetCookieItem{Key: key, Value: value})
}

func SetDatasetAttribute(targets, attribute, value string) string {
	return action.Render(action.SetDatasetAttribute{Targets: targets, Attribute: attribute, Value: value})
}

func SetFocus(targets string) string {
	return action.Render(action.SetFocus{Targets: targets})
}

func SetMeta(name, content string) string {
	return action.Render(action.SetMeta{Name: name, Content: content})
}

func SetProperty(targets, name, value string) string {
	return action.Render(action.SetProperty{Targets: targets, Name: name, Value: value})
}

func SetStorageItem(key, value, storageType string) string {
	return action.Render(action.SetStorageItem{Key: key, Value: value, Type: action.StorageType(storageType)})
}

func SetStorageLocalItem(key, value string) string {
	return SetStorageItem(key, value, string(action.LocalStorage))
}

func SetStorageSessionItem(key, value string) string {
	return SetStorageItem(key, value, string(action.SessionStorage))
}

func SetStyle(targets, name, value string) string {
	return action.Render(action.SetStyle{Targets: targets, Name: name, Value: value})
}

// SetStyles replaces the whole style attribute, e.g. "color: red; margin: 0".
func SetStyles(targets, styles string) string {
	return action.Render(action.SetStyles{Targets: targets, Styles: styles})
}

func SetTitle(title string) string {
	return action.Render(action.SetTitle{Title: title})
}

func SetValue(targets, value string) string {
	return action.Render(action.SetValue{Targets: targets, Value: value})
}

func TextContent(targets, text string) string {
	return action.Render(action.TextContent{Targets: targets, Text: text})
}

func TurboClearCache() string {
	return action.Render(action.TurboClearCache{})
}

// TurboFrameReload reloads the turbo-frame whose id is target.
func TurboFrameReload(target string) string {
	return action.Render(action.TurboFrameReload{Target: target})
}

// TurboFrameSetSrc navigates the turbo-frame whose id is target to src.
func TurboFrameSetSrc(target, src string) string {
	return action.Render(action.TurboFrameSetSrc{Target: target, Src: src})
}

func TurboProgressBarHide() string {
	return action.Render(action.TurboProgressBarHide{})
}

// TurboProgressBarSetValue sets the progress bar; value is a number
// between 0 and 1.
func TurboProgressBarSetValue(value string) string {
	return action.Render(action.TurboProgressBarSetValue{Value: value})
}

func TurboProgressBarShow() string {
	return action.Render(action.TurboProgressBarShow{})
}
