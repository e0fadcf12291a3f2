package action

import (
	"strconv"

	"github.com/pthm/turbo/lib/tag"
)

// The extended vocabulary below comes from the turbo_power client library.
// Selector-based actions always address elements through targets; the
// frame actions address a single turbo-frame through target.

func global(name string, kv ...string) tag.Stream {
	return tag.Stream{Action: name, Attributes: tag.NewAttributes(kv...)}
}

func selected(name, targets, content string, kv ...string) tag.Stream {
	return tag.Stream{
		Action:     name,
		Scope:      tag.ScopeTargets,
		Target:     targets,
		Attributes: tag.NewAttributes(kv...),
		Content:    content,
	}
}

func framed(name, target string, kv ...string) tag.Stream {
	return tag.Stream{
		Action:     name,
		Scope:      tag.ScopeTarget,
		Target:     target,
		Attributes: tag.NewAttributes(kv...),
	}
}

// AddCSSClass adds space-separated Classes to the matched elements.
type AddCSSClass struct{ Targets, Classes string }

func (a AddCSSClass) Stream() tag.Stream {
	return selected("add_css_class", a.Targets, "", "classes", a.Classes)
}

// RemoveCSSClass removes space-separated Classes from the matched elements.
type RemoveCSSClass struct{ Targets, Classes string }

func (a RemoveCSSClass) Stream() tag.Stream {
	return selected("remove_css_class", a.Targets, "", "classes", a.Classes)
}

// ToggleCSSClass toggles space-separated Classes on the matched elements.
type ToggleCSSClass struct{ Targets, Classes string }

func (a ToggleCSSClass) Stream() tag.Stream {
	return selected("toggle_css_class", a.Targets, "", "classes", a.Classes)
}

// ClearStorage empties local or session storage.
type ClearStorage struct{ Type StorageType }

func (a ClearStorage) Stream() tag.Stream {
	return global("clear_storage", "type", string(a.Type))
}

// ConsoleLog writes Message to the browser console at Level.
type ConsoleLog struct{ Level, Message string }

func (a ConsoleLog) Stream() tag.Stream {
	return global("console_log", "level", a.Level, "message", a.Message)
}

// ConsoleTable calls console.table with JSON-encoded Data and Columns.
type ConsoleTable struct{ Data, Columns string }

func (a ConsoleTable) Stream() tag.Stream {
	return global("console_table", "data", a.Data, "columns", a.Columns)
}

// DispatchEvent dispatches a CustomEvent called Name on the matched
// elements. Detail travels as the template content.
type DispatchEvent struct{ Targets, Name, Detail string }

func (a DispatchEvent) Stream() tag.Stream {
	return selected("dispatch_event", a.Targets, a.Detail, "name", a.Name)
}

// Graft moves the matched elements under Parent.
type Graft struct{ Targets, Parent string }

func (a Graft) Stream() tag.Stream {
	return selected("graft", a.Targets, "", "parent", a.Parent)
}

// HistoryBack calls history.back().
type HistoryBack struct{}

func (HistoryBack) Stream() tag.Stream { return global("history_back") }

// HistoryForward calls history.forward().
type HistoryForward struct{}

func (HistoryForward) Stream() tag.Stream { return global("history_forward") }

// HistoryGo calls history.go(Delta).
type HistoryGo struct{ Delta int }

func (a HistoryGo) Stream() tag.Stream {
	return global("history_go", "delta", strconv.Itoa(a.Delta))
}

// InnerHTML sets the innerHTML of the matched elements.
type InnerHTML struct{ Targets, HTML string }

func (a InnerHTML) Stream() tag.Stream {
	return selected("inner_html", a.Targets, a.HTML)
}

// InsertAdjacentHTML inserts HTML at Position relative to the matched
// elements.
type InsertAdjacentHTML struct {
	Targets  string
	Position Position
	HTML     string
}

func (a InsertAdjacentHTML) Stream() tag.Stream {
	return selected("insert_adjacent_html", a.Targets, a.HTML, "position", string(a.Position))
}

// InsertAdjacentText inserts Text at Position relative to the matched
// elements.
type InsertAdjacentText struct {
	Targets  string
	Position Position
	Text     string
}

func (a InsertAdjacentText) Stream() tag.Stream {
	return selected("insert_adjacent_text", a.Targets, "", "position", string(a.Position), "text", a.Text)
}

// Morph morphs the matched elements into HTML.
type Morph struct{ Targets, HTML string }

func (a Morph) Stream() tag.Stream {
	return selected("morph", a.Targets, a.HTML)
}

// Notification shows a browser Notification. Options are passed through as
// notification options (body, icon, tag, ...); Title always wins over an
// option of the same name.
type Notification struct {
	Title   string
	Options tag.Attributes
	Body    string
}

func (a Notification) Stream() tag.Stream {
	return tag.Stream{
		Action:     "notification",
		Attributes: a.Options.With("title", a.Title),
		Content:    a.Body,
	}
}

// OuterHTML sets the outerHTML of the matched elements.
type OuterHTML struct{ Targets, HTML string }

func (a OuterHTML) Stream() tag.Stream {
	return selected("outer_html", a.Targets, a.HTML)
}

// PushState calls history.pushState(State, Title, URL).
type PushState struct{ URL, Title, State string }

func (a PushState) Stream() tag.Stream {
	return global("push_state", "url", a.URL, "title", a.Title, "state", a.State)
}

// ReplaceState calls history.replaceState(State, Title, URL).
type ReplaceState struct{ URL, Title, State string }

func (a ReplaceState) Stream() tag.Stream {
	return global("replace_state", "url", a.URL, "title", a.Title, "state", a.State)
}

// RedirectTo performs a Turbo visit to URL. An empty TurboFrame is omitted.
type RedirectTo struct {
	URL         string
	TurboAction Visit
	TurboFrame  string
}

func (a RedirectTo) Stream() tag.Stream {
	s := global("redirect_to", "url", a.URL, "turbo-action", string(a.TurboAction))
	if a.TurboFrame != "" {
		s.Attributes = s.Attributes.With("turbo-frame", a.TurboFrame)
	}
	return s
}

// Reload reloads the page.
type Reload struct{}

func (Reload) Stream() tag.Stream { return global("reload") }

// RemoveAttribute removes Attribute from the matched elements.
type RemoveAttribute struct{ Targets, Attribute string }

func (a RemoveAttribute) Stream() tag.Stream {
	return selected("remove_attribute", a.Targets, "", "attribute", a.Attribute)
}

// RemoveStorageItem removes Key from local or session storage.
type RemoveStorageItem struct {
	Key  string
	Type StorageType
}

func (a RemoveStorageItem) Stream() tag.Stream {
	return global("remove_storage_item", "key", a.Key, "type", string(a.Type))
}

// ResetForm resets the matched forms.
type ResetForm struct{ Targets string }

func (a ResetForm) Stream() tag.Stream { return selected("reset_form", a.Targets, "") }

// ScrollIntoView scrolls the matched elements into view.
type ScrollIntoView struct{ Targets string }

func (a ScrollIntoView) Stream() tag.Stream { return selected("scroll_into_view", a.Targets, "") }

// SetAttribute sets Attribute to Value on the matched elements.
type SetAttribute struct{ Targets, Attribute, Value string }

func (a SetAttribute) Stream() tag.Stream {
	return selected("set_attribute", a.Targets, "", "attribute", a.Attribute, "value", a.Value)
}

// SetCookie assigns a raw cookie string to document.cookie.
type SetCookie struct{ Cookie string }

func (a SetCookie) Stream() tag.Stream { return global("set_cookie", "cookie", a.Cookie) }

// SetCookieItem sets a single cookie.
type SetCookieItem struct{ Key, Value string }

func (a SetCookieItem) Stream() tag.Stream {
	return global("set_cookie_item", "key", a.Key, "value", a.Value)
}

// SetDatasetAttribute sets dataset[Attribute] to Value on the matched
// elements.
type SetDatasetAttribute struct{ Targets, Attribute, Value string }

func (a SetDatasetAttribute) Stream() tag.Stream {
	return selected("set_dataset_attribute", a.Targets, "", "attribute", a.Attribute, "value", a.Value)
}

// SetFocus focuses the first matched element.
type SetFocus struct{ Targets string }

func (a SetFocus) Stream() tag.Stream { return selected("set_focus", a.Targets, "") }

// SetMeta creates or updates <meta name=Name content=Content>.
type SetMeta struct{ Name, Content string }

func (a SetMeta) Stream() tag.Stream {
	return global("set_meta", "name", a.Name, "content", a.Content)
}

// SetProperty sets the DOM property Name to Value on the matched elements.
type SetProperty struct{ Targets, Name, Value string }

func (a SetProperty) Stream() tag.Stream {
	return selected("set_property", a.Targets, "", "name", a.Name, "value", a.Value)
}

// SetStorageItem stores Key=Value in local or session storage.
type SetStorageItem struct {
	Key   string
	Value string
	Type  StorageType
}

func (a SetStorageItem) Stream() tag.Stream {
	return global("set_storage_item", "key", a.Key, "value", a.Value, "type", string(a.Type))
}

// SetStyle sets one style property on the matched elements.
type SetStyle struct{ Targets, Name, Value string }

func (a SetStyle) Stream() tag.Stream {
	return selected("set_style", a.Targets, "", "name", a.Name, "value", a.Value)
}

// SetStyles replaces the style attribute of the matched elements.
type SetStyles struct{ Targets, Styles string }

func (a SetStyles) Stream() tag.Stream {
	return selected("set_styles", a.Targets, "", "styles", a.Styles)
}

// SetTitle sets document.title.
type SetTitle struct{ Title string }

func (a SetTitle) Stream() tag.Stream { return global("set_title", "title", a.Title) }

// SetValue sets the value of the matched form controls.
type SetValue struct{ Targets, Value string }

func (a SetValue) Stream() tag.Stream {
	return selected("set_value", a.Targets, "", "value", a.Value)
}

// TextContent sets the textContent of the matched elements.
type TextContent struct{ Targets, Text string }

func (a TextContent) Stream() tag.Stream {
	return selected("text_content", a.Targets, "", "text", a.Text)
}

// TurboClearCache clears the Turbo Drive page cache.
type TurboClearCache struct{}

func (TurboClearCache) Stream() tag.Stream { return global("turbo_clear_cache") }

// TurboFrameReload reloads the turbo-frame whose id is Target.
type TurboFrameReload struct{ Target string }

func (a TurboFrameReload) Stream() tag.Stream { return framed("turbo_frame_reload", a.Target) }

// TurboFrameSetSrc points the turbo-frame whose id is Target at Src.
type TurboFrameSetSrc struct{ Target, Src string }

func (a TurboFrameSetSrc) Stream() tag.Stream {
	return framed("turbo_frame_set_src", a.Target, "src", a.Src)
}

// TurboProgressBarHide hides the Turbo progress bar.
type TurboProgressBarHide struct{}

func (TurboProgressBarHide) Stream() tag.Stream { return global("turbo_progress_bar_hide") }

// TurboProgressBarSetValue sets the progress bar to Value (0 to 1).
type TurboProgressBarSetValue struct{ Value string }

func (a TurboProgressBarSetValue) Stream() tag.Stream {
	return global("turbo_progress_bar_set_value", "value", a.Value)
}

// TurboProgressBarShow shows the Turbo progress bar.
type TurboProgressBarShow struct{}

func (TurboProgressBarShow) Stream() tag.Stream { return global("turbo_progress_bar_show") }
