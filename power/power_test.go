package power

import (
	"testing"

	"github.com/pthm/turbo/lib/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"add_css_class", AddCSSClass("#element", "container text-center"),
			`<turbo-stream action="add_css_class" classes="container text-center" targets="#element"><template></template></turbo-stream>`},
		{"remove_css_class", RemoveCSSClass("#element", "container text-center"),
			`<turbo-stream action="remove_css_class" classes="container text-center" targets="#element"><template></template></turbo-stream>`},
		{"toggle_css_class", ToggleCSSClass("#element", "container text-center"),
			`<turbo-stream action="toggle_css_class" classes="container text-center" targets="#element"><template></template></turbo-stream>`},
		{"clear_storage", ClearStorage("local"),
			`<turbo-stream action="clear_storage" type="local"><template></template></turbo-stream>`},
		{"clear_local_storage", ClearLocalStorage(),
			`<turbo-stream action="clear_storage" type="local"><template></template></turbo-stream>`},
		{"clear_session_storage", ClearSessionStorage(),
			`<turbo-stream action="clear_storage" type="session"><template></template></turbo-stream>`},
		{"console_log", ConsoleLog("info", "#element"),
			`<turbo-stream action="console_log" level="info" message="#element"><template></template></turbo-stream>`},
		{"console_table", ConsoleTable(`["apples","oranges","bananas"]`, `["fruits"]`),
			`<turbo-stream action="console_table" columns="[&quot;fruits&quot;]" data="[&quot;apples&quot;,&quot;oranges&quot;,&quot;bananas&quot;]"><template></template></turbo-stream>`},
		{"dispatch_event", DispatchEvent("#element", "custom-event", `{"foo":"bar"}`),
			`<turbo-stream action="dispatch_event" name="custom-event" targets="#element"><template>{"foo":"bar"}</template></turbo-stream>`},
		{"graft", Graft("#input", "#parent"),
			`<turbo-stream action="graft" parent="#parent" targets="#input"><template></template></turbo-stream>`},
		{"history_back", HistoryBack(),
			`<turbo-stream action="history_back"><template></template></turbo-stream>`},
		{"history_forward", HistoryForward(),
			`<turbo-stream action="history_forward"><template></template></turbo-stream>`},
		{"history_go", HistoryGo(1),
			`<turbo-stream action="history_go" delta="1"><template></template></turbo-stream>`},
		{"history_go back", HistoryGo(-3),
			`<turbo-stream action="history_go" delta="-3"><template></template></turbo-stream>`},
		{"inner_html", InnerHTML("#elements", "<p>Content</p>"),
			`<turbo-stream action="inner_html" targets="#elements"><template><p>Content</p></template></turbo-stream>`},
		{"insert_adjacent_html", InsertAdjacentHTML("#element", "beforeend", "<p>Content</p>"),
			`<turbo-stream action="insert_adjacent_html" position="beforeend" targets="#element"><template><p>Content</p></template></turbo-stream>`},
		{"insert_adjacent_text", InsertAdjacentText("#element", "beforeend", "mytext"),
			`<turbo-stream action="insert_adjacent_text" position="beforeend" targets="#element" text="mytext"><template></template></turbo-stream>`},
		{"morph", Morph("#input", "<p>Morph</p>"),
			`<turbo-stream action="morph" targets="#input"><template><p>Morph</p></template></turbo-stream>`},
		{"notification", Notification("mytitle", tag.Attributes{}, "<p>Content</p>"),
			`<turbo-stream action="notification" title="mytitle"><template><p>Content</p></template></turbo-stream>`},
		{"outer_html", OuterHTML("#element", "<p>Outer HTML</p>"),
			`<turbo-stream action="outer_html" targets="#element"><template><p>Outer HTML</p></template></turbo-stream>`},
		{"push_state", PushState("/users/1", "title-1", "{}"),
			`<turbo-stream action="push_state" state="{}" title="title-1" url="/users/1"><template></template></turbo-stream>`},
		{"replace_state", ReplaceState("/users/1", "title-1", "{}"),
			`<turbo-stream action="replace_state" state="{}" title="title-1" url="/users/1"><template></template></turbo-stream>`},
		{"redirect_to without frame", RedirectTo("/users/1", "advance", ""),
			`<turbo-stream action="redirect_to" turbo-action="advance" url="/users/1"><template></template></turbo-stream>`},
		{"redirect_to with frame", RedirectTo("/users/1", "advance", "my_frame"),
			`<turbo-stream action="redirect_to" turbo-action="advance" turbo-frame="my_frame" url="/users/1"><template></template></turbo-stream>`},
		{"reload", Reload(),
			`<turbo-stream action="reload"><template></template></turbo-stream>`},
		{"remove_attribute", RemoveAttribute("#input", "data-controller"),
			`<turbo-stream action="remove_attribute" attribute="data-controller" targets="#input"><template></template></turbo-stream>`},
		{"remove_storage_item", RemoveStorageItem("key", "local"),
			`<turbo-stream action="remove_storage_item" key="key" type="local"><template></template></turbo-stream>`},
		{"remove_local_storage_item", RemoveLocalStorageItem("key"),
			`<turbo-stream action="remove_storage_item" key="key" type="local"><template></template></turbo-stream>`},
		{"remove_session_storage_item", RemoveSessionStorageItem("key"),
			`<turbo-stream action="remove_storage_item" key="key" type="session"><template></template></turbo-stream>`},
		{"reset_form", ResetForm("#form"),
			`<turbo-stream action="reset_form" targets="#form"><template></template></turbo-stream>`},
		{"scroll_into_view", ScrollIntoView("#element"),
			`<turbo-stream action="scroll_into_view" targets="#element"><template></template></turbo-stream>`},
		{"set_attribute", SetAttribute("#element", "data-controller", "example"),
			`<turbo-stream action="set_attribute" attribute="data-controller" targets="#element" value="example"><template></template></turbo-stream>`},
		{"set_cookie", SetCookie("name=turbo_power; SameSite=None; Secure"),
			`<turbo-stream action="set_cookie" cookie="name=turbo_power; SameSite=None; Secure"><template></template></turbo-stream>`},
		{"set_cookie_item", SetCookieItem("my-key", "my-value"),
			`<turbo-stream action="set_cookie_item" key="my-key" value="my-value"><template></template></turbo-stream>`},
		{"set_dataset_attribute", SetDatasetAttribute("#element", "data-controller", "example"),
			`<turbo-stream action="set_dataset_attribute" attribute="data-controller" targets="#element" value="example"><template></template></turbo-stream>`},
		{"set_focus", SetFocus("#input"),
			`<turbo-stream action="set_focus" targets="#input"><template></template></turbo-stream>`},
		{"set_meta", SetMeta("viewport", "initial-scale=1.0"),
			`<turbo-stream action="set_meta" content="initial-scale=1.0" name="viewport"><template></template></turbo-stream>`},
		{"set_property", SetProperty("#element", "ariaDisabled", "true"),
			`<turbo-stream action="set_property" name="ariaDisabled" targets="#element" value="true"><template></template></turbo-stream>`},
		{"set_storage_item", SetStorageItem("my-key", "my-value", "local"),
			`<turbo-stream action="set_storage_item" key="my-key" type="local" value="my-value"><template></template></turbo-stream>`},
		{"set_storage_local_item", SetStorageLocalItem("my-key", "my-value"),
			`<turbo-stream action="set_storage_item" key="my-key" type="local" value="my-value"><template></template></turbo-stream>`},
		{"set_storage_session_item", SetStorageSessionItem("my-key", "my-value"),
			`<turbo-stream action="set_storage_item" key="my-key" type="session" value="my-value"><template></template></turbo-stream>`},
		{"set_style", SetStyle("#element", "background", "black"),
			`<turbo-stream action="set_style" name="background" targets="#element" value="black"><template></template></turbo-stream>`},
		{"set_styles", SetStyles("#element", "background: black; color: white"),
			`<turbo-stream action="set_styles" styles="background: black; color: white" targets="#element"><template></template></turbo-stream>`},
		{"set_title", SetTitle("My Title"),
			`<turbo-stream action="set_title" title="My Title"><template></template></turbo-stream>`},
		{"set_value", SetValue("#input", "Value"),
			`<turbo-stream action="set_value" targets="#input" value="Value"><template></template></turbo-stream>`},
		{"text_content", TextContent("#element", "Text Content"),
			`<turbo-stream action="text_content" targets="#element" text="Text Content"><template></template></turbo-stream>`},
		{"turbo_clear_cache", TurboClearCache(),
			`<turbo-stream action="turbo_clear_cache"><template></template></turbo-stream>`},
		{"turbo_frame_reload", TurboFrameReload("user_1"),
			`<turbo-stream action="turbo_frame_reload" target="user_1"><template></template></turbo-stream>`},
		{"turbo_frame_set_src", TurboFrameSetSrc("user_1", "/users"),
			`<turbo-stream action="turbo_frame_set_src" src="/users" target="user_1"><template></template></turbo-stream>`},
		{"turbo_progress_bar_hide", TurboProgressBarHide(),
			`<turbo-stream action="turbo_progress_bar_hide"><template></template></turbo-stream>`},
		{"turbo_progress_bar_set_value", TurboProgressBarSetValue("0"),
			`<turbo-stream action="turbo_progress_bar_set_value" value="0"><template></template></turbo-stream>`},
		{"turbo_progress_bar_show", TurboProgressBarShow(),
			`<turbo-stream action="turbo_progress_bar_show"><template></template></turbo-stream>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNotificationOptions(t *testing.T) {
	got := Notification("Build finished", tag.NewAttributes("body", "All green", "tag", "ci"), "")
	want := `<turbo-stream action="notification" body="All green" tag="ci" title="Build finished"><template></template></turbo-stream>`
	assert.Equal(t, want, got)
}

func TestAttributeValuesAreEscaped(t *testing.T) {
	got := SetTitle(`Tom & "Jerry" <3 'cheese'`)
	want := `<turbo-stream action="set_title" title="Tom &amp; &quot;Jerry&quot; &lt;3 &#x27;cheese&#x27;"><template></template></turbo-stream>`
	assert.Equal(t, want, got)
}

func TestDispatchEventJSON(t *testing.T) {
	got, err := DispatchEventJSON("#cart", "cart:updated", map[string]any{"count": 3, "label": "<b>"})
	require.NoError(t, err)
	want := `<turbo-stream action="dispatch_event" name="cart:updated" targets="#cart"><template>{"count":3,"label":"\u003cb\u003e"}</template></turbo-stream>`
	assert.Equal(t, want, got)

	_, err = DispatchEventJSON("#cart", "broken", make(chan int))
	assert.Error(t, err)
}
