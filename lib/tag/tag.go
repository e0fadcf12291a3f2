// Package tag assembles <turbo-stream> elements.
//
// It is the single primitive every action builder delegates to: an attribute
// set plus inner content in, one canonical fragment string out. Output is
// byte-for-byte stable. Attributes are emitted in ascending key order and
// attribute values are escaped for a double-quoted attribute context.
//
// Content is written inside the <template> element exactly as given. It is
// never escaped: callers pass pre-rendered, trusted HTML. Passing untrusted
// input as content is an injection the caller must prevent.
package tag

import "strings"

const (
	openTag   = "<turbo-stream"
	openBody  = "><template>"
	closeTags = "</template></turbo-stream>"

	// staticLen is the length of a stream with no attributes and no content.
	staticLen = len(openTag) + len(openBody) + len(closeTags)
)

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#x27;",
)

// Escape encodes s for use inside a double-quoted HTML attribute.
func Escape(s string) string {
	return attrEscaper.Replace(s)
}

// Tag renders a <turbo-stream> element.
//
// Each attribute is written as ` key="escaped value"` in ascending key order,
// followed by content wrapped in <template>. Keys are written as-is; they
// are expected to be static names from the action vocabulary.
//
//	tag.Tag(tag.NewAttributes("action", "remove", "target", "item_1"), "")
//	// <turbo-stream action="remove" target="item_1"><template></template></turbo-stream>
func Tag(attrs Attributes, content string) string {
	escaped := make([]string, len(attrs.attrs))
	size := staticLen + len(content)
	for i, attr := range attrs.attrs {
		escaped[i] = Escape(attr.Value)
		size += 4 + len(attr.Key) + len(escaped[i])
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteString(openTag)
	for i, attr := range attrs.attrs {
		sb.WriteByte(' ')
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(escaped[i])
		sb.WriteByte('"')
	}
	sb.WriteString(openBody)
	sb.WriteString(content)
	sb.WriteString(closeTags)
	return sb.String()
}

// TagMap renders a <turbo-stream> element from a plain map.
func TagMap(attrs map[string]string, content string) string {
	return Tag(AttributesFrom(attrs), content)
}
