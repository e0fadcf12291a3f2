// Package turbo builds Hotwire Turbo Stream fragments for Go web servers.
//
// A Turbo Stream is a <turbo-stream> element that the Turbo client runtime
// interprets as one DOM mutation: replace this element, append to that list,
// remove every match of a selector. turbo produces those elements as plain
// strings and ships the small HTTP layer needed to send them.
//
// # Building fragments
//
// The seven standard actions are free functions in this package, each with
// a singular variant addressing one element id (target) and an _All variant
// addressing a CSS selector (targets):
//
//	turbo.Replace("message_1", "<div id=\"message_1\">Edited</div>")
//	turbo.RemoveAll(".notice")
//
// The extended turbo_power vocabulary (CSS classes, storage, history,
// console, events, ...) lives in package power. Every action also exists as
// a typed value in package action, which is what the builders use:
//
//	action.Render(action.Append{Target: action.ID("messages"), Content: html})
//
// Output is deterministic: attributes are emitted in ascending name order and
// attribute values are escaped for a double-quoted attribute.
//
// # Trust boundary
//
// Content is placed inside the stream's <template> verbatim and is NEVER
// escaped. It is meant to be HTML your application already rendered, for
// example with templ (see Content). Passing user input as content without
// escaping it first is an HTML injection. Attribute values, on the other
// hand, are always escaped and are safe for arbitrary strings.
//
// # Sending fragments
//
// Turbo only applies streams served as text/vnd.turbo-stream.html:
//
//	func create(w http.ResponseWriter, r *http.Request) {
//	    turbo.Write(w, turbo.Append("messages", html), turbo.Update("count", "3"))
//	}
//
// Response collects fragments, toast flashes, headers and a status code, and
// Handler turns a function returning a Response into an http.Handler with
// centralized error handling.
//
// Deferred streams (DeferURL, Deferred) carry a stream inside a signed or
// encrypted URL parameter so it can be fetched later, for instance from a
// <turbo-stream-source> or a link with data-turbo-stream.
package turbo
