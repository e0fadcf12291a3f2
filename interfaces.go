package turbo

import (
	"github.com/pthm/turbo/action"
	"github.com/pthm/turbo/lib/tag"
)

// Action is a single Turbo Stream operation (see package action).
type Action = action.Action

// Stream is the canonical, unserialized form of an action.
type Stream = tag.Stream

// Attributes is an immutable stream attribute set.
type Attributes = tag.Attributes

// MediaType is the content type Turbo requires for stream responses.
const MediaType = "text/vnd.turbo-stream.html"
