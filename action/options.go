package action

// Position is an insertAdjacentHTML/insertAdjacentText position.
//
// See https://developer.mozilla.org/en-US/docs/Web/API/Element/insertAdjacentHTML
type Position string

const (
	// BeforeBegin inserts before the target element itself.
	BeforeBegin Position = "beforebegin"

	// AfterBegin inserts inside the target, before its first child.
	AfterBegin Position = "afterbegin"

	// BeforeEnd inserts inside the target, after its last child.
	BeforeEnd Position = "beforeend"

	// AfterEnd inserts after the target element itself.
	AfterEnd Position = "afterend"
)

// StorageType selects the Web Storage area a storage action touches.
type StorageType string

const (
	LocalStorage   StorageType = "local"
	SessionStorage StorageType = "session"
)

// Visit is a Turbo Drive visit action, used as redirect_to's turbo-action.
type Visit string

const (
	// VisitAdvance pushes a new history entry. This is Turbo's default.
	VisitAdvance Visit = "advance"

	// VisitReplace replaces the current history entry.
	VisitReplace Visit = "replace"

	// VisitRestore restores a previous entry without a network request.
	VisitRestore Visit = "restore"
)

// Console log levels accepted by console_log.
const (
	LevelLog   = "log"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelDebug = "debug"
)
