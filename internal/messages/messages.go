package messages

// View identifies the screen shown below the header.
type View int

const (
	ViewRadio View = iota
	ViewWrite
)

func (v View) String() string {
	switch v {
	case ViewRadio:
		return "radio"
	case ViewWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Next returns the view that follows v when cycling.
func (v View) Next() View {
	if v == ViewWrite {
		return ViewRadio
	}
	return ViewWrite
}

// SwitchView requests showing a view. Leaving the write view saves its
// draft first.
type SwitchView struct {
	View View
}

// ChannelChanged is sent when a tuner settles on a different item.
type ChannelChanged struct {
	Tuner string
	Index int
	Item  string
}

// TuningDone re-enables the channel tuner after a channel change. Token
// ties it to the change that scheduled it.
type TuningDone struct {
	Token int
}

// TogglePlayback requests flipping the shared play/pause flag.
type TogglePlayback struct{}

// PlaybackChanged reports the play/pause flag after a local or external
// change.
type PlaybackChanged struct {
	Playing bool
}

// StoreChanged is sent when another instance rewrote the shared store.
type StoreChanged struct{}

// ShowPricing opens the pricing modal.
type ShowPricing struct{}

// ClosePricing closes the pricing modal.
type ClosePricing struct{}

// DraftSaved is sent after the write view stored a draft.
type DraftSaved struct {
	ID      string
	Content string
}

// ToastLevel identifies the type of toast notification to display.
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
)

// Toast requests a toast notification in the UI.
type Toast struct {
	Message string
	Level   ToastLevel
}

// Error represents an application error
type Error struct {
	Err     error
	Context string
	// Logged is set when the error was already written to the log.
	Logged bool
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error { return e.Err }
