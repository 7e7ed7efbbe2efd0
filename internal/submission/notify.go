package submission

// Kind distinguishes user-facing notifications.
type Kind int

const (
	// KindSelectionLimit is raised when a bounded group is already full.
	KindSelectionLimit Kind = iota
	// KindSubmissionFailed is raised when the analyze call fails.
	KindSubmissionFailed
)

func (k Kind) String() string {
	switch k {
	case KindSelectionLimit:
		return "selection_limit"
	case KindSubmissionFailed:
		return "submission_failed"
	}
	return "unknown"
}

// User-facing notification texts.
const (
	SelectionLimitMessage   = "Please select only 2 options"
	SubmissionFailedMessage = "Error! Please check all fields are filled and backend is running"
)

// Notifier receives user-facing notifications.
type Notifier interface {
	Notify(kind Kind, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(kind Kind, msg string)

// Notify calls f(kind, msg).
func (f NotifierFunc) Notify(kind Kind, msg string) {
	f(kind, msg)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Kind, string) {}
