package text

// ClickAction enumerates what happens when styled text is clicked.
type ClickAction uint8

const (
	ClickOpenURL ClickAction = iota
	ClickOpenFile
	ClickRunCommand
	ClickSuggestCommand
	ClickChangePage
	ClickCopyToClipboard
)

func (a ClickAction) String() string {
	switch a {
	case ClickOpenURL:
		return "open_url"
	case ClickOpenFile:
		return "open_file"
	case ClickRunCommand:
		return "run_command"
	case ClickSuggestCommand:
		return "suggest_command"
	case ClickChangePage:
		return "change_page"
	case ClickCopyToClipboard:
		return "copy_to_clipboard"
	default:
		// this should never happen
		panic("unknown click action")
	}
}

// ClickEvent pairs a click action with its string payload (URL, command,
// page number and so on, depending on the action).
type ClickEvent struct {
	action ClickAction
	value  string
}

func NewClickEvent(action ClickAction, value string) ClickEvent {
	return ClickEvent{action: action, value: value}
}

func (e ClickEvent) Action() ClickAction { return e.action }
func (e ClickEvent) Value() string       { return e.value }

// HoverAction enumerates what is shown when styled text is hovered.
type HoverAction uint8

const (
	HoverShowText HoverAction = iota
)

func (a HoverAction) String() string {
	switch a {
	case HoverShowText:
		return "show_text"
	default:
		// this should never happen
		panic("unknown hover action")
	}
}

// HoverEvent pairs a hover action with a component payload.
type HoverEvent struct {
	action HoverAction
	value  Component
}

// ShowText builds a show-text hover event.
func ShowText(value Component) HoverEvent {
	return HoverEvent{action: HoverShowText, value: value}
}

func (e HoverEvent) Action() HoverAction { return e.action }
func (e HoverEvent) Value() Component    { return e.value }

func (e HoverEvent) Equal(other HoverEvent) bool {
	return e.action == other.action && componentEqual(e.value, other.value)
}
