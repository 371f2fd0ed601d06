package services

import (
	"regexp"
	"strings"
)

// SignLayout describes the grid a letter sign is assembled from: one row of
// message characters and one centered row of name characters flanked by
// decorative circles. The party crew lays the physical sign out from this.
type SignLayout struct {
	// Columns is the grid width: message length plus two empty columns on
	// each side.
	Columns int

	// MessageChars are the message cells in order. A numeric suffix such as
	// "th" in "18th" occupies a single cell.
	MessageChars []string

	// NameRow is the full-width name row: empty strings pad both sides so
	// the name sits centered.
	NameRow []string

	// CirclesPerSide is how many decorative circles flank the name on each
	// side.
	CirclesPerSide int

	// FontScale shrinks as the grid widens so the sign stays one panel wide.
	FontScale float64
}

var numberSuffixPattern = regexp.MustCompile(`([0-9]+)([a-zA-Z]+)(\s|$)`)

// ComputeSignLayout maps a customer's message and recipient name to the grid
// description. Spaces are dropped, letters are uppercased, and ordinal
// suffixes after numbers ("18th", "2nd") are kept as one cell so they can be
// printed small above the number. Empty input yields a zero layout.
func ComputeSignLayout(message, name string) SignLayout {
	if message == "" {
		return SignLayout{}
	}

	messageChars := splitMessage(message)
	columns := len(messageChars) + 4

	nameChars := strings.Split(strings.ToUpper(removeSpaces(name)), "")
	if name == "" {
		nameChars = nil
	}

	emptyBefore := (columns - len(nameChars)) / 2
	emptyAfter := columns - len(nameChars) - emptyBefore

	nameRow := make([]string, 0, columns)
	for i := 0; i < emptyBefore; i++ {
		nameRow = append(nameRow, "")
	}
	nameRow = append(nameRow, nameChars...)
	for i := 0; i < emptyAfter; i++ {
		nameRow = append(nameRow, "")
	}

	return SignLayout{
		Columns:        columns,
		MessageChars:   messageChars,
		NameRow:        nameRow,
		CirclesPerSide: (columns - len(nameChars)) / 4,
		FontScale:      fontScaleFor(columns),
	}
}

// splitMessage breaks the message into cells, keeping a number's ordinal
// suffix as one unit.
func splitMessage(message string) []string {
	compact := removeSpaces(message)

	match := numberSuffixPattern.FindStringSubmatch(message)
	if match == nil {
		return strings.Split(strings.ToUpper(compact), "")
	}

	number, suffix := match[1], match[2]
	fullMatch := removeSpaces(match[0])
	idx := strings.Index(compact, fullMatch)
	if idx < 0 {
		return strings.Split(strings.ToUpper(compact), "")
	}

	before := compact[:idx]
	after := compact[idx+len(number)+len(suffix):]

	cells := make([]string, 0, len(compact))
	cells = append(cells, strings.Split(strings.ToUpper(before), "")...)
	cells = append(cells, strings.Split(number, "")...)
	cells = append(cells, strings.ToUpper(suffix))
	cells = append(cells, strings.Split(strings.ToUpper(after), "")...)
	return cells
}

func removeSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// fontScaleFor steps the character size down as the grid widens.
func fontScaleFor(columns int) float64 {
	switch {
	case columns <= 10:
		return 1.5
	case columns <= 15:
		return 1.25
	case columns <= 20:
		return 1.0
	case columns <= 25:
		return 0.875
	case columns <= 30:
		return 0.75
	default:
		return 0.625
	}
}
