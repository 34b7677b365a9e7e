package markup

// Input is the text handed to a Converter. The zero value is empty input.
type Input struct {
	text string
}

// Text wraps markdown source.
func Text(source string) Input {
	return Input{text: source}
}

// Empty returns an input that converts to the empty string.
func Empty() Input {
	return Input{}
}

// FromValue normalises an untyped value. Strings, non-nil string pointers
// and byte slices become text; nil and every other type become empty input.
func FromValue(value any) Input {
	switch v := value.(type) {
	case Input:
		return v
	case string:
		return Text(v)
	case *string:
		if v == nil {
			return Empty()
		}
		return Text(*v)
	case []byte:
		return Text(string(v))
	default:
		return Empty()
	}
}

// String returns the raw markdown source.
func (in Input) String() string {
	return in.text
}

// IsEmpty reports whether the input has no source text.
func (in Input) IsEmpty() bool {
	return in.text == ""
}
