package canon

// Policy is the interning capability for identifier text: candidates are raw
// strings, keys are their NFC form.
type Policy struct{}

func (Policy) Key(raw string) string { return Key(raw) }

func (Policy) Make(raw string) (Text, error) {
	t, err := New(raw)
	if err != nil {
		return Text{}, err
	}
	return *t, nil
}

func (Policy) Compare(a, b *Text) int { return Compare(a, b) }
