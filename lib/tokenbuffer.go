package lib

// Fixed two slot lookahead over a tokenReader. current is the token being
// parsed and lookahead is the one after it.
type tokenWindow struct {
	reader    tokenReader
	current   token
	lookahead token
}

func newTokenWindow(reader tokenReader) (*tokenWindow, error) {
	w := &tokenWindow{reader: reader}
	var err error
	w.current, err = reader.next()
	if err != nil {
		return nil, err
	}
	w.lookahead, err = reader.next()
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Shifts the window one token forward.
func (w *tokenWindow) advance() error {
	tok, err := w.reader.next()
	if err != nil {
		return err
	}
	w.current = w.lookahead
	w.lookahead = tok
	return nil
}
