package mosaic

// LeastFrequent returns the signal colour of an image: the second most
// frequent colour of its table. A single-colour table yields that colour.
//
// The table is not modified. Ties resolve to the colour sampled first, both
// when picking the most frequent colour that is excluded and when picking the
// runner-up.
func LeastFrequent(t *FrequencyTable) (Color, error) {
	if t == nil || t.Len() == 0 {
		return Color{}, ErrEmptyColorSet
	}
	if sole, ok := t.Sole(); ok {
		return sole, nil
	}

	first, _ := t.argmax(nil)
	second, _ := t.argmax(func(c Color) bool { return c == first })
	return second, nil
}
