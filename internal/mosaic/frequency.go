package mosaic

// DefaultStride samples every second pixel. Counting is an approximation
// traded for speed; tests use a stride of 1 to count exhaustively.
const DefaultStride = 2

// FrequencyTable counts how often each exact colour was sampled.
//
// The table remembers the order in which colours were first seen so that
// ties between equal counts always resolve the same way. Every colour in the
// table has a count of at least 1.
type FrequencyTable struct {
	counts map[Color]int
	order  []Color
	total  int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Color]int)}
}

// Sample builds a FrequencyTable from colors, counting the entries at indices
// 0, stride, 2*stride, and so on. A stride below 1 counts every entry.
func Sample(colors []Color, stride int) *FrequencyTable {
	if stride < 1 {
		stride = 1
	}
	t := NewFrequencyTable()
	for i := 0; i < len(colors); i += stride {
		t.Add(colors[i])
	}
	return t
}

// Add records one occurrence of c.
func (t *FrequencyTable) Add(c Color) {
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c]++
	t.total++
}

// Count returns how often c was sampled, 0 when it never was.
func (t *FrequencyTable) Count(c Color) int {
	return t.counts[c]
}

// Len returns the number of distinct colours.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total returns the number of sampled pixels.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Sole returns the only colour of a single-colour table.
func (t *FrequencyTable) Sole() (Color, bool) {
	if len(t.order) != 1 {
		return Color{}, false
	}
	return t.order[0], true
}

// MostFrequent returns the colour with the highest count. On ties the colour
// sampled first wins.
func (t *FrequencyTable) MostFrequent() (Color, int, error) {
	if len(t.order) == 0 {
		return Color{}, 0, ErrEmptyColorSet
	}
	best, bestCount := t.argmax(nil)
	return best, bestCount, nil
}

// argmax scans in first-seen order and keeps the first colour reaching a new
// strict maximum. Colours for which skip returns true are ignored.
func (t *FrequencyTable) argmax(skip func(Color) bool) (Color, int) {
	var best Color
	bestCount := 0
	for _, c := range t.order {
		if skip != nil && skip(c) {
			continue
		}
		if n := t.counts[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, bestCount
}
