package memory

// table is a keyed collection with monotonically assigned ids. Ids start at 1,
// are never reused, and iteration follows insertion order.
type table[T any] struct {
	rows map[int64]T
	ids  []int64
	last int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

// insert allocates the next id, builds the row for it and stores it.
func (t *table[T]) insert(build func(id int64) T) T {
	t.last++
	id := t.last
	row := build(id)
	t.rows[id] = row
	t.ids = append(t.ids, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// put replaces an existing row. It is a no-op for unknown ids.
func (t *table[T]) put(id int64, row T) {
	if _, ok := t.rows[id]; ok {
		t.rows[id] = row
	}
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return true
}

// each calls fn for every row in insertion order until fn returns false.
func (t *table[T]) each(fn func(T) bool) {
	for _, id := range t.ids {
		if !fn(t.rows[id]) {
			return
		}
	}
}

func (t *table[T]) len() int {
	return len(t.ids)
}
