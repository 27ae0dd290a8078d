package model

// ModKind distinguishes staged edit records.
type ModKind int

const (
	ModCreate ModKind = iota
	ModDelete
)

func (k ModKind) String() string {
	if k == ModCreate {
		return "create"
	}
	return "delete"
}

// Modification is one staged edit, keyed by partition number in the Journal.
type Modification struct {
	Kind  ModKind
	Start uint64
	End   uint64
}

// Journal records edits staged during the session, in insertion order.
// Nothing consumes it yet; it is the hook for a future commit path that
// writes the table back to disk, and the summary page displays it.
type Journal struct {
	order   []uint16
	entries map[uint16]Modification
}

// Stage records a modification for a partition number, replacing any
// earlier record for the same number.
func (j *Journal) Stage(number uint16, mod Modification) {
	if j.entries == nil {
		j.entries = make(map[uint16]Modification)
	}
	if _, ok := j.entries[number]; !ok {
		j.order = append(j.order, number)
	}
	j.entries[number] = mod
}

// Remove drops the record for a partition number, if any. Used when a
// staged-only partition is deleted again before commit.
func (j *Journal) Remove(number uint16) {
	if _, ok := j.entries[number]; !ok {
		return
	}
	delete(j.entries, number)
	for i, n := range j.order {
		if n == number {
			j.order = append(j.order[:i], j.order[i+1:]...)
			break
		}
	}
}

// Get returns the staged modification for a number.
func (j *Journal) Get(number uint16) (Modification, bool) {
	mod, ok := j.entries[number]
	return mod, ok
}

// Len returns the number of staged records.
func (j *Journal) Len() int { return len(j.entries) }

// Each calls fn for every staged record in insertion order.
func (j *Journal) Each(fn func(number uint16, mod Modification)) {
	for _, n := range j.order {
		fn(n, j.entries[n])
	}
}
