package mcworld

// NameTable is a bidirectional, append-only interning table mapping block
// names to compact ids. Ids are dense in [1,N] and never recycled: once a
// name is interned it keeps its id for the lifetime of the table. Id 1 is
// reserved for minecraft:air, seeded at construction.
//
// A NameTable is not safe for concurrent use; the world view that owns one
// only ever accesses it from a single logical owner (see the package-level
// concurrency notes on World).
type NameTable struct {
	idToName []string // idToName[0] is an unused placeholder; real ids start at 1.
	nameToID map[string]BlockId
}

// NewNameTable returns a NameTable seeded with id 1 = minecraft:air.
func NewNameTable() *NameTable {
	t := &NameTable{
		idToName: make([]string, 1, 64),
		nameToID: make(map[string]BlockId, 64),
	}
	t.intern("minecraft:air")
	return t
}

// GetID returns the id name is interned to, allocating a new one and
// appending it to the table if name has not been seen before. Calling
// GetID twice with the same name always returns the same id.
func (t *NameTable) GetID(name string) BlockId {
	if id, ok := t.nameToID[name]; ok {
		return id
	}
	return t.intern(name)
}

func (t *NameTable) intern(name string) BlockId {
	id := BlockId(len(t.idToName))
	t.idToName = append(t.idToName, name)
	t.nameToID[name] = id
	return id
}

// GetName returns the name id was interned from. It is only meaningful for
// ids this table itself produced via GetID. Id 0 returns the empty
// placeholder string; an id beyond the last one allocated indexes out of
// range and panics, the same as any other out-of-bounds slice access.
func (t *NameTable) GetName(id BlockId) string {
	return t.idToName[id]
}

// Len returns the number of distinct names interned so far, including air.
func (t *NameTable) Len() int {
	return len(t.idToName) - 1
}
