package bedrock

import "sync"

// IDTable interns entity identifiers such as "minecraft:cow" into stable
// numeric handles, starting at 1.
type IDTable struct {
	mu    sync.Mutex
	ids   map[string]int
	names []string
}

func NewIDTable() *IDTable {
	return &IDTable{ids: make(map[string]int)}
}

func (t *IDTable) ID(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	t.names = append(t.names, name)
	id := len(t.names)
	t.ids[name] = id
	return id
}

// Name returns the identifier behind id, or "" if it was never interned.
func (t *IDTable) Name(id int) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 1 || id > len(t.names) {
		return ""
	}
	return t.names[id-1]
}
