package jsondoc

// Store is the host variable namespace. Operations read document text from
// it, write mutated documents back, and report the RESULT code (plus TYPE for
// queries) through it. Implementations need not be safe for concurrent use;
// each operation works on a private tree and the store is the only shared
// resource.
type Store interface {
	// Get returns the value of a named variable and whether it exists.
	Get(name string) (string, bool)
	// Set creates or replaces a named variable.
	Set(name, value string)
}

// MemStore is an in-memory Store for tests and standalone hosts.
type MemStore map[string]string

func (m MemStore) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MemStore) Set(name, value string) {
	m[name] = value
}
