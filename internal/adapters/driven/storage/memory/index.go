package memory

// idIndex is an inverted index from a key to record IDs in append order.
// A record ID may appear more than once under a key when the same ID is
// stored repeatedly without retraction.
type idIndex map[string][]string

// add appends id under key.
func (ix idIndex) add(key, id string) {
	ix[key] = append(ix[key], id)
}

// retract removes every occurrence of id under key, dropping the key
// once it has no IDs left.
func (ix idIndex) retract(key, id string) {
	ids, ok := ix[key]
	if !ok {
		return
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == 0 {
		delete(ix, key)
		return
	}
	ix[key] = kept
}

// lookup returns the IDs under key.
func (ix idIndex) lookup(key string) []string {
	return ix[key]
}
