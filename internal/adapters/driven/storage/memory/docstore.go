package memory

import (
	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentEngine = (*DocumentStore)(nil)

// DocumentStoreOptions tunes index maintenance.
type DocumentStoreOptions struct {
	// RetractStale removes a document's previous tag and link index
	// entries when it is stored again under the same ID. When false,
	// stale entries stay and repeated stores compound.
	RetractStale bool
}

// DocumentStore is an in-memory document engine with a tag index and a
// link-target index. Both indexes are written only by Store.
//
// It holds no locks: the benchmark drives it from a single goroutine.
type DocumentStore struct {
	opts      DocumentStoreOptions
	documents map[string]*domain.Document
	tagIndex  idIndex
	linkIndex idIndex
}

// NewDocumentStore creates a document store that keeps stale index entries.
func NewDocumentStore() *DocumentStore {
	return NewDocumentStoreWithOptions(DocumentStoreOptions{})
}

// NewDocumentStoreWithOptions creates a document store with opts.
func NewDocumentStoreWithOptions(opts DocumentStoreOptions) *DocumentStore {
	return &DocumentStore{
		opts:      opts,
		documents: make(map[string]*domain.Document),
		tagIndex:  make(idIndex),
		linkIndex: make(idIndex),
	}
}

// Store inserts or replaces a document. The engine keeps its own copy.
func (s *DocumentStore) Store(doc *domain.Document) {
	if prev, ok := s.documents[doc.ID]; ok && s.opts.RetractStale {
		for _, tag := range prev.Tags {
			s.tagIndex.retract(tag, prev.ID)
		}
		for _, target := range prev.Links {
			s.linkIndex.retract(target, prev.ID)
		}
	}

	stored := doc.Clone()
	for _, tag := range stored.Tags {
		s.tagIndex.add(tag, stored.ID)
	}
	for _, target := range stored.Links {
		s.linkIndex.add(target, stored.ID)
	}
	s.documents[stored.ID] = stored
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(id string) (*domain.Document, bool) {
	doc, ok := s.documents[id]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// FindByTag returns every document indexed under tag.
func (s *DocumentStore) FindByTag(tag string) []*domain.Document {
	return s.resolve(s.tagIndex.lookup(tag))
}

// FindLinkedTo returns every document linking to target.
func (s *DocumentStore) FindLinkedTo(target string) []*domain.Document {
	return s.resolve(s.linkIndex.lookup(target))
}

// Stats reports the document count and distinct index keys.
func (s *DocumentStore) Stats() domain.DocumentStoreStats {
	return domain.DocumentStoreStats{
		Documents: len(s.documents),
		TagKeys:   len(s.tagIndex),
		LinkKeys:  len(s.linkIndex),
	}
}

// resolve maps IDs to documents, skipping IDs with no stored document.
func (s *DocumentStore) resolve(ids []string) []*domain.Document {
	if len(ids) == 0 {
		return nil
	}
	result := make([]*domain.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := s.documents[id]; ok {
			result = append(result, doc.Clone())
		}
	}
	return result
}
