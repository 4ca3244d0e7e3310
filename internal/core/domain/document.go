package domain

import "time"

// EstimatedDocumentSize is the per-document size the engine records.
// It is a fixed estimate, not a measurement.
const EstimatedDocumentSize = 100

// Document is a self-describing record held by the document engine.
type Document struct {
	// ID is the caller-assigned unique identifier. Immutable.
	ID string

	// CreatedAt is when the document was created, to the second.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated, to the second.
	UpdatedAt time.Time

	// Version starts at 1. Nothing increments it yet.
	Version uint64

	// SizeBytes is the engine-estimated size of the record.
	SizeBytes int

	// Data is the structured payload, normally an object.
	Data Value

	// Links maps a relationship name to a target document ID.
	// At most one target per relationship.
	Links map[string]string

	// Tags is an ordered set in first-insertion order.
	Tags []string
}

// NewDocument creates a version 1 document stamped with now.
func NewDocument(id string, data Value, now time.Time) *Document {
	ts := now.Truncate(time.Second)
	return &Document{
		ID:        id,
		CreatedAt: ts,
		UpdatedAt: ts,
		Version:   1,
		SizeBytes: EstimatedDocumentSize,
		Data:      data,
		Links:     make(map[string]string),
		Tags:      nil,
	}
}

// AddLink points relationship rel at target, replacing any previous target.
func (d *Document) AddLink(rel, target string) {
	if d.Links == nil {
		d.Links = make(map[string]string)
	}
	d.Links[rel] = target
}

// AddTag appends tag unless it is already present.
// Returns false when the tag was a duplicate.
func (d *Document) AddTag(tag string) bool {
	if d.HasTag(tag) {
		return false
	}
	d.Tags = append(d.Tags, tag)
	return true
}

// HasTag reports whether the document carries tag.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no mutable state with d.
func (d *Document) Clone() *Document {
	c := *d
	if d.Links != nil {
		c.Links = make(map[string]string, len(d.Links))
		for k, v := range d.Links {
			c.Links[k] = v
		}
	}
	if d.Tags != nil {
		c.Tags = append([]string(nil), d.Tags...)
	}
	return &c
}

// DocumentStoreStats summarises the size of a document engine.
type DocumentStoreStats struct {
	// Documents is the number of stored documents.
	Documents int

	// TagKeys is the number of distinct tags in the tag index.
	TagKeys int

	// LinkKeys is the number of distinct targets in the link index.
	LinkKeys int
}
