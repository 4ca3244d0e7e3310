package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
	"github.com/custodia-labs/burrowdb/internal/logger"
	"github.com/custodia-labs/burrowdb/internal/rng"
)

// Synthetic record distribution.
const (
	scoreMin, scoreMax       = 1, 100
	categoryMin, categoryMax = 1, 10
	tagMin, tagMax           = 1, 20

	tagProbability       = 0.7
	importantProbability = 0.3
	linkProbability      = 0.4

	importantTag    = "important"
	referencesLink  = "references"
	documentKinds   = 4
	relationalKinds = 3
	documentsTable  = "documents"
	tagsTable       = "tags"
	linksTable      = "links"
)

// Memory estimate constants. The figures model a 64-bit layout of the
// engines' containers; they are not measured from the Go runtime.
const (
	documentStoreBaseBytes = 144
	documentRecordBytes    = 184
	indexEntryBytes        = 64

	relationalStoreBaseBytes = 48
	relationalTableBytes     = 1000
	relationalRecordBytes    = 200
)

// record is one synthetic record, shared verbatim by both engines so
// that record i carries the same values, tags and link in each.
type record struct {
	id       string
	title    string
	content  string
	score    int
	category string
	tags     []string
	hasLink  bool
	// linkTo is the index of the referenced record when hasLink is set.
	linkTo int
}

// synthesize draws record i from gen. The draw order is fixed: score,
// category, tag coin (+ tag), important coin, link coin (+ target).
func synthesize(gen *rng.Generator, i int) (record, error) {
	r := record{
		id:      documentID(i),
		title:   fmt.Sprintf("Document %d", i),
		content: fmt.Sprintf("Content for document %d", i),
	}

	score, err := gen.Range(scoreMin, scoreMax)
	if err != nil {
		return r, err
	}
	r.score = score

	cat, err := gen.Range(categoryMin, categoryMax)
	if err != nil {
		return r, err
	}
	r.category = "cat_" + strconv.Itoa(cat)

	if gen.Bool(tagProbability) {
		tag, err := randomTag(gen)
		if err != nil {
			return r, err
		}
		r.tags = append(r.tags, tag)
	}
	if gen.Bool(importantProbability) {
		r.tags = append(r.tags, importantTag)
	}

	if i > 0 && gen.Bool(linkProbability) {
		target, err := gen.Range(0, i)
		if err != nil {
			return r, err
		}
		r.hasLink = true
		r.linkTo = target
	}
	return r, nil
}

func (r record) data() map[string]domain.Value {
	return map[string]domain.Value{
		"title":    domain.StringValue(r.title),
		"content":  domain.StringValue(r.content),
		"score":    domain.IntValue(int64(r.score)),
		"category": domain.StringValue(r.category),
	}
}

func documentID(i int) string {
	return "doc_" + strconv.Itoa(i)
}

func randomTag(gen *rng.Generator) (string, error) {
	n, err := gen.Range(tagMin, tagMax)
	if err != nil {
		return "", err
	}
	return "tag_" + strconv.Itoa(n), nil
}

func randomDocumentID(gen *rng.Generator, records int) (string, error) {
	n, err := gen.Range(0, records)
	if err != nil {
		return "", err
	}
	return documentID(n), nil
}

// WorkloadParams sizes a single workload run.
type WorkloadParams struct {
	// Records is the number of synthetic records.
	Records int

	// Queries is the number of queries issued after generation.
	Queries int

	// Seed seeds the generator.
	Seed uint64
}

// WorkloadDriver generates a dataset into an engine, queries it and
// measures both phases.
type WorkloadDriver struct {
	now func() time.Time
}

// NewWorkloadDriver creates a driver that reads the wall clock.
func NewWorkloadDriver() *WorkloadDriver {
	return &WorkloadDriver{now: time.Now}
}

// RunDocument runs the workload against a document engine.
func (w *WorkloadDriver) RunDocument(
	ctx context.Context,
	store driven.DocumentEngine,
	p WorkloadParams,
) (*domain.WorkloadResult, error) {
	gen := rng.New(p.Seed)
	result := &domain.WorkloadResult{
		Engine:  domain.EngineDocument,
		Records: p.Records,
		Queries: p.Queries,
	}

	start := w.now()
	if err := w.populateDocuments(ctx, store, gen, p.Records); err != nil {
		return nil, fmt.Errorf("populate document store: %w", err)
	}
	result.InsertTime = w.now().Sub(start)

	start = w.now()
	found, err := queryDocuments(ctx, store, gen, p)
	if err != nil {
		return nil, fmt.Errorf("query document store: %w", err)
	}
	result.QueryTime = w.now().Sub(start)
	result.Found = found
	result.MemoryBytes = estimateDocumentMemory(store.Stats())

	logger.Debug("document workload: %d records in %s, %d queries in %s, found %d",
		p.Records, result.InsertTime, p.Queries, result.QueryTime, found)
	return result, nil
}

// RunRelational runs the workload against a relational engine.
func (w *WorkloadDriver) RunRelational(
	ctx context.Context,
	db driven.RelationalEngine,
	p WorkloadParams,
) (*domain.WorkloadResult, error) {
	gen := rng.New(p.Seed)
	result := &domain.WorkloadResult{
		Engine:  domain.EngineRelational,
		Records: p.Records,
		Queries: p.Queries,
	}

	db.CreateTable(documentsTable)
	db.CreateTable(tagsTable)
	db.CreateTable(linksTable)

	start := w.now()
	if err := w.populateTables(ctx, db, gen, p.Records); err != nil {
		return nil, fmt.Errorf("populate relational store: %w", err)
	}
	result.InsertTime = w.now().Sub(start)

	start = w.now()
	found, err := queryTables(ctx, db, gen, p)
	if err != nil {
		return nil, fmt.Errorf("query relational store: %w", err)
	}
	result.QueryTime = w.now().Sub(start)
	result.Found = found
	result.MemoryBytes = estimateRelationalMemory(db.Stats(), p.Records)

	logger.Debug("relational workload: %d records in %s, %d queries in %s, found %d",
		p.Records, result.InsertTime, p.Queries, result.QueryTime, found)
	return result, nil
}

func (w *WorkloadDriver) populateDocuments(
	ctx context.Context,
	store driven.DocumentEngine,
	gen *rng.Generator,
	records int,
) error {
	for i := 0; i < records; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := synthesize(gen, i)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		doc := domain.NewDocument(r.id, domain.ObjectValue(r.data()), w.now())
		for _, tag := range r.tags {
			doc.AddTag(tag)
		}
		if r.hasLink {
			doc.AddLink(referencesLink, documentID(r.linkTo))
		}
		store.Store(doc)
	}
	return nil
}

func (w *WorkloadDriver) populateTables(
	ctx context.Context,
	db driven.RelationalEngine,
	gen *rng.Generator,
	records int,
) error {
	for i := 0; i < records; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := synthesize(gen, i)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		if err := db.Insert(documentsTable, domain.NewRow(r.id, r.data())); err != nil {
			return err
		}

		for n, tag := range r.tags {
			row := domain.NewRow(fmt.Sprintf("tag_%d_%d", i, n+1), map[string]domain.Value{
				"doc_id": domain.StringValue(r.id),
				"tag":    domain.StringValue(tag),
			})
			if err := db.Insert(tagsTable, row); err != nil {
				return err
			}
		}

		if r.hasLink {
			row := domain.NewRow(fmt.Sprintf("link_%d_%d", i, r.linkTo), map[string]domain.Value{
				"from_id":      domain.StringValue(r.id),
				"to_id":        domain.StringValue(documentID(r.linkTo)),
				"relationship": domain.StringValue(referencesLink),
			})
			if err := db.Insert(linksTable, row); err != nil {
				return err
			}
		}
	}
	return nil
}

// queryDocuments issues p.Queries queries drawn uniformly from four kinds
// and returns the sum of result sizes.
func queryDocuments(ctx context.Context, store driven.DocumentEngine, gen *rng.Generator, p WorkloadParams) (int, error) {
	found := 0
	for q := 0; q < p.Queries; q++ {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		kind, err := gen.Range(0, documentKinds)
		if err != nil {
			return found, err
		}

		switch kind {
		case 0:
			id, err := randomDocumentID(gen, p.Records)
			if err != nil {
				return found, err
			}
			if _, ok := store.Get(id); ok {
				found++
			}
		case 1:
			tag, err := randomTag(gen)
			if err != nil {
				return found, err
			}
			found += len(store.FindByTag(tag))
		case 2:
			target, err := randomDocumentID(gen, p.Records)
			if err != nil {
				return found, err
			}
			found += len(store.FindLinkedTo(target))
		default:
			found += len(store.FindByTag(importantTag))
		}
	}
	return found, nil
}

// queryTables issues p.Queries queries drawn uniformly from three kinds.
// Tag and link searches go through the tags and links tables.
func queryTables(ctx context.Context, db driven.RelationalEngine, gen *rng.Generator, p WorkloadParams) (int, error) {
	found := 0
	for q := 0; q < p.Queries; q++ {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		kind, err := gen.Range(0, relationalKinds)
		if err != nil {
			return found, err
		}

		switch kind {
		case 0:
			id, err := randomDocumentID(gen, p.Records)
			if err != nil {
				return found, err
			}
			if _, ok := db.Get(documentsTable, id); ok {
				found++
			}
		case 1:
			tag, err := randomTag(gen)
			if err != nil {
				return found, err
			}
			rows, err := db.FindByValue(tagsTable, "tag", domain.StringValue(tag))
			if err != nil {
				return found, err
			}
			found += len(rows)
		default:
			target, err := randomDocumentID(gen, p.Records)
			if err != nil {
				return found, err
			}
			rows, err := db.FindByValue(linksTable, "to_id", domain.StringValue(target))
			if err != nil {
				return found, err
			}
			found += len(rows)
		}
	}
	return found, nil
}

func estimateDocumentMemory(s domain.DocumentStoreStats) int {
	return documentStoreBaseBytes +
		s.Documents*documentRecordBytes +
		(s.TagKeys+s.LinkKeys)*indexEntryBytes
}

func estimateRelationalMemory(s domain.RelationalStoreStats, records int) int {
	return relationalStoreBaseBytes +
		s.Tables*relationalTableBytes +
		records*relationalRecordBytes
}
