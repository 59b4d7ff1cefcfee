// internal/infrastructure/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory implements Store with an in-process map. It backs the development
// driver and the service tests: documents go through a JSON round trip on
// every read and write so callers see the same copy semantics a remote
// store gives them.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]memoryDoc
	seq  int
}

type memoryDoc struct {
	fields map[string]any
	seq    int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]map[string]memoryDoc),
	}
}

// Get decodes the document with the given id into out.
func (m *Memory) Get(ctx context.Context, collection, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return ErrNotFound
	}
	return decodeDoc(doc.fields, out)
}

// Query decodes all documents where field equals value into out.
func (m *Memory) Query(ctx context.Context, collection, field string, value any, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	want := fmt.Sprint(normalize(value))

	var matches []memoryDoc
	for _, doc := range m.data[collection] {
		if got, ok := doc.fields[field]; ok && fmt.Sprint(got) == want {
			matches = append(matches, doc)
		}
	}

	// Stable insertion order keeps list endpoints deterministic.
	sort.Slice(matches, func(i, j int) bool { return matches[i].seq < matches[j].seq })

	fields := make([]map[string]any, len(matches))
	for i, doc := range matches {
		fields[i] = doc.fields
	}
	return decodeDoc(fields, out)
}

// List decodes every document in a collection into out.
func (m *Memory) List(ctx context.Context, collection string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]memoryDoc, 0, len(m.data[collection]))
	for _, doc := range m.data[collection] {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].seq < docs[j].seq })

	fields := make([]map[string]any, len(docs))
	for i, doc := range docs {
		fields[i] = doc.fields
	}
	return decodeDoc(fields, out)
}

// Health reports the in-process store as always reachable.
func (m *Memory) Health(ctx context.Context) error {
	return nil
}

// Insert stores a new document and returns its assigned id.
func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	fields, err := encodeDoc(doc)
	if err != nil {
		return "", err
	}

	id, _ := fields["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}
	fields["id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[collection] == nil {
		m.data[collection] = make(map[string]memoryDoc)
	}
	m.seq++
	m.data[collection][id] = memoryDoc{fields: fields, seq: m.seq}
	return id, nil
}

// Update overwrites the given fields on an existing document.
func (m *Memory) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		doc.fields[key] = normalize(value)
	}
	m.data[collection][id] = doc
	return nil
}

// Delete removes a document. Deleting an absent document is not an error.
func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[collection], id)
	return nil
}

// encodeDoc flattens a document into generic fields via JSON.
func encodeDoc(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return fields, nil
}

// decodeDoc copies generic fields back into a typed destination via JSON.
func decodeDoc(fields any, out any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode stored document: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode stored document: %w", err)
	}
	return nil
}

// normalize pushes a value through the same JSON round trip stored
// documents get, so equality checks compare like with like.
func normalize(value any) any {
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return value
	}
	return v
}
