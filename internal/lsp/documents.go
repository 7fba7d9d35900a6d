package lsp

import "sync"

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open documents and their latest analysis keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Open stores content and analyzes it.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces the content of uri and returns the fresh analysis.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	result := Analyze(uri, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the analysis of the last stored content, or nil.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil
	}
	return doc.result
}
