package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// In-memory implementations of the storage interfaces. They back the test
// suites and local development without a DynamoDB endpoint.

type MemoryPositionStorage struct {
	mu    sync.RWMutex
	items map[string]*Position
}

func NewMemoryPositionStorage() *MemoryPositionStorage {
	return &MemoryPositionStorage{items: make(map[string]*Position)}
}

func (s *MemoryPositionStorage) Get(_ context.Context, id string) (*Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryPositionStorage) GetAll(_ context.Context) ([]*Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Position, 0, len(s.items))
	for _, p := range s.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemoryPositionStorage) Create(_ context.Context, position *Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[position.ID]; ok {
		return ErrItemWithIDAlreadyExists
	}
	cp := *position
	s.items[position.ID] = &cp
	return nil
}

func (s *MemoryPositionStorage) Update(_ context.Context, position *Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *position
	s.items[position.ID] = &cp
	return nil
}

func (s *MemoryPositionStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type MemoryCandidateStorage struct {
	mu    sync.RWMutex
	items map[string]*Candidate
}

func NewMemoryCandidateStorage() *MemoryCandidateStorage {
	return &MemoryCandidateStorage{items: make(map[string]*Candidate)}
}

func (s *MemoryCandidateStorage) Get(_ context.Context, id string) (*Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryCandidateStorage) GetAll(_ context.Context) ([]*Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Candidate, 0, len(s.items))
	for _, c := range s.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryCandidateStorage) Create(_ context.Context, candidate *Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[candidate.ID]; ok {
		return ErrItemWithIDAlreadyExists
	}
	cp := *candidate
	s.items[candidate.ID] = &cp
	return nil
}

func (s *MemoryCandidateStorage) Update(_ context.Context, candidate *Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *candidate
	s.items[candidate.ID] = &cp
	return nil
}

func (s *MemoryCandidateStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type MemoryVoteStorage struct {
	mu    sync.RWMutex
	items map[string]*Vote // keyed by PK+"/"+SK
}

func NewMemoryVoteStorage() *MemoryVoteStorage {
	return &MemoryVoteStorage{items: make(map[string]*Vote)}
}

func (s *MemoryVoteStorage) key(code, sortKey string) string {
	return code + "/" + sortKey
}

func (s *MemoryVoteStorage) GetAll(_ context.Context) ([]*Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Vote, 0, len(s.items))
	for _, v := range s.items {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].SortKey < out[j].SortKey
	})
	return out, nil
}

func (s *MemoryVoteStorage) Create(_ context.Context, vote *Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.key(vote.Code, vote.SortKey)
	if _, ok := s.items[k]; ok {
		return ErrVoteAlreadyExists
	}
	cp := *vote
	s.items[k] = &cp
	return nil
}

func (s *MemoryVoteStorage) GetByCode(_ context.Context, code string) ([]*Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Vote
	for _, v := range s.items {
		if v.Code == code {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortKey < out[j].SortKey })
	return out, nil
}

func (s *MemoryVoteStorage) Delete(_ context.Context, code, sortKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, s.key(code, sortKey))
	return nil
}

func (s *MemoryVoteStorage) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*Vote)
	return nil
}

type MemoryVotingCodeStorage struct {
	mu    sync.RWMutex
	items map[string]*VotingCode
}

func NewMemoryVotingCodeStorage() *MemoryVotingCodeStorage {
	return &MemoryVotingCodeStorage{items: make(map[string]*VotingCode)}
}

func (s *MemoryVotingCodeStorage) Get(_ context.Context, code string) (*VotingCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vc, ok := s.items[code]
	if !ok {
		return nil, ErrCodeNotFound
	}
	cp := *vc
	return &cp, nil
}

func (s *MemoryVotingCodeStorage) GetAll(_ context.Context) ([]*VotingCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*VotingCode, 0, len(s.items))
	for _, vc := range s.items {
		cp := *vc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *MemoryVotingCodeStorage) Put(_ context.Context, code *VotingCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[code.Code]; ok {
		return ErrItemWithIDAlreadyExists
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}
	code.Used = false
	cp := *code
	s.items[code.Code] = &cp
	return nil
}

func (s *MemoryVotingCodeStorage) MarkUnused(_ context.Context, code string) error {
	return s.setUsed(code, false)
}

func (s *MemoryVotingCodeStorage) MarkUsed(_ context.Context, code string) error {
	return s.setUsed(code, true)
}

func (s *MemoryVotingCodeStorage) setUsed(code string, used bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vc, ok := s.items[code]
	if !ok {
		return ErrCodeNotFound
	}
	vc.Used = used
	return nil
}

func (s *MemoryVotingCodeStorage) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, code)
	return nil
}

type MemorySessionStorage struct {
	mu    sync.RWMutex
	items map[string]*SessionRecord
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{items: make(map[string]*SessionRecord)}
}

func (s *MemorySessionStorage) Get(_ context.Context, code string) (*SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[code]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Snapshot = append([]byte(nil), rec.Snapshot...)
	return &cp, nil
}

func (s *MemorySessionStorage) Put(_ context.Context, record *SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.UpdatedAt = time.Now().UTC()
	cp := *record
	cp.Snapshot = append([]byte(nil), record.Snapshot...)
	s.items[record.Code] = &cp
	return nil
}

func (s *MemorySessionStorage) MarkSubmitted(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items[code]
	if !ok {
		s.items[code] = &SessionRecord{Code: code, Submitted: true, UpdatedAt: time.Now().UTC()}
		return nil
	}
	rec.Submitted = true
	return nil
}

func (s *MemorySessionStorage) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, code)
	return nil
}
