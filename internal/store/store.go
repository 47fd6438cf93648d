// Package store holds the application state: the professor roster, the
// discipline catalog, the semesters with their offerings and the
// assistant transcript. State lives only in process memory and resets
// on restart; there is no persistence layer behind it.
//
// Every mutation is total: unknown ids silently match nothing. The
// store performs no validation and no referential-integrity checks —
// a removed professor may leave dangling offering references, which
// the read side resolves to fallback labels.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uema-profitec/sigep-api/internal/models"
)

// Snapshot is a point-in-time copy of the three root collections.
type Snapshot struct {
	Professors  []models.Professor
	Disciplines []models.Discipline
	Semesters   []models.Semester
}

// Store is the in-memory source of truth. Collections are replaced
// copy-on-write so slices handed out earlier never observe later
// mutations. A mutex guards against concurrent HTTP handlers; each
// mutation is still a single indivisible user action.
type Store struct {
	mu          sync.RWMutex
	professors  []models.Professor
	disciplines []models.Discipline
	semesters   []models.Semester
	messages    []models.ChatMessage

	subMu       sync.RWMutex
	subscribers []func()
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Subscribe registers a callback fired after every mutation.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *Store) signal() {
	s.subMu.RLock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// Professors returns a defensive copy of the roster.
func (s *Store) Professors() []models.Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfessors(s.professors)
}

// Disciplines returns a defensive copy of the catalog.
func (s *Store) Disciplines() []models.Discipline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Discipline, len(s.disciplines))
	copy(out, s.disciplines)
	return out
}

// Semesters returns a defensive copy of the semesters.
func (s *Store) Semesters() []models.Semester {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSemesters(s.semesters)
}

// Snapshot copies all three root collections in one read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	disciplines := make([]models.Discipline, len(s.disciplines))
	copy(disciplines, s.disciplines)
	return Snapshot{
		Professors:  cloneProfessors(s.professors),
		Disciplines: disciplines,
		Semesters:   cloneSemesters(s.semesters),
	}
}

// AddProfessor appends a roster entry under a fresh id with an empty
// document list and returns the stored copy.
func (s *Store) AddProfessor(p models.Professor) models.Professor {
	p.ID = uuid.NewString()
	p.Documents = []models.Document{}

	s.mu.Lock()
	next := cloneProfessors(s.professors)
	next = append(next, cloneProfessor(p))
	s.professors = next
	s.mu.Unlock()

	s.signal()
	return p
}

// UpdateProfessor replaces the professor with the matching id,
// reporting whether a replacement happened. All other entries are
// untouched.
func (s *Store) UpdateProfessor(p models.Professor) bool {
	replaced := false

	s.mu.Lock()
	next := cloneProfessors(s.professors)
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = cloneProfessor(p)
			replaced = true
			break
		}
	}
	s.professors = next
	s.mu.Unlock()

	if replaced {
		s.signal()
	}
	return replaced
}

// FindProfessor looks up a professor by id.
func (s *Store) FindProfessor(id string) (models.Professor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.professors {
		if s.professors[i].ID == id {
			return cloneProfessor(s.professors[i]), true
		}
	}
	return models.Professor{}, false
}

// AddDocument appends an uploaded document to the given professor
// under a fresh id and the current timestamp. Unknown professor ids
// match nothing.
func (s *Store) AddDocument(professorID string, doc models.Document) (models.Document, bool) {
	doc.ID = uuid.NewString()
	doc.UploadDate = time.Now().UTC()
	added := false

	s.mu.Lock()
	next := cloneProfessors(s.professors)
	for i := range next {
		if next[i].ID == professorID {
			next[i].Documents = append(next[i].Documents, doc)
			added = true
			break
		}
	}
	s.professors = next
	s.mu.Unlock()

	if added {
		s.signal()
		return doc, true
	}
	return models.Document{}, false
}

// RemoveDocument filters the document out of the professor's list,
// preserving the order of the remaining entries. Unknown professor or
// document ids are a no-op.
func (s *Store) RemoveDocument(professorID, docID string) {
	s.mu.Lock()
	next := cloneProfessors(s.professors)
	for i := range next {
		if next[i].ID != professorID {
			continue
		}
		kept := next[i].Documents[:0]
		for _, d := range next[i].Documents {
			if d.ID != docID {
				kept = append(kept, d)
			}
		}
		next[i].Documents = kept
		break
	}
	s.professors = next
	s.mu.Unlock()

	s.signal()
}

// AddDiscipline appends a catalog entry under a fresh id.
func (s *Store) AddDiscipline(d models.Discipline) models.Discipline {
	d.ID = uuid.NewString()

	s.mu.Lock()
	next := make([]models.Discipline, len(s.disciplines), len(s.disciplines)+1)
	copy(next, s.disciplines)
	next = append(next, d)
	s.disciplines = next
	s.mu.Unlock()

	s.signal()
	return d
}

// UpdateDiscipline replaces the discipline with the matching id.
func (s *Store) UpdateDiscipline(d models.Discipline) bool {
	replaced := false

	s.mu.Lock()
	next := make([]models.Discipline, len(s.disciplines))
	copy(next, s.disciplines)
	for i := range next {
		if next[i].ID == d.ID {
			next[i] = d
			replaced = true
			break
		}
	}
	s.disciplines = next
	s.mu.Unlock()

	if replaced {
		s.signal()
	}
	return replaced
}

// AddSemester appends a semester under a fresh id with an empty
// offering list.
func (s *Store) AddSemester(sem models.Semester) models.Semester {
	sem.ID = uuid.NewString()
	sem.Offerings = []models.Offering{}

	s.mu.Lock()
	next := cloneSemesters(s.semesters)
	next = append(next, cloneSemester(sem))
	s.semesters = next
	s.mu.Unlock()

	s.signal()
	return sem
}

// UpdateSemester replaces the semester with the matching id.
func (s *Store) UpdateSemester(sem models.Semester) bool {
	replaced := false

	s.mu.Lock()
	next := cloneSemesters(s.semesters)
	for i := range next {
		if next[i].ID == sem.ID {
			next[i] = cloneSemester(sem)
			replaced = true
			break
		}
	}
	s.semesters = next
	s.mu.Unlock()

	if replaced {
		s.signal()
	}
	return replaced
}

// UpdateSemesterStatus overwrites the status unconditionally; no
// transition order is enforced.
func (s *Store) UpdateSemesterStatus(id string, status models.SemesterStatus) bool {
	updated := false

	s.mu.Lock()
	next := cloneSemesters(s.semesters)
	for i := range next {
		if next[i].ID == id {
			next[i].Status = status
			updated = true
			break
		}
	}
	s.semesters = next
	s.mu.Unlock()

	if updated {
		s.signal()
	}
	return updated
}

// FindSemester looks up a semester by id.
func (s *Store) FindSemester(id string) (models.Semester, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.semesters {
		if s.semesters[i].ID == id {
			return cloneSemester(s.semesters[i]), true
		}
	}
	return models.Semester{}, false
}

// AddOffering appends an offering to the given semester under a fresh
// id. Nothing prevents the same discipline or professor from appearing
// in multiple offerings of one semester.
func (s *Store) AddOffering(semesterID string, o models.Offering) (models.Offering, bool) {
	o.ID = uuid.NewString()
	added := false

	s.mu.Lock()
	next := cloneSemesters(s.semesters)
	for i := range next {
		if next[i].ID == semesterID {
			next[i].Offerings = append(next[i].Offerings, o)
			added = true
			break
		}
	}
	s.semesters = next
	s.mu.Unlock()

	if added {
		s.signal()
		return o, true
	}
	return models.Offering{}, false
}

// RemoveOffering filters the offering out of that semester only.
func (s *Store) RemoveOffering(semesterID, offeringID string) {
	s.mu.Lock()
	next := cloneSemesters(s.semesters)
	for i := range next {
		if next[i].ID != semesterID {
			continue
		}
		kept := next[i].Offerings[:0]
		for _, o := range next[i].Offerings {
			if o.ID != offeringID {
				kept = append(kept, o)
			}
		}
		next[i].Offerings = kept
		break
	}
	s.semesters = next
	s.mu.Unlock()

	s.signal()
}

// ProfessorCount returns the roster size.
func (s *Store) ProfessorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.professors)
}

// DisciplineCount returns the catalog size.
func (s *Store) DisciplineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.disciplines)
}

// SemesterCount returns the number of semesters.
func (s *Store) SemesterCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.semesters)
}

// AppendChatMessage adds one turn to the transcript. The transcript is
// append-only: nothing ever removes or rewrites a message.
func (s *Store) AppendChatMessage(m models.ChatMessage) {
	s.mu.Lock()
	next := make([]models.ChatMessage, len(s.messages), len(s.messages)+1)
	copy(next, s.messages)
	next = append(next, m)
	s.messages = next
	s.mu.Unlock()
}

// ChatMessages returns a copy of the full transcript, greeting included.
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func cloneProfessor(p models.Professor) models.Professor {
	docs := make([]models.Document, len(p.Documents))
	copy(docs, p.Documents)
	p.Documents = docs
	return p
}

func cloneProfessors(in []models.Professor) []models.Professor {
	out := make([]models.Professor, len(in), len(in)+1)
	for i := range in {
		out[i] = cloneProfessor(in[i])
	}
	return out
}

func cloneSemester(sem models.Semester) models.Semester {
	offerings := make([]models.Offering, len(sem.Offerings))
	copy(offerings, sem.Offerings)
	sem.Offerings = offerings
	return sem
}

func cloneSemesters(in []models.Semester) []models.Semester {
	out := make([]models.Semester, len(in), len(in)+1)
	for i := range in {
		out[i] = cloneSemester(in[i])
	}
	return out
}
