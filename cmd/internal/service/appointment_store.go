package service

import (
	"consultas/cmd/internal/domain/entity"
	"consultas/cmd/internal/utils"
	"consultas/cmd/internal/utils/apierror"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/labstack/gommon/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// DefaultBlobKey is the key the browser scheduler used in localStorage.
const DefaultBlobKey = "consultasMedicas"

type BlobRepository interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

type StoreOptions struct {
	// Key names the single blob holding every appointment.
	Key string
	// StrictLoad makes Load fail on a malformed blob instead of starting
	// over with an empty list.
	StrictLoad bool
	// Now returns epoch millis; defaults to utils.NowUTC.
	Now func() int64
}

type SpecialtyCount struct {
	Specialty string `json:"specialty"`
	Count     int    `json:"count"`
}

// TotalCount sums counts. Taking the total from the same snapshot as the
// per-specialty counts keeps the two consistent under concurrent writes.
func TotalCount(counts []SpecialtyCount) int {
	total := 0
	for _, sc := range counts {
		total += sc.Count
	}
	return total
}

// AppointmentStore owns the appointment list. Insertion order is the
// canonical order; every other ordering is a view computed on read. Each
// mutation rewrites the whole blob before returning.
type AppointmentStore struct {
	mu     sync.RWMutex
	repo   BlobRepository
	key    string
	strict bool
	now    func() int64

	appts  []entity.Appointment
	nextID int64
}

func NewAppointmentStore(repo BlobRepository, opts StoreOptions) *AppointmentStore {
	if opts.Key == "" {
		opts.Key = DefaultBlobKey
	}
	if opts.Now == nil {
		opts.Now = utils.NowUTC
	}
	return &AppointmentStore{
		repo:   repo,
		key:    opts.Key,
		strict: opts.StrictLoad,
		now:    opts.Now,
		nextID: 1,
	}
}

// Load replaces the in-memory list with the persisted one. A missing blob
// yields an empty list.
func (s *AppointmentStore) Load() ([]entity.Appointment, error) {
	data, err := s.repo.Load(s.key)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	var appts []entity.Appointment
	if len(data) > 0 {
		if err := json.Unmarshal(data, &appts); err != nil {
			if s.strict {
				return nil, fmt.Errorf("%w: %v", apierror.CorruptStateError, err)
			}
			log.Warnf("discarding malformed appointments blob %q: %v", s.key, err)
			appts = nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appts = appts
	s.nextID = 1
	for _, appt := range appts {
		if appt.ID >= s.nextID {
			s.nextID = appt.ID + 1
		}
	}
	return s.copyLocked(s.appts), nil
}

// Add stores an already validated request. The identifier is kept as
// digits only.
func (s *AppointmentStore) Add(req *AppointmentRequest) (entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ids follow the clock so a restart cannot hand out an id that was
	// issued and then cancelled; the counter covers same-millisecond adds.
	now := s.now()
	appt := entity.Appointment{
		ID:               max(s.nextID, now),
		Name:             req.Name,
		IdentifierNumber: utils.OnlyDigits(req.IdentifierNumber),
		Specialty:        req.Specialty,
		Date:             req.Date,
		Time:             req.Time,
		CreatedAt:        now,
	}

	prev := s.appts
	s.appts = append(s.copyLocked(prev), appt)
	if err := s.persistLocked(); err != nil {
		s.appts = prev
		return entity.Appointment{}, err
	}
	s.nextID = appt.ID + 1
	return appt, nil
}

// RemoveByID reports false when no appointment has the given id; nothing
// is written in that case.
func (s *AppointmentStore) RemoveByID(id int64) (entity.Appointment, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, appt := range s.appts {
		if appt.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.Appointment{}, false, nil
	}

	removed := s.appts[idx]
	prev := s.appts
	next := make([]entity.Appointment, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)

	s.appts = next
	if err := s.persistLocked(); err != nil {
		s.appts = prev
		return entity.Appointment{}, false, err
	}
	return removed, true, nil
}

func (s *AppointmentStore) All() []entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked(s.appts)
}

func (s *AppointmentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appts)
}

// SortedByDate returns the appointments by ascending date. Equal dates
// keep insertion order and unparsable dates go last.
func (s *AppointmentStore) SortedByDate() []entity.Appointment {
	type keyed struct {
		appt  entity.Appointment
		unix  int64
		valid bool
	}

	all := s.All()
	rows := make([]keyed, len(all))
	for i, appt := range all {
		t, err := utils.ParseDate(appt.Date)
		rows[i] = keyed{appt: appt, unix: t.Unix(), valid: err == nil}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].valid != rows[j].valid {
			return rows[i].valid
		}
		return rows[i].unix < rows[j].unix
	})

	sorted := make([]entity.Appointment, len(rows))
	for i, row := range rows {
		sorted[i] = row.appt
	}
	return sorted
}

// Filter matches term against name or specialty, ignoring case and
// Unicode composition. An empty term matches everything.
func (s *AppointmentStore) Filter(term string) []entity.Appointment {
	needle := fold(strings.TrimSpace(term))

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []entity.Appointment
	for _, appt := range s.appts {
		if strings.Contains(fold(appt.Name), needle) || strings.Contains(fold(appt.Specialty), needle) {
			result = append(result, appt)
		}
	}
	return result
}

// CountBySpecialty counts appointments per specialty, in the order each
// specialty was first seen.
func (s *AppointmentStore) CountBySpecialty() []SpecialtyCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)
	var counts []SpecialtyCount
	for _, appt := range s.appts {
		i, ok := index[appt.Specialty]
		if !ok {
			i = len(counts)
			index[appt.Specialty] = i
			counts = append(counts, SpecialtyCount{Specialty: appt.Specialty})
		}
		counts[i].Count++
	}
	return counts
}

func (s *AppointmentStore) persistLocked() error {
	appts := s.appts
	if appts == nil {
		appts = []entity.Appointment{}
	}
	data, err := json.Marshal(appts)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.repo.Save(s.key, data); err != nil {
		return fmt.Errorf("save appointments: %w", err)
	}
	return nil
}

func (s *AppointmentStore) copyLocked(appts []entity.Appointment) []entity.Appointment {
	out := make([]entity.Appointment, len(appts))
	copy(out, appts)
	return out
}

func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
