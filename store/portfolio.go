package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"folio/models"
)

// ErrNotFound is returned when an update or delete addresses an id or index
// that no longer exists. The caller decides whether to surface it.
var ErrNotFound = errors.New("item not found")

// ErrInvalidImport is returned when imported text is not valid JSON.
var ErrInvalidImport = errors.New("invalid JSON data")

// Notifier receives a message after every successful mutation. The admin UI
// wires this to its flash messages; tests use a recorder.
type Notifier interface {
	Success(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}

// PortfolioStore owns the single portfolio document. It keeps the document in
// memory, persists it wholesale into the KV on every mutation, and calls the
// change hook afterwards (mirror push, cache invalidation).
type PortfolioStore struct {
	mu       sync.Mutex
	kv       KV
	data     models.PortfolioData
	notifier Notifier
	onChange func(models.PortfolioData)

	// High-water id marks. Ids are never reused within a session, even when
	// the item that held the highest id has been deleted since.
	nextProjectID    int
	nextExperienceID int
	nextEducationID  int
}

// NewPortfolioStore loads the persisted document, migrating older shapes, and
// falls back to the built-in defaults when nothing usable is stored.
func NewPortfolioStore(kv KV) *PortfolioStore {
	s := &PortfolioStore{kv: kv, notifier: nopNotifier{}}
	s.data = load(kv)
	s.refreshIDMarks()
	return s
}

// refreshIDMarks raises the high-water marks to cover the current document.
// They are never lowered, so a reset or import cannot cause id reuse within
// the session.
func (s *PortfolioStore) refreshIDMarks() {
	for _, p := range s.data.Projects {
		if p.ID >= s.nextProjectID {
			s.nextProjectID = p.ID + 1
		}
	}
	for _, e := range s.data.Experience {
		if e.ID >= s.nextExperienceID {
			s.nextExperienceID = e.ID + 1
		}
	}
	for _, e := range s.data.Education {
		if e.ID >= s.nextEducationID {
			s.nextEducationID = e.ID + 1
		}
	}
	if s.nextProjectID < 1 {
		s.nextProjectID = 1
	}
	if s.nextExperienceID < 1 {
		s.nextExperienceID = 1
	}
	if s.nextEducationID < 1 {
		s.nextEducationID = 1
	}
}

func load(kv KV) models.PortfolioData {
	raw, ok, err := kv.Get(models.KeyPortfolioData)
	if err != nil {
		log.Printf("portfolio: reading persisted document: %v", err)
		return models.DefaultPortfolioData()
	}
	if !ok {
		return models.DefaultPortfolioData()
	}

	data, err := Migrate([]byte(raw))
	if err != nil {
		log.Printf("portfolio: persisted document unparseable, using defaults: %v", err)
		return models.DefaultPortfolioData()
	}
	return data
}

// SetNotifier replaces the mutation notifier.
func (s *PortfolioStore) SetNotifier(n Notifier) {
	if n != nil {
		s.notifier = n
	}
}

// OnChange registers a hook called with the new document after every
// persisted mutation.
func (s *PortfolioStore) OnChange(fn func(models.PortfolioData)) {
	s.onChange = fn
}

// Data returns a snapshot of the current document, deep-copied so later
// mutations never write into a snapshot a concurrent reader still holds.
func (s *PortfolioStore) Data() models.PortfolioData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// persist writes the whole document. On storage failure the in-memory value
// is kept as the newest state and the error goes back to the caller, who can
// retry or export a backup.
func (s *PortfolioStore) persist() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("serializing portfolio document: %w", err)
	}
	if err := s.kv.Put(models.KeyPortfolioData, string(raw)); err != nil {
		return fmt.Errorf("persisting portfolio document: %w", err)
	}
	return nil
}

func (s *PortfolioStore) commit(message string) error {
	if err := s.persist(); err != nil {
		return err
	}
	s.notifier.Success(message)
	if s.onChange != nil {
		// The mirror push marshals on its own goroutine, so the hook gets
		// its own copy too.
		s.onChange(s.data.Clone())
	}
	return nil
}

// Singleton sections: full replacement.

func (s *PortfolioStore) UpdatePersonal(personal models.PersonalInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Personal = personal
	return s.commit("Personal info updated")
}

func (s *PortfolioStore) UpdateSocial(social models.SocialLinks) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Social = social
	return s.commit("Social links updated")
}

func (s *PortfolioStore) UpdateAbout(about models.AboutInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.About = about
	return s.commit("About section updated")
}

func (s *PortfolioStore) UpdateSkills(skills models.SkillsData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Skills = skills
	return s.commit("Skills updated")
}

func (s *PortfolioStore) UpdateStatusBadge(badge models.StatusBadge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.StatusBadge = badge
	return s.commit("Status badge updated")
}

func (s *PortfolioStore) UpdateSectionVisibility(v models.SectionVisibility) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SectionVisibility = v
	return s.commit("Section visibility updated")
}

// Id-bearing collections. New ids are max(existing)+1 and are never reused
// within the stored document, so an id freed by a delete stays retired.

func (s *PortfolioStore) AddProject(project models.Project) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshIDMarks()
	project.ID = s.nextProjectID
	s.nextProjectID++
	s.data.Projects = append(s.data.Projects, project)
	return project.ID, s.commit("Project added")
}

// UpdateProject shallow-merges the JSON patch into the stored item: fields
// absent from the patch keep their current values.
func (s *PortfolioStore) UpdateProject(id int, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Projects {
		if s.data.Projects[i].ID != id {
			continue
		}
		updated := s.data.Projects[i]
		if err := json.Unmarshal(patch, &updated); err != nil {
			return fmt.Errorf("invalid project data: %w", err)
		}
		updated.ID = id
		s.data.Projects[i] = updated
		return s.commit("Project updated")
	}
	return ErrNotFound
}

func (s *PortfolioStore) DeleteProject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Projects {
		if s.data.Projects[i].ID == id {
			s.data.Projects = append(s.data.Projects[:i], s.data.Projects[i+1:]...)
			return s.commit("Project deleted")
		}
	}
	return ErrNotFound
}

func (s *PortfolioStore) AddExperience(item models.ExperienceItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshIDMarks()
	item.ID = s.nextExperienceID
	s.nextExperienceID++
	s.data.Experience = append(s.data.Experience, item)
	return item.ID, s.commit("Experience added")
}

func (s *PortfolioStore) UpdateExperience(id int, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Experience {
		if s.data.Experience[i].ID != id {
			continue
		}
		updated := s.data.Experience[i]
		if err := json.Unmarshal(patch, &updated); err != nil {
			return fmt.Errorf("invalid experience data: %w", err)
		}
		updated.ID = id
		s.data.Experience[i] = updated
		return s.commit("Experience updated")
	}
	return ErrNotFound
}

func (s *PortfolioStore) DeleteExperience(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Experience {
		if s.data.Experience[i].ID == id {
			s.data.Experience = append(s.data.Experience[:i], s.data.Experience[i+1:]...)
			return s.commit("Experience deleted")
		}
	}
	return ErrNotFound
}

func (s *PortfolioStore) AddEducation(item models.EducationItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshIDMarks()
	item.ID = s.nextEducationID
	s.nextEducationID++
	s.data.Education = append(s.data.Education, item)
	return item.ID, s.commit("Education added")
}

func (s *PortfolioStore) UpdateEducation(id int, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Education {
		if s.data.Education[i].ID != id {
			continue
		}
		updated := s.data.Education[i]
		if err := json.Unmarshal(patch, &updated); err != nil {
			return fmt.Errorf("invalid education data: %w", err)
		}
		updated.ID = id
		s.data.Education[i] = updated
		return s.commit("Education updated")
	}
	return ErrNotFound
}

func (s *PortfolioStore) DeleteEducation(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Education {
		if s.data.Education[i].ID == id {
			s.data.Education = append(s.data.Education[:i], s.data.Education[i+1:]...)
			return s.commit("Education deleted")
		}
	}
	return ErrNotFound
}

// Index-addressed collections. Out-of-range indexes are reported as not
// found instead of silently ignored.

func (s *PortfolioStore) AddCertification(cert models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Certifications = append(s.data.Certifications, cert)
	return s.commit("Certification added")
}

func (s *PortfolioStore) UpdateCertification(index int, cert models.Certification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.data.Certifications) {
		return ErrNotFound
	}
	s.data.Certifications[index] = cert
	return s.commit("Certification updated")
}

func (s *PortfolioStore) DeleteCertification(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.data.Certifications) {
		return ErrNotFound
	}
	s.data.Certifications = append(s.data.Certifications[:index], s.data.Certifications[index+1:]...)
	return s.commit("Certification deleted")
}

func (s *PortfolioStore) AddAchievement(a models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Achievements = append(s.data.Achievements, a)
	return s.commit("Achievement added")
}

func (s *PortfolioStore) UpdateAchievement(index int, a models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.data.Achievements) {
		return ErrNotFound
	}
	s.data.Achievements[index] = a
	return s.commit("Achievement updated")
}

func (s *PortfolioStore) DeleteAchievement(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.data.Achievements) {
		return ErrNotFound
	}
	s.data.Achievements = append(s.data.Achievements[:index], s.data.Achievements[index+1:]...)
	return s.commit("Achievement deleted")
}

// Export returns the full document as pretty-printed JSON.
func (s *PortfolioStore) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("exporting portfolio document: %w", err)
	}
	return string(raw), nil
}

// Import replaces the whole document with the parsed text. Migration is not
// re-applied, so the text must already match the current schema. On parse
// failure the document is left untouched.
func (s *PortfolioStore) Import(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var parsed models.PortfolioData
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return ErrInvalidImport
	}
	s.data = parsed
	s.refreshIDMarks()
	return s.commit("Data imported successfully")
}

// Reset replaces the document with the built-in defaults.
func (s *PortfolioStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = models.DefaultPortfolioData()
	return s.commit("Data reset to defaults")
}
