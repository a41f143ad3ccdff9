package store

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/models"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Success(message string) {
	r.messages = append(r.messages, message)
}

func newTestStore(t *testing.T) (*PortfolioStore, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewPortfolioStore(kv), kv
}

func TestNewStoreStartsWithDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	data := s.Data()
	assert.Equal(t, models.DefaultPortfolioData(), data)
	assert.True(t, data.SectionVisibility.Hero)
}

func TestNewStoreLoadsPersistedDocument(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(models.KeyPortfolioData, `{"personal": {"name": "Persisted"}}`)

	s := NewPortfolioStore(kv)
	assert.Equal(t, "Persisted", s.Data().Personal.Name)
}

func TestNewStoreFallsBackOnGarbage(t *testing.T) {
	kv := NewMemoryKV()
	kv.Put(models.KeyPortfolioData, `{{{`)

	s := NewPortfolioStore(kv)
	assert.Equal(t, models.DefaultPortfolioData(), s.Data())
}

func TestUpdatePersonalPersists(t *testing.T) {
	s, kv := newTestStore(t)

	personal := s.Data().Personal
	personal.Name = "New Name"
	require.NoError(t, s.UpdatePersonal(personal))

	assert.Equal(t, "New Name", s.Data().Personal.Name)

	raw, ok, err := kv.Get(models.KeyPortfolioData)
	require.NoError(t, err)
	require.True(t, ok)

	var stored models.PortfolioData
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "New Name", stored.Personal.Name)
}

func TestMutationNotifiesAndFiresOnChange(t *testing.T) {
	s, _ := newTestStore(t)

	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)

	var changed []models.PortfolioData
	s.OnChange(func(data models.PortfolioData) {
		changed = append(changed, data)
	})

	require.NoError(t, s.UpdateStatusBadge(models.StatusBadge{Enabled: true, Text: "Hiring", Color: "green"}))

	assert.Equal(t, []string{"Status badge updated"}, notifier.messages)
	require.Len(t, changed, 1)
	assert.Equal(t, "Hiring", changed[0].StatusBadge.Text)
}

func TestAddProjectAssignsNextID(t *testing.T) {
	s, _ := newTestStore(t)

	maxID := 0
	for _, p := range s.Data().Projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	id, err := s.AddProject(models.Project{Title: "New", Visible: true})
	require.NoError(t, err)
	assert.Equal(t, maxID+1, id)
}

func TestProjectIDsNeverReused(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.AddProject(models.Project{Title: "First"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteProject(first))

	second, err := s.AddProject(models.Project{Title: "Second"})
	require.NoError(t, err)

	// Deleting the highest id does not free it for reuse.
	assert.Equal(t, first+1, second)
}

func TestUpdateProjectShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.AddProject(models.Project{
		Title:       "Original",
		Description: "Kept",
		Tags:        []string{"go"},
		Visible:     true,
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateProject(id, json.RawMessage(`{"title": "Renamed"}`)))

	var found models.Project
	for _, p := range s.Data().Projects {
		if p.ID == id {
			found = p
		}
	}
	assert.Equal(t, "Renamed", found.Title)
	assert.Equal(t, "Kept", found.Description)
	assert.Equal(t, []string{"go"}, found.Tags)
	assert.True(t, found.Visible)
}

func TestUpdateProjectCannotChangeID(t *testing.T) {
	s, _ := newTestStore(t)

	id, err := s.AddProject(models.Project{Title: "Pinned"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateProject(id, json.RawMessage(`{"id": 999, "title": "Still pinned"}`)))

	for _, p := range s.Data().Projects {
		assert.NotEqual(t, 999, p.ID)
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.UpdateProject(9999, json.RawMessage(`{"title": "x"}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProjectNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.DeleteProject(9999), ErrNotFound)
}

func TestExperienceAndEducationIDsIndependent(t *testing.T) {
	s, _ := newTestStore(t)

	expID, err := s.AddExperience(models.ExperienceItem{Role: "Engineer"})
	require.NoError(t, err)
	eduID, err := s.AddEducation(models.EducationItem{Degree: "BS"})
	require.NoError(t, err)

	// Each collection keeps its own counter.
	expID2, err := s.AddExperience(models.ExperienceItem{Role: "Senior Engineer"})
	require.NoError(t, err)
	assert.Equal(t, expID+1, expID2)
	assert.NotZero(t, eduID)
}

func TestCertificationIndexAddressing(t *testing.T) {
	s, _ := newTestStore(t)

	count := len(s.Data().Certifications)
	require.NoError(t, s.AddCertification(models.Certification{Name: "New Cert", Visible: true}))
	assert.Len(t, s.Data().Certifications, count+1)

	require.NoError(t, s.UpdateCertification(count, models.Certification{Name: "Renamed", Visible: true}))
	assert.Equal(t, "Renamed", s.Data().Certifications[count].Name)

	require.NoError(t, s.DeleteCertification(count))
	assert.Len(t, s.Data().Certifications, count)
}

func TestCertificationIndexOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)

	count := len(s.Data().Certifications)
	assert.ErrorIs(t, s.UpdateCertification(count, models.Certification{}), ErrNotFound)
	assert.ErrorIs(t, s.UpdateCertification(-1, models.Certification{}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCertification(count), ErrNotFound)
}

func TestAchievementIndexOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)

	count := len(s.Data().Achievements)
	assert.ErrorIs(t, s.UpdateAchievement(count, models.Achievement{}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteAchievement(-1), ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	personal := s.Data().Personal
	personal.Name = "Round Trip"
	require.NoError(t, s.UpdatePersonal(personal))

	exported, err := s.Export()
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	assert.NotEqual(t, "Round Trip", s.Data().Personal.Name)

	require.NoError(t, s.Import(exported))
	assert.Equal(t, "Round Trip", s.Data().Personal.Name)
}

func TestImportInvalidJSONLeavesDocumentUntouched(t *testing.T) {
	s, _ := newTestStore(t)

	before := s.Data()
	err := s.Import("{invalid")
	assert.ErrorIs(t, err, ErrInvalidImport)
	assert.Equal(t, before, s.Data())
}

func TestImportRaisesIDMarks(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Import(`{"projects": [{"id": 40, "title": "Imported", "visible": true}]}`))

	id, err := s.AddProject(models.Project{Title: "After import"})
	require.NoError(t, err)
	assert.Equal(t, 41, id)
}

func TestDataSnapshotUnaffectedByLaterMutations(t *testing.T) {
	s, _ := newTestStore(t)

	snapshot := s.Data()
	require.NotEmpty(t, snapshot.Projects)
	firstTitle := snapshot.Projects[0].Title
	count := len(snapshot.Projects)

	// Deleting the first project splices the live slice in place; the
	// snapshot must keep its own backing array.
	require.NoError(t, s.DeleteProject(snapshot.Projects[0].ID))
	require.NoError(t, s.UpdateProject(snapshot.Projects[1].ID, json.RawMessage(`{"title": "Rewritten"}`)))

	assert.Len(t, snapshot.Projects, count)
	assert.Equal(t, firstTitle, snapshot.Projects[0].Title)
	assert.NotEqual(t, "Rewritten", snapshot.Projects[1].Title)
}

func TestOnChangeSnapshotUnaffectedByLaterMutations(t *testing.T) {
	s, _ := newTestStore(t)

	var seen models.PortfolioData
	s.OnChange(func(data models.PortfolioData) {
		seen = data
	})

	id, err := s.AddProject(models.Project{Title: "Watched", Visible: true})
	require.NoError(t, err)

	afterAdd := seen
	count := len(afterAdd.Projects)

	require.NoError(t, s.DeleteProject(id))

	assert.Len(t, afterAdd.Projects, count)
	assert.Equal(t, "Watched", afterAdd.Projects[count-1].Title)
}

func TestConcurrentReadsDuringMutations(t *testing.T) {
	s, _ := newTestStore(t)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_, _ = json.Marshal(s.Data())
			}
		}
	}()

	for i := 0; i < 100; i++ {
		id, err := s.AddProject(models.Project{Title: "transient", Visible: true})
		require.NoError(t, err)
		require.NoError(t, s.UpdateProject(id, json.RawMessage(`{"title": "renamed"}`)))
		require.NoError(t, s.DeleteProject(id))
	}

	close(stop)
	wg.Wait()
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	personal := s.Data().Personal
	personal.Name = "Changed"
	require.NoError(t, s.UpdatePersonal(personal))

	require.NoError(t, s.Reset())
	assert.Equal(t, models.DefaultPortfolioData(), s.Data())
}
