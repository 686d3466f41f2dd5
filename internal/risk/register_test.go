package risk

import (
	"fmt"
	"testing"

	"complypilot/internal/apperr"
	"complypilot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	registers map[string]*models.RiskRegister
	profiles  map[string]string
	saves     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		registers: map[string]*models.RiskRegister{},
		profiles:  map[string]string{},
	}
}

func (f *fakeStore) Get(subjectID string) (*models.RiskRegister, error) {
	register, ok := f.registers[subjectID]
	if !ok {
		return nil, fmt.Errorf("%w: risk register", apperr.ErrNotFound)
	}
	cp := *register
	cp.Risks = append([]models.Risk(nil), register.Risks...)
	return &cp, nil
}

func (f *fakeStore) Replace(register *models.RiskRegister) error {
	f.registers[register.UserID] = register
	return nil
}

func (f *fakeStore) Save(register *models.RiskRegister) error {
	f.saves++
	f.registers[register.UserID] = register
	return nil
}

func (f *fakeStore) SetBusinessProfile(subjectID, businessType string, industry *string) error {
	f.profiles[subjectID] = businessType
	return nil
}

func TestGenerate_MintsFreshRiskIDs(t *testing.T) {
	m := NewManager(newFakeStore())

	register, err := m.Generate("user_1", "Retail", nil)
	require.NoError(t, err)
	require.Len(t, register.Risks, 5)
	assert.Equal(t, 5, register.TotalRisks)

	templateIDs := map[string]bool{}
	for _, e := range Template("retail") {
		templateIDs[e.RiskID] = true
	}

	seen := map[string]bool{}
	for _, r := range register.Risks {
		assert.False(t, templateIDs[r.RiskID], "risk_id %s leaked from the template", r.RiskID)
		assert.False(t, seen[r.RiskID], "risk_id %s issued twice", r.RiskID)
		seen[r.RiskID] = true
		assert.Equal(t, models.RiskIdentified, r.Status)
		assert.Nil(t, r.Owner)
		assert.Nil(t, r.DueDate)
		assert.Nil(t, r.Notes)
	}
}

func TestGenerate_UnknownTypeFallsBackToGeneral(t *testing.T) {
	m := NewManager(newFakeStore())

	register, err := m.Generate("user_1", "circus", nil)
	require.NoError(t, err)

	general := Template("general")
	require.Len(t, register.Risks, len(general))
	for i, r := range register.Risks {
		assert.Equal(t, general[i].Title, r.Title)
	}
}

func TestGenerate_ReplacesExistingRegister(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	first, err := m.Generate("user_1", "retail", nil)
	require.NoError(t, err)

	second, err := m.Generate("user_1", "healthcare", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, store.registers, 1)

	current, err := m.Get("user_1")
	require.NoError(t, err)
	assert.Equal(t, "healthcare", current.BusinessType)
	assert.Len(t, current.Risks, 5, "replace, not append")
}

func TestGenerate_UpdatesBusinessProfile(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	industry := "Food"
	_, err := m.Generate("user_1", "Retail", &industry)
	require.NoError(t, err)

	assert.Equal(t, "Retail", store.profiles["user_1"])
}

func TestGet_AbsentRegister(t *testing.T) {
	m := NewManager(newFakeStore())

	_, err := m.Get("user_1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	register, err := m.Generate("user_1", "retail", nil)
	require.NoError(t, err)
	riskID := register.Risks[2].RiskID

	notes := "engaged a PCI assessor"
	updated, err := m.UpdateStatus("user_1", riskID, models.RiskMitigating, &notes)
	require.NoError(t, err)
	assert.Equal(t, models.RiskMitigating, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// omitted note leaves the old one in place
	updated, err = m.UpdateStatus("user_1", riskID, models.RiskResolved, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RiskResolved, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// so does an empty note
	empty := ""
	updated, err = m.UpdateStatus("user_1", riskID, models.RiskAccepted, &empty)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// a new note overwrites
	newNotes := "accepted by the board"
	updated, err = m.UpdateStatus("user_1", riskID, models.RiskAccepted, &newNotes)
	require.NoError(t, err)
	assert.Equal(t, newNotes, *updated.Notes)

	current, err := m.Get("user_1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskAccepted, current.Risks[2].Status)
}

func TestUpdateStatus_UnknownRiskLeavesRegisterUnchanged(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	_, err := m.Generate("user_1", "retail", nil)
	require.NoError(t, err)
	savesBefore := store.saves

	_, err = m.UpdateStatus("user_1", "not-a-risk", models.RiskResolved, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, savesBefore, store.saves)

	current, err := m.Get("user_1")
	require.NoError(t, err)
	for _, r := range current.Risks {
		assert.Equal(t, models.RiskIdentified, r.Status)
	}
}

func TestUpdateStatus_NoRegister(t *testing.T) {
	m := NewManager(newFakeStore())

	_, err := m.UpdateStatus("user_1", "some-risk", models.RiskResolved, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	_, err := m.Generate("user_1", "retail", nil)
	require.NoError(t, err)

	_, err = m.UpdateStatus("user_1", "whatever", models.RiskStatus("archived"), nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Retail", "retail"},
		{"Professional Services", "professional_services"},
		{"HEALTHCARE", "healthcare"},
		{"already_normal", "already_normal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestTemplate_TotalLookup(t *testing.T) {
	assert.Equal(t, Template("retail"), Template("Retail"))
	assert.Equal(t, Template("general"), Template("no such business"))
	for _, name := range []string{"retail", "professional_services", "healthcare", "technology", "manufacturing", "general"} {
		assert.Len(t, Template(name), 5, "template %s", name)
	}
}
