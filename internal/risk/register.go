package risk

import (
	"fmt"
	"time"

	"complypilot/internal/apperr"
	"complypilot/internal/models"

	"github.com/google/uuid"
)

// Store is the persistence contract for registers. Get returns
// apperr.ErrNotFound when the subject has no register; Replace swaps out any
// prior register for the subject in one step.
type Store interface {
	Get(subjectID string) (*models.RiskRegister, error)
	Replace(register *models.RiskRegister) error
	Save(register *models.RiskRegister) error
	SetBusinessProfile(subjectID, businessType string, industry *string) error
}

// Manager owns the register lifecycle for all subjects.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Generate instantiates a fresh register from the business-type template and
// replaces any existing register for the subject. Each risk gets a newly
// minted risk_id, distinct from its template origin.
func (m *Manager) Generate(subjectID, businessType string, industry *string) (*models.RiskRegister, error) {
	entries := Template(businessType)
	now := time.Now().UTC()

	risks := make([]models.Risk, 0, len(entries))
	for _, e := range entries {
		risks = append(risks, models.Risk{
			RiskID:      uuid.NewString(),
			Title:       e.Title,
			Description: e.Description,
			Likelihood:  e.Likelihood,
			Impact:      e.Impact,
			Category:    e.Category,
			Mitigation:  e.Mitigation,
			Status:      models.RiskIdentified,
		})
	}

	register := &models.RiskRegister{
		ID:           uuid.NewString(),
		UserID:       subjectID,
		BusinessType: businessType,
		Industry:     industry,
		Risks:        risks,
		TotalRisks:   len(risks),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := m.store.Replace(register); err != nil {
		return nil, err
	}
	if err := m.store.SetBusinessProfile(subjectID, businessType, industry); err != nil {
		return nil, err
	}
	return register, nil
}

// Get returns the subject's current register, or apperr.ErrNotFound.
func (m *Manager) Get(subjectID string) (*models.RiskRegister, error) {
	return m.store.Get(subjectID)
}

// UpdateStatus sets the status of one risk, located by the risk_id minted at
// generation. An empty or omitted note leaves existing notes untouched. The
// whole register is persisted on every update.
func (m *Manager) UpdateStatus(subjectID, riskID string, status models.RiskStatus, notes *string) (*models.Risk, error) {
	if !models.ValidRiskStatus(status) {
		return nil, fmt.Errorf("%w: unknown risk status %q", apperr.ErrInvalidInput, status)
	}

	register, err := m.store.Get(subjectID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range register.Risks {
		if register.Risks[i].RiskID == riskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: risk %s", apperr.ErrNotFound, riskID)
	}

	register.Risks[idx].Status = status
	if notes != nil && *notes != "" {
		register.Risks[idx].Notes = notes
	}
	register.UpdatedAt = time.Now().UTC()

	if err := m.store.Save(register); err != nil {
		return nil, err
	}
	return &register.Risks[idx], nil
}
