package models

// PolicyDefinitionDTO is the management API representation of an access or
// usage policy definition. The ODRL policy body is kept opaque.
type PolicyDefinitionDTO struct {
	ID                string         `json:"@id,omitempty"`
	Policy            map[string]any `json:"policy" validate:"required"`
	PrivateProperties map[string]any `json:"privateProperties,omitempty"`
}

func (d PolicyDefinitionDTO) Identifier() string {
	return d.ID
}

// PolicyDefinition is a policy definition persisted locally.
type PolicyDefinition struct {
	SyncState

	Policy            map[string]any `json:"policy"`
	PrivateProperties map[string]any `json:"privateProperties,omitempty"`
}

func (p *PolicyDefinition) DTO() PolicyDefinitionDTO {
	return PolicyDefinitionDTO{
		ID:                p.RemoteID,
		Policy:            p.Policy,
		PrivateProperties: p.PrivateProperties,
	}
}

func NewPolicyDefinitionFromDTO(d PolicyDefinitionDTO) *PolicyDefinition {
	return &PolicyDefinition{
		SyncState:         SyncState{RemoteID: d.ID},
		Policy:            d.Policy,
		PrivateProperties: d.PrivateProperties,
	}
}
