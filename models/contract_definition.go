package models

// Criterion is one selector expression of a contract definition.
type Criterion struct {
	OperandLeft  any    `json:"operandLeft"`
	Operator     string `json:"operator"`
	OperandRight any    `json:"operandRight"`
}

// ContractDefinitionDTO is the management API representation of a contract
// definition.
type ContractDefinitionDTO struct {
	ID               string      `json:"@id,omitempty"`
	AccessPolicyID   string      `json:"accessPolicyId" validate:"required"`
	ContractPolicyID string      `json:"contractPolicyId" validate:"required"`
	AssetsSelector   []Criterion `json:"assetsSelector,omitempty"`
}

func (d ContractDefinitionDTO) Identifier() string {
	return d.ID
}

// ContractDefinition is a contract definition persisted locally.
type ContractDefinition struct {
	SyncState

	AccessPolicyID   string      `json:"accessPolicyId"`
	ContractPolicyID string      `json:"contractPolicyId"`
	AssetsSelector   []Criterion `json:"assetsSelector,omitempty"`
}

func (c *ContractDefinition) DTO() ContractDefinitionDTO {
	return ContractDefinitionDTO{
		ID:               c.RemoteID,
		AccessPolicyID:   c.AccessPolicyID,
		ContractPolicyID: c.ContractPolicyID,
		AssetsSelector:   c.AssetsSelector,
	}
}

func NewContractDefinitionFromDTO(d ContractDefinitionDTO) *ContractDefinition {
	return &ContractDefinition{
		SyncState:        SyncState{RemoteID: d.ID},
		AccessPolicyID:   d.AccessPolicyID,
		ContractPolicyID: d.ContractPolicyID,
		AssetsSelector:   d.AssetsSelector,
	}
}
