package models

// AssetDTO is the management API representation of a data asset.
type AssetDTO struct {
	ID          string         `json:"@id,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	DataAddress map[string]any `json:"dataAddress,omitempty"`
}

func (d AssetDTO) Identifier() string {
	return d.ID
}

// Asset is a data asset persisted locally.
type Asset struct {
	SyncState

	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	DataAddress map[string]any `json:"dataAddress,omitempty"`
}

// DTO projects the asset onto its wire shape.
func (a *Asset) DTO() AssetDTO {
	return AssetDTO{
		ID:          a.RemoteID,
		Name:        a.Name,
		Description: a.Description,
		ContentType: a.ContentType,
		Properties:  a.Properties,
		DataAddress: a.DataAddress,
	}
}

// NewAssetFromDTO builds an unsaved asset carrying the values of d.
func NewAssetFromDTO(d AssetDTO) *Asset {
	return &Asset{
		SyncState:   SyncState{RemoteID: d.ID},
		Name:        d.Name,
		Description: d.Description,
		ContentType: d.ContentType,
		Properties:  d.Properties,
		DataAddress: d.DataAddress,
	}
}
