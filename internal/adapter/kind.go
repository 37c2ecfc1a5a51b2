package adapter

// Kind describes how one entity kind is addressed on the management API.
type Kind struct {
	// Name is the label used in logs and metrics.
	Name string
	// Resource is the path segment after the protocol version.
	Resource string
	// Type is the JSON-LD "@type" sent with create and update bodies.
	Type string
	// UpdateByID selects PUT {resource}/{id} instead of PUT {resource} with
	// the identifier carried in the body.
	UpdateByID bool
}

var (
	Assets = Kind{
		Name:     "asset",
		Resource: "assets",
		Type:     "Asset",
	}
	ContractDefinitions = Kind{
		Name:     "contract_definition",
		Resource: "contractdefinitions",
		Type:     "ContractDefinition",
	}
	PolicyDefinitions = Kind{
		Name:       "policy_definition",
		Resource:   "policydefinitions",
		Type:       "PolicyDefinition",
		UpdateByID: true,
	}
)
