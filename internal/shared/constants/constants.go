package constants

const (
	// DefaultLimit is the page size applied when a list request omits limit.
	DefaultLimit = 100
	// MaxLimit caps the page size of any list request.
	MaxLimit = 100

	// MinPasswordLength applies to registration and password changes.
	MinPasswordLength = 8
	// MinDescriptionLength applies to ticket descriptions.
	MinDescriptionLength = 10

	// ExportLimit caps how many tickets a single CSV export may contain.
	ExportLimit = 10000

	// DefaultRoleID is assigned to self-registered accounts ("user").
	DefaultRoleID = 3

	// InitialStatusID is forced onto every newly created ticket ("New").
	InitialStatusID = 1
)
