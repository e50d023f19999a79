package assettypes

import "errors"

var (
	// ErrNotFound is returned by repositories when no record has the requested key.
	ErrNotFound = errors.New("not found")
	// ErrUnknownKind is returned for an asset type tag that has no variant.
	ErrUnknownKind = errors.New("unknown asset type")
	// ErrUnknownFieldType is returned when a field descriptor declares a type the editor cannot collect.
	ErrUnknownFieldType = errors.New("unknown field type")
	// ErrImmutableField is returned when writing to a field that cannot change after creation.
	ErrImmutableField = errors.New("field is immutable")
)

// Severity selects how a message is highlighted.
type Severity int

const (
	// Neutral is plain, uncolored text.
	Neutral Severity = iota
	// Success is rendered green.
	Success
	// Warning is rendered yellow.
	Warning
	// Danger is rendered red.
	Danger
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	default:
		return "unknown"
	}
}

// OutputSink renders messages to the user.
type OutputSink interface {
	PutMessage(text string, severity Severity, newline bool)
	ClearScreen()
}

// InputSource supplies user input. Implementations block until a line is available
// and return an error (typically io.EOF) once input is exhausted.
type InputSource interface {
	ReadLine() (string, error)
	ReadEditableLineWithDefault(defaultText string) (string, error)
}

// Predicate selects assets.
type Predicate func(a *Asset) bool

// All matches every asset.
func All(*Asset) bool { return true }

// AssetRepository stores assets.
type AssetRepository interface {
	Count() (int, error)
	// Add stores a new asset and assigns its id.
	Add(a *Asset) (int, error)
	// AddFromParams builds an asset from string parameters keyed by field name
	// ("Type", "PurchaseDate", "ExpiryDate", "Price", "ModelName", "OfficeID",
	// "OS", "RAM", "Processor", "PhoneOperator", "PhoneNumber") and stores it.
	AddFromParams(params map[string]string) (int, error)
	Get(id int) (*Asset, error)
	GetAll() ([]*Asset, error)
	GetAllFiltered(pred Predicate) ([]*Asset, error)
	// GetPaged returns at most pageSize assets ordered by id, skipping pageIndex pages.
	GetPaged(pageSize, pageIndex int) ([]*Asset, error)
	Update(a *Asset) error
	// Delete removes the asset; deleting a missing id is not an error.
	Delete(id int) error
}

// OfficeRepository stores offices.
type OfficeRepository interface {
	Add(o *Office) (int, error)
	Get(id int) (*Office, error)
	// GetByName looks an office up by country, ignoring case.
	GetByName(name string) (*Office, error)
	GetAll() ([]*Office, error)
}
