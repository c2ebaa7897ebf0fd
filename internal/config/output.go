package config

// OutputFormat selects how results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable report
	JSON                     // JSON document
)

// Notation selects how squares are written.
type Notation int

const (
	Coordinates Notation = iota // [ 0, 0 ]
	Algebraic                   // a1
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the result format (Text or JSON)
	Format OutputFormat

	// Notation specifies the square notation
	Notation Notation

	// IncludeStats adds the number of searched squares to each result
	IncludeStats bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:   Text,
		Notation: Coordinates,
	}
}
