package core

type (
	// Row and Header are attributes of the ResultStream iterator
	Row    []any
	Header []string

	// ResultStream is the raw content of a grid table in form of an iterator
	ResultStream interface {
		Header() Header
		Next() (Row, error)
		HasNext() bool
		Close()
	}
)

type (
	// FormatterOptions provide various options for formatters
	FormatterOptions struct {
		ChunkStart int
	}

	// Formatter converts header and rows to bytes
	Formatter interface {
		Format(header Header, rows []Row, opts *FormatterOptions) ([]byte, error)
	}
)

// UncertaintyType tags how an uncertainty-source column contributes to a
// value column.
type UncertaintyType string

const (
	// UncertaintyRelative marks a source column holding fractions of the
	// central value; the source column must be dimensionless.
	UncertaintyRelative UncertaintyType = "relative"
	// UncertaintyAbsolute marks a source column holding deviations in the
	// unit of the value column.
	UncertaintyAbsolute UncertaintyType = "absolute"
)

func (t UncertaintyType) valid() bool {
	return t == UncertaintyRelative || t == UncertaintyAbsolute
}
