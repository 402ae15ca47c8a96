package ports

import (
	"context"

	"datalens/domain/table"
)

// DatasetReader reads a tabular file into the untyped intake format.
// Implementations must trim surrounding whitespace from headers and cells and
// fail with a NOT_FOUND coded error when the path does not exist.
type DatasetReader interface {
	Read(ctx context.Context, path string) (*table.RawData, error)
}
