package types

import "errors"

var (
	ErrDataDirNotFound = errors.New("data directory not found. Provide --data-dir pointing at the CSV tables")
	ErrEmptySnapshot   = errors.New("no finance data loaded. Check the actuals/budget/fx/cash CSV files")
)
