package render

import "errors"

var (
	// ErrBadOptions is returned by Options.Validate for unusable settings.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrNoData indicates a nil or empty field, or a missing histogram
	// while the heatmap layer is enabled.
	ErrNoData = errors.New("render: no data to plot")

	// ErrUnknownFormat indicates an output format no backend can encode.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrLengthMismatch indicates quiver columns of unequal length.
	ErrLengthMismatch = errors.New("render: column length mismatch")

	// ErrRangeOverflow indicates coordinates whose span overflows float64,
	// which the axes cannot scale.
	ErrRangeOverflow = errors.New("render: data span overflows float64")
)
