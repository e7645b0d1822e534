package convert

import (
	"errors"
	"fmt"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/render"
	"github.com/ironsheep/img-to-ascii/internal/sink"
)

// Kind classifies a conversion failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindImageDecode
	KindIOWrite
	KindInvalidSampleGeometry
	KindUnsupportedConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindImageDecode:
		return "ImageDecodeError"
	case KindIOWrite:
		return "IOWriteError"
	case KindInvalidSampleGeometry:
		return "InvalidSampleGeometry"
	case KindUnsupportedConfiguration:
		return "UnsupportedConfiguration"
	}
	return "Error"
}

// Classify maps err to its Kind by the sentinel it wraps.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, render.ErrUnsupportedConfiguration):
		return KindUnsupportedConfiguration
	case errors.Is(err, render.ErrInvalidGeometry):
		return KindInvalidSampleGeometry
	case errors.Is(err, imaging.ErrImageDecode):
		return KindImageDecode
	case errors.Is(err, sink.ErrIOWrite):
		return KindIOWrite
	}
	return KindUnknown
}

// ItemError is a failure tied to one input item.
type ItemError struct {
	Item string
	Kind Kind
	Err  error
}

func newItemError(item string, err error) *ItemError {
	return &ItemError{Item: item, Kind: Classify(err), Err: err}
}

// Error formats the failure as a single line: "<item>: <kind>: <cause>".
func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Item, e.Kind, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
