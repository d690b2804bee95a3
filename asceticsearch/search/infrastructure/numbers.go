package search

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"

	s "github.com/krew-solutions/ascetic-search-go/asceticsearch/search/domain"
)

// Bound is one end of a numeric range.
type Bound struct {
	value     float64
	literal   string
	exclusive bool
}

var (
	NegativeInfinity = Bound{value: math.Inf(-1), literal: "-inf"}
	PositiveInfinity = Bound{value: math.Inf(1), literal: "+inf"}
)

// Inclusive builds a bound that matches value itself.
func Inclusive(value any) (Bound, error) {
	literal, f, err := FormatNumber(value)
	if err != nil {
		return Bound{}, err
	}
	return Bound{value: f, literal: literal}, nil
}

// Exclusive builds a bound that stops just short of value.
func Exclusive(value any) (Bound, error) {
	b, err := Inclusive(value)
	if err != nil {
		return Bound{}, err
	}
	b.exclusive = true
	return b, nil
}

func (b Bound) IsExclusive() bool {
	return b.exclusive
}

func (b Bound) String() string {
	if b.exclusive {
		return "(" + b.literal
	}
	return b.literal
}

// Range is a numeric interval rendered as "[min max]".
type Range struct {
	min Bound
	max Bound
}

// NewRange validates that min does not exceed max.
func NewRange(min, max Bound) (Range, error) {
	if min.value > max.value {
		return Range{}, errors.Wrapf(s.ErrInvalidRange, "[%s %s]", min, max)
	}
	return Range{min: min, max: max}, nil
}

// ExactRange matches value only; RediSearch has no numeric equality so both
// bounds are value.
func ExactRange(value any) (Range, error) {
	b, err := Inclusive(value)
	if err != nil {
		return Range{}, err
	}
	return Range{min: b, max: b}, nil
}

func (r Range) Min() Bound {
	return r.min
}

func (r Range) Max() Bound {
	return r.max
}

func (r Range) String() string {
	return "[" + r.min.String() + " " + r.max.String() + "]"
}

// FormatNumber renders any Go integer or float (including named types) the
// way RediSearch expects and also returns it as a float64 for ordering.
// time.Time values are converted to epoch seconds.
func FormatNumber(value any) (string, float64, error) {
	if t, ok := value.(time.Time); ok {
		secs := t.Unix()
		return strconv.FormatInt(secs, 10), float64(secs), nil
	}
	if value == nil {
		return "", 0, errors.Wrap(s.ErrInvalidValue, "number expected, got nil")
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return strconv.FormatInt(i, 10), float64(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		return strconv.FormatUint(u, 10), float64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return "", 0, errors.Wrap(s.ErrInvalidValue, "NaN is not a valid number")
		case math.IsInf(f, 1):
			return PositiveInfinity.literal, f, nil
		case math.IsInf(f, -1):
			return NegativeInfinity.literal, f, nil
		}
		bitSize := 64
		if rv.Kind() == reflect.Float32 {
			bitSize = 32
		}
		return strconv.FormatFloat(f, 'f', -1, bitSize), f, nil
	default:
		return "", 0, errors.Wrapf(s.ErrInvalidValue, "number expected, got %T", value)
	}
}
