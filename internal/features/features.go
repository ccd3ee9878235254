package features

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"winequality/internal/data"
)

// ErrInvalidInput is matched by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError collects every problem found in one set of inputs.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems(), "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func (e *ValidationError) Unwrap() error { return e.Err }

// Problems lists the individual problems, one per offending field.
func (e *ValidationError) Problems() []string {
	errs := multierr.Errors(e.Err)
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

// Names returns the feature order used by Vectorize and ParseInputs.
func Names() []string {
	return append([]string(nil), data.FeatureNames[:]...)
}

func Vectorize(r data.Record) []float64 {
	vec := make([]float64, data.NumFeatures)
	copy(vec, r.Features[:])
	return vec
}

// ParseInputs turns the named values of a prediction request into a feature
// vector. Every feature must be present exactly once, numeric and finite;
// names match like CSV headers.
func ParseInputs(values map[string]string) ([]float64, error) {
	vec := make([]float64, data.NumFeatures)
	found := make([]bool, data.NumFeatures)
	var errs error

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		i := featureIndex(k)
		if i < 0 {
			errs = multierr.Append(errs, fmt.Errorf("unexpected input %q", k))
			continue
		}
		if found[i] {
			errs = multierr.Append(errs, fmt.Errorf("%s given more than once", data.FeatureNames[i]))
			continue
		}
		found[i] = true
		raw := strings.TrimSpace(values[k])
		if raw == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s is missing", data.FeatureNames[i]))
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %q is not a number", data.FeatureNames[i], raw))
			continue
		}
		if err := CheckFinite(data.FeatureNames[i], v); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		vec[i] = v
	}
	for i, ok := range found {
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s is missing", data.FeatureNames[i]))
		}
	}
	if errs != nil {
		return nil, &ValidationError{Err: errs}
	}
	return vec, nil
}

// Validate checks an already numeric vector.
func Validate(vec []float64) error {
	var errs error
	if len(vec) != data.NumFeatures {
		errs = fmt.Errorf("expected %d features, got %d", data.NumFeatures, len(vec))
	} else {
		for i, v := range vec {
			errs = multierr.Append(errs, CheckFinite(data.FeatureNames[i], v))
		}
	}
	if errs != nil {
		return &ValidationError{Err: errs}
	}
	return nil
}

func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %v is not a finite number", name, v)
	}
	return nil
}

func featureIndex(name string) int {
	i, ok := data.ColumnIndex(name)
	if !ok || i >= data.NumFeatures {
		return -1
	}
	return i
}
