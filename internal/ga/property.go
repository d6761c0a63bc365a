// Package ga bridges tool arguments to the Google Analytics Data and Admin
// APIs: resource name normalization, per-call client construction, and
// proto/JSON conversion with field names preserved as declared.
package ga

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument marks malformed tool arguments. Wrapped errors carry a
// description of what was rejected; they surface to the caller and are never
// retried.
var ErrInvalidArgument = errors.New("invalid argument")

const propertyPrefix = "properties/"

// PropertyResourceName canonicalises a property identifier into the
// "properties/<number>" resource name the Analytics APIs require.
//
// Accepted shapes: a non-negative integral JSON number, a digit string, or a
// string already in "properties/<number>" form. Everything else fails with
// ErrInvalidArgument. Tool handlers apply this to every property_id argument
// before assembling an outbound request.
func PropertyResourceName(value any) (string, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return "", invalidProperty(value)
		}
		return fmt.Sprintf("%s%d", propertyPrefix, v), nil
	case int64:
		if v < 0 {
			return "", invalidProperty(value)
		}
		return fmt.Sprintf("%s%d", propertyPrefix, v), nil
	case float64:
		// JSON numbers decode as float64; only non-negative integral
		// values identify a property.
		if v < 0 || v != math.Trunc(v) || v > math.MaxInt64 {
			return "", invalidProperty(value)
		}
		return fmt.Sprintf("%s%d", propertyPrefix, int64(v)), nil
	case string:
		s := strings.TrimSpace(v)
		num := s
		if strings.HasPrefix(s, propertyPrefix) {
			num = s[len(propertyPrefix):]
		}
		n, err := strconv.ParseUint(num, 10, 63)
		if err != nil {
			return "", invalidProperty(value)
		}
		return fmt.Sprintf("%s%d", propertyPrefix, n), nil
	default:
		return "", invalidProperty(value)
	}
}

func invalidProperty(value any) error {
	return fmt.Errorf("%w: invalid property ID %v: expected a number or a string "+
		"of the form 'properties/' followed by a number", ErrInvalidArgument, value)
}
