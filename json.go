package rdn

import (
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/rdnlang/rdn/types"
)

// FromJSON decodes a single JSON value. The result uses only the variants
// JSON can express: null, booleans, numbers (always float64), strings,
// arrays and objects. Anything other than whitespace after the value is
// an error.
func FromJSON(data []byte) (types.Value, error) {
	value, dataType, offset, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid JSON input")
	}

	v, err := parseJSONValue(dataType, value)
	if err != nil {
		return nil, err
	}

	for _, c := range data[offset:] {
		switch c {
		case ' ', '\t', '\n', '\r':
		default:
			return nil, errors.Errorf("unexpected content after JSON value at offset %d", offset)
		}
	}

	return v, nil
}

// ToJSON renders v as plain JSON. Variants JSON cannot express degrade:
// non-finite numbers to null, bigints, temporals and regexps to strings,
// binary to a base64 string, maps to arrays of [key, value] pairs and
// sets to arrays.
func ToJSON(v types.Value) ([]byte, error) {
	if types.IsNull(v) {
		return []byte("null"), nil
	}

	return v.MarshalJSON()
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (v types.Value, err error) {
	switch dataType {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			// Out of range literals saturate to an infinity rather than fail.
			f, serr := strconv.ParseFloat(string(data), 64)
			if serr == nil || errors.Is(serr, strconv.ErrRange) {
				return types.NewNumberValue(f), nil
			}
			return nil, err
		}
		return types.NewNumberValue(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return types.NewTextValue(s), nil
	case jsonparser.Array:
		av := types.NewArrayValue()
		_, perr := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, _ error) {
			// Iteration cannot be stopped, so later elements are skipped
			// once an error is recorded.
			if err != nil {
				return
			}

			var v types.Value
			v, err = parseJSONValue(dataType, value)
			if err != nil {
				return
			}

			av.Append(v)
		})
		if err != nil {
			return nil, err
		}
		if perr != nil {
			return nil, perr
		}
		return av, nil
	case jsonparser.Object:
		ov := types.NewObjectValue()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
			v, err := parseJSONValue(dataType, value)
			if err != nil {
				return err
			}

			ov.Add(string(key), v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return ov, nil
	default:
		return nil, errors.Errorf("unsupported JSON type: %v", dataType)
	}
}
