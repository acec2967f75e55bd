package uri

import (
	"fmt"
	"net/url"
	"strconv"
)

var ErrUnsupportedValue = fmt.Errorf("unsupported query value")

type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindLazy
)

// Value is a single query parameter value: a scalar, a list of scalars
// emitted as repeated pairs, or a function resolved when the query is
// encoded.
type Value struct {
	kind   Kind
	scalar any
	list   []any
	lazy   func() any
}

// Params maps query keys to values. Encoding emits keys in sorted order;
// callers must not depend on any particular order.
type Params map[string]Value

func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

func List(vs ...any) Value {
	return Value{kind: KindList, list: vs}
}

func Lazy(fn func() any) Value {
	return Value{kind: KindLazy, lazy: fn}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Strings turns url.Values style slices into a list value.
func Strings(vs ...string) Value {
	list := make([]any, len(vs))
	for i, s := range vs {
		list[i] = s
	}
	return List(list...)
}

func FromValues(values url.Values) Params {
	params := make(Params, len(values))
	for k, vs := range values {
		params[k] = Strings(vs...)
	}
	return params
}

// resolve returns the stringified elements of v. A lazy value is called
// once per resolve.
func (v Value) resolve() ([]string, error) {
	switch v.kind {
	case KindList:
		out := make([]string, 0, len(v.list))
		for _, elem := range v.list {
			s, err := stringify(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case KindLazy:
		var result any
		if v.lazy != nil {
			result = v.lazy()
		}
		s, err := stringify(result)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	default:
		s, err := stringify(v.scalar)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	case error:
		return t.Error(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
