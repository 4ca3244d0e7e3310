// Package keycodec derives index keys from structured values.
//
// Keys are the BSON encoding of a single-field document wrapping the
// value. BSON tags every element with its type, so an integer and a
// string with the same digits never share a key. Objects become an array
// of [name, value] pairs in sorted name order, so equal objects always
// share a key and field names are length-prefixed strings rather than
// element names, which BSON forbids from holding NUL.
package keycodec

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

// wrapKey is the field name of the wrapping document.
const wrapKey = "v"

// IndexKey returns the canonical index key for v.
func IndexKey(v domain.Value) (string, error) {
	inner, err := toBSON(v)
	if err != nil {
		return "", err
	}
	raw, err := bson.Marshal(bson.D{{Key: wrapKey, Value: inner}})
	if err != nil {
		return "", fmt.Errorf("encode index key: %w", err)
	}
	return string(raw), nil
}

// MustIndexKey is IndexKey for values known to be encodable, such as
// plain strings and integers. It panics on failure.
func MustIndexKey(v domain.Value) string {
	key, err := IndexKey(v)
	if err != nil {
		panic(err)
	}
	return key
}

func toBSON(v domain.Value) (any, error) {
	switch v.Kind() {
	case domain.KindString:
		s, _ := v.AsString()
		return s, nil
	case domain.KindInt:
		n, _ := v.AsInt()
		return n, nil
	case domain.KindObject:
		keys := v.Keys()
		pairs := make(bson.A, 0, len(keys))
		for _, k := range keys {
			f, _ := v.Field(k)
			inner, err := toBSON(f)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			pairs = append(pairs, bson.A{k, inner})
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("value of kind %s: %w", v.Kind(), domain.ErrInvalidInput)
	}
}
