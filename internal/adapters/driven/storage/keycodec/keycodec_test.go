package keycodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/burrowdb/internal/core/domain"
)

func TestIndexKey_Deterministic(t *testing.T) {
	a, err := IndexKey(domain.StringValue("tag_1"))
	require.NoError(t, err)
	b, err := IndexKey(domain.StringValue("tag_1"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

// TestIndexKey_TypeDiscriminated tests that equal text of different kinds differs
func TestIndexKey_TypeDiscriminated(t *testing.T) {
	str := MustIndexKey(domain.StringValue("5"))
	num := MustIndexKey(domain.IntValue(5))

	assert.NotEqual(t, str, num)
}

func TestIndexKey_DistinctValues(t *testing.T) {
	assert.NotEqual(t, MustIndexKey(domain.StringValue("doc_1")), MustIndexKey(domain.StringValue("doc_10")))
	assert.NotEqual(t, MustIndexKey(domain.IntValue(1)), MustIndexKey(domain.IntValue(-1)))
}

// TestIndexKey_ObjectsIgnoreInsertionOrder tests canonical field order
func TestIndexKey_ObjectsIgnoreInsertionOrder(t *testing.T) {
	first := map[string]domain.Value{}
	first["a"] = domain.IntValue(1)
	first["b"] = domain.StringValue("x")
	first["c"] = domain.ObjectValue(map[string]domain.Value{"z": domain.IntValue(2), "y": domain.IntValue(3)})

	second := map[string]domain.Value{}
	second["c"] = domain.ObjectValue(map[string]domain.Value{"y": domain.IntValue(3), "z": domain.IntValue(2)})
	second["b"] = domain.StringValue("x")
	second["a"] = domain.IntValue(1)

	for i := 0; i < 20; i++ {
		assert.Equal(t,
			MustIndexKey(domain.ObjectValue(first)),
			MustIndexKey(domain.ObjectValue(second)))
	}
}

// TestIndexKey_FieldNamesWithNUL tests that any string is a valid field name
func TestIndexKey_FieldNamesWithNUL(t *testing.T) {
	obj := domain.ObjectValue(map[string]domain.Value{"a\x00b": domain.IntValue(1)})

	k, err := IndexKey(obj)
	require.NoError(t, err)
	assert.Equal(t, k, MustIndexKey(domain.ObjectValue(map[string]domain.Value{"a\x00b": domain.IntValue(1)})))

	// the bytes after the NUL still count
	other := domain.ObjectValue(map[string]domain.Value{"a\x00c": domain.IntValue(1)})
	assert.NotEqual(t, k, MustIndexKey(other))
	assert.NotEqual(t, k, MustIndexKey(domain.StringValue("a\x00b")))
}

func TestIndexKey_ObjectsDifferByFieldName(t *testing.T) {
	a := domain.ObjectValue(map[string]domain.Value{"a": domain.IntValue(1)})
	b := domain.ObjectValue(map[string]domain.Value{"b": domain.IntValue(1)})
	empty := domain.ObjectValue(map[string]domain.Value{})

	assert.NotEqual(t, MustIndexKey(a), MustIndexKey(b))
	assert.NotEqual(t, MustIndexKey(a), MustIndexKey(empty))
}

func TestIndexKey_InvalidValue(t *testing.T) {
	_, err := IndexKey(domain.Value{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	nested := domain.ObjectValue(map[string]domain.Value{"bad": {}})
	_, err = IndexKey(nested)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMustIndexKey_Panics(t *testing.T) {
	assert.Panics(t, func() { MustIndexKey(domain.Value{}) })
}
