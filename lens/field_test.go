package lens_test

import (
	"testing"

	"github.com/on-the-ground/fp_ive_go/lens"
	"github.com/on-the-ground/fp_ive_go/option"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type abc struct {
	A, B, C int
}

type tagged struct {
	abc
	Tags  []string
	Extra any
	note  string
}

type linked struct {
	*abc
}

func TestField_Struct(t *testing.T) {
	obj := abc{A: 1, B: 2, C: 3}
	lensA := lens.MustField[abc, int]("A")

	assert.Equal(t, "A", lensA.Name())
	assert.Equal(t, 1, lensA.MustGet(obj))
	assert.Equal(t, option.Some(1), lensA.MaybeGet(obj))

	newObj := lensA.Set(obj, 2)
	assert.Equal(t, abc{A: 2, B: 2, C: 3}, newObj)
	assert.Equal(t, 1, obj.A)

	newObj = lensA.Change(obj, 3)
	assert.Equal(t, abc{A: 3, B: 2, C: 3}, newObj)

	newObj, err := lensA.Map(obj, func(a int) int { return a * 2 })
	require.NoError(t, err)
	assert.Equal(t, abc{A: 2, B: 2, C: 3}, newObj)
}

func TestField_GetSetLaw(t *testing.T) {
	lensB := lens.MustField[abc, int]("B")
	obj := abc{A: 1, B: 2, C: 3}

	for _, v := range []int{0, 7, -3} {
		got, err := lensB.Get(lensB.Set(obj, v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, 2, obj.B)
}

func TestField_PromotedAndShared(t *testing.T) {
	lensA := lens.MustField[tagged, int]("A")
	lensTags := lens.MustField[tagged, []string]("Tags")

	orig := tagged{abc: abc{A: 1}, Tags: []string{"x"}}
	updated := lensA.Set(orig, 10)

	assert.Equal(t, 10, updated.A)
	assert.Equal(t, 1, orig.A)

	// shallow copy: untouched reference fields are shared
	updated.Tags[0] = "y"
	assert.Equal(t, "y", orig.Tags[0])

	retagged := lensTags.Set(orig, []string{"z"})
	assert.Equal(t, []string{"z"}, retagged.Tags)
	assert.Equal(t, []string{"y"}, orig.Tags)
}

func TestField_InterfaceField(t *testing.T) {
	extra := lens.MustField[tagged, any]("Extra")

	var rec tagged
	v, err := extra.Get(rec)
	require.NoError(t, err)
	assert.Nil(t, v)

	rec = extra.Set(rec, 5)
	assert.Equal(t, 5, extra.MustGet(rec))

	asInt := lens.MustField[tagged, int]("Extra")
	assert.Equal(t, 5, asInt.MustGet(rec))

	rec = extra.Set(rec, "five")
	_, err = asInt.Get(rec)
	assert.ErrorIs(t, err, lens.ErrFieldType)
	assert.True(t, asInt.MaybeGet(rec).IsNone())
}

func TestField_Validation(t *testing.T) {
	_, err := lens.NewField[abc, int]("D")
	assert.ErrorIs(t, err, lens.ErrMissingField)

	_, err = lens.NewField[abc, string]("A")
	assert.ErrorIs(t, err, lens.ErrFieldType)

	_, err = lens.NewField[tagged, string]("note")
	assert.ErrorIs(t, err, lens.ErrUnexportedField)

	_, err = lens.NewField[linked, int]("A")
	assert.ErrorIs(t, err, lens.ErrUnsupportedRecord)

	_, err = lens.NewField[*abc, int]("A")
	assert.ErrorIs(t, err, lens.ErrUnsupportedRecord)

	_, err = lens.NewField[map[int]int, int]("A")
	assert.ErrorIs(t, err, lens.ErrUnsupportedRecord)

	assert.Panics(t, func() {
		lens.MustField[abc, int]("D")
	})
}

type record map[string]any

func TestField_Map(t *testing.T) {
	obj := record{"a": 1, "b": 2, "c": 3}
	lensA := lens.MustField[record, int]("a")
	lensD := lens.MustField[record, int]("d")

	assert.Equal(t, 1, lensA.MustGet(obj))
	assert.Equal(t, option.Some(1), lensA.MaybeGet(obj))
	assert.True(t, lensD.MaybeGet(obj).IsNone())

	_, err := lensD.Get(obj)
	assert.ErrorIs(t, err, lens.ErrMissingField)

	newObj := lensA.Set(obj, 2)
	assert.Equal(t, record{"a": 2, "b": 2, "c": 3}, newObj)
	assert.Equal(t, 1, obj["a"])

	newObj = lensA.Change(obj, 3)
	assert.Equal(t, record{"a": 3, "b": 2, "c": 3}, newObj)

	newObj, err = lensA.Map(obj, func(a int) int { return a * 2 })
	require.NoError(t, err)
	assert.Equal(t, record{"a": 2, "b": 2, "c": 3}, newObj)

	_, err = lensD.Map(obj, func(a int) int { return a })
	assert.ErrorIs(t, err, lens.ErrMissingField)

	withD := lensD.Set(obj, 4)
	assert.Equal(t, 4, lensD.MustGet(withD))
	assert.NotContains(t, obj, "d")
}

func TestField_NilMap(t *testing.T) {
	lensX := lens.MustField[map[string]int, int]("x")

	var empty map[string]int
	assert.True(t, lensX.MaybeGet(empty).IsNone())

	filled := lensX.Change(empty, 2)
	assert.Equal(t, 2, lensX.MustGet(filled))
	assert.Nil(t, empty)
}
