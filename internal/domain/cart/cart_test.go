package cart

import (
	"testing"

	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Empty(t *testing.T) {
	assert.Empty(t, Decode(""))
}

func TestDecode_WellFormed(t *testing.T) {
	items := Decode("1:2,5:3")

	assert.Equal(t, Cart{1: 2, 5: 3}, items)
}

func TestDecode_OrderIrrelevant(t *testing.T) {
	assert.Equal(t, Decode("5:3,1:2"), Decode("1:2,5:3"))
}

func TestDecode_SkipsMalformedPairs(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Cart
	}{
		{name: "missing separator", value: "1:2,garbage,5:3", want: Cart{1: 2, 5: 3}},
		{name: "non-numeric id", value: "abc:2,5:3", want: Cart{5: 3}},
		{name: "non-numeric quantity", value: "1:xyz,5:3", want: Cart{5: 3}},
		{name: "zero quantity", value: "1:0,5:3", want: Cart{5: 3}},
		{name: "only garbage", value: ",,::,x", want: Cart{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.value))
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	items := Cart{7: 1, 2: 4, 19: 2}

	assert.Equal(t, items, Decode(items.Encode()))
}

func TestEncode_Deterministic(t *testing.T) {
	items := Cart{3: 1, 1: 2, 2: 5}

	assert.Equal(t, "1:2,2:5,3:1", items.Encode())
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Cart{}.Encode())
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	items := Cart{}

	err := items.Add(5, 0, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	assert.Empty(t, items)
}

func TestAdd_RejectsInsufficientStock(t *testing.T) {
	items := Cart{}

	err := items.Add(5, 11, 10)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "10")
	assert.Empty(t, items)
}

func TestAdd_SetsQuantity(t *testing.T) {
	items := Cart{}

	require.NoError(t, items.Add(5, 3, 10))

	assert.Equal(t, 3, items[5])
}

func TestAdd_OverwritesExistingEntry(t *testing.T) {
	items := Cart{5: 2}

	require.NoError(t, items.Add(5, 3, 10))

	assert.Equal(t, 3, items[5])
}

func TestTotalCost(t *testing.T) {
	catalog := map[int64]*entity.Flower{
		1: {ID: 1, Cost: 10.0},
		2: {ID: 2, Cost: 5.0},
	}
	lookup := func(id int64) (*entity.Flower, bool) {
		flower, ok := catalog[id]

		return flower, ok
	}

	items := Cart{1: 2, 2: 1}
	assert.InDelta(t, 25.0, items.TotalCost(lookup), 1e-9)

	// A flower removed from the catalog contributes nothing.
	delete(catalog, 2)
	assert.InDelta(t, 20.0, items.TotalCost(lookup), 1e-9)
}
