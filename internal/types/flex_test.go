package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexListAcceptsSingleValue(t *testing.T) {
	var got FlexList[string]
	require.NoError(t, json.Unmarshal([]byte(`"STRIPE"`), &got))
	assert.Equal(t, []string{"STRIPE"}, got.Slice())
}

func TestFlexListSkipsBadElements(t *testing.T) {
	items, dropped, err := DecodeFlexList[string]([]byte(`["CASH", 7, "PAYPAL", {"x":1}]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"CASH", "PAYPAL"}, items)
	assert.Equal(t, 2, dropped)
}

func TestFlexListNull(t *testing.T) {
	items, dropped, err := DecodeFlexList[int]([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Zero(t, dropped)
}

func TestFlexString(t *testing.T) {
	var body struct {
		ID    FlexString `json:"id"`
		Price FlexString `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "price": " 19.5 "}`), &body))
	assert.Equal(t, "42", body.ID.String())
	assert.Equal(t, "19.5", body.Price.String())

	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &body))
}
