package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_Unmarshal(t *testing.T) {
	type payload struct {
		Name  Optional[string]  `json:"name"`
		Phone Optional[*string] `json:"phone"`
	}

	t.Run("absent keys stay unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Name.Set)
		assert.False(t, p.Phone.Set)
	})

	t.Run("present values are set", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Engineering","phone":"555-0100"}`), &p))
		assert.True(t, p.Name.Set)
		assert.Equal(t, "Engineering", p.Name.Value)
		require.True(t, p.Phone.Set)
		require.NotNil(t, p.Phone.Value)
		assert.Equal(t, "555-0100", *p.Phone.Value)
	})

	t.Run("explicit null is set with zero value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"phone":null}`), &p))
		assert.True(t, p.Phone.Set)
		assert.Nil(t, p.Phone.Value)
	})
}

func TestSome(t *testing.T) {
	o := Some("value")
	assert.True(t, o.Set)
	assert.Equal(t, "value", o.Value)
}
