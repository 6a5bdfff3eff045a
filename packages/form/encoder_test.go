package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_SortsKeys(t *testing.T) {
	got := Encode(map[string]any{
		"zebra": "last",
		"alpha": "first",
		"mike":  "middle",
	})

	assert.Equal(t, "alpha=first&mike=middle&zebra=last", got)
}

func TestEncode_EscapesKeysAndValues(t *testing.T) {
	got := Encode(map[string]any{
		"full name": "Tina Turner",
		"q":         "a&b=c",
	})

	assert.Equal(t, "full+name=Tina+Turner&q=a%26b%3Dc", got)
}

func TestEncode_NestedMaps(t *testing.T) {
	got := Encode(map[string]any{
		"user": map[string]any{
			"name": "Tina",
			"age":  33,
		},
	})

	assert.Equal(t, "user%5Bage%5D=33&user%5Bname%5D=Tina", got)
}

func TestEncode_Slices(t *testing.T) {
	got := Encode(map[string]any{
		"tags": []string{"go", "http"},
	})

	assert.Equal(t, "tags%5B%5D=go&tags%5B%5D=http", got)
}

func TestEncode_MixedScalars(t *testing.T) {
	got := Encode(map[string]any{
		"count":   3,
		"enabled": true,
	})

	assert.Equal(t, "count=3&enabled=true", got)
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", Encode(map[string]any{}))
}

func TestEncode_Deterministic(t *testing.T) {
	values := map[string]any{
		"b": "2",
		"a": "1",
		"c": map[string]any{"y": "4", "x": "3"},
	}

	assert.Equal(t, Encode(values), Encode(values))
}
