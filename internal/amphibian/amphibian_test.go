package amphibian

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmphibian_JSONFieldNames(t *testing.T) {
	raw := `{"name":"Frog","type":"Anura","description":"green","imgSrc":"http://x/frog.png"}`

	var a Amphibian
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	assert.Equal(t, Amphibian{Name: "Frog", Type: "Anura", Description: "green", ImgSrc: "http://x/frog.png"}, a)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestAmphibian_Title(t *testing.T) {
	a := Amphibian{Name: "Frog", Type: "Anura"}
	assert.Equal(t, "Frog (Anura)", a.Title())
}

func TestRepeat(t *testing.T) {
	a := Amphibian{Name: "Frog"}
	got := Repeat(a, 20)
	require.Len(t, got, 20)
	for i, g := range got {
		assert.Equal(t, a, g, "entry %d", i)
	}
	assert.Nil(t, Repeat(a, 0))
}

func TestConcat(t *testing.T) {
	list := []Amphibian{{Name: "a"}, {Name: "b"}}
	got := Concat(list, 3)
	require.Len(t, got, 6)
	assert.Equal(t, []Amphibian{{Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "b"}}, got)
	assert.Nil(t, Concat(nil, 3))
}

func TestDuplicateNames(t *testing.T) {
	list := []Amphibian{{Name: "a"}, {Name: "b"}, {Name: "a"}, {Name: "a"}, {Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, DuplicateNames(list))
	assert.Empty(t, DuplicateNames([]Amphibian{{Name: "solo"}}))
}
