package furnidata

import (
	"testing"

	"wardrobe-manager/feature/wardrobe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "roomitemtypes": {"furnitype": [
    {"id": 1, "classname": "clothing_ha_1001", "name": "Cap", "description": "A cap", "furniline": "clothing", "revision": 61856},
    {"id": 2, "classname": "chair_basic", "name": "Chair", "revision": 1},
    {"id": 3, "classname": "clothing_ch_3030_hc", "name": "Club Shirt", "furniline": "hc", "revision": "7"},
    {"id": 4, "classname": "CLOTHING_CH_3030", "name": "Plain Shirt", "revision": 8},
    {"id": 7, "classname": "clothing_r21_crown", "name": "Crown", "revision": 3, "customparams": "3117, 3118"},
    {"id": 8, "classname": "clothing_ltd_wings", "name": "Wings", "revision": 4, "customparams": "3118"}
  ]},
  "wallitemtypes": {"furnitype": [
    {"id": 5, "classname": "ha_3451", "name": "Helmet", "furniline": "nft2024", "revision": 2},
    {"id": 6, "classname": "poster_12", "name": "Poster"}
  ]}
}`

func TestBuild(t *testing.T) {
	idx, err := Build([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 6, idx.Len())

	rec, ok := idx.Get("clothing_ha_1001")
	require.True(t, ok)
	assert.Equal(t, "Cap", rec.DisplayName)
	assert.Equal(t, "61856", rec.Revision)
	assert.Equal(t, "clothing", rec.CollectionTag)

	_, ok = idx.Get("chair_basic")
	assert.False(t, ok)
}

func TestBuild_BareArray(t *testing.T) {
	idx, err := Build([]byte(`[{"classname": "clothing_lg_270", "name": "Jeans"}]`))
	require.NoError(t, err)
	rec, ok := idx.Lookup("lg", 270)
	require.True(t, ok)
	assert.Equal(t, "Jeans", rec.DisplayName)
}

func TestBuild_Malformed(t *testing.T) {
	_, err := Build([]byte(`{"roomitemtypes": [`))
	require.Error(t, err)
	assert.True(t, models.IsParseError(err))
}

func TestIndex_Lookup(t *testing.T) {
	idx, err := Build([]byte(sample))
	require.NoError(t, err)

	tests := []struct {
		name      string
		code      string
		id        int
		classname string
	}{
		{"Plain", "ha", 3451, "ha_3451"},
		{"Prefixed", "ha", 1001, "clothing_ha_1001"},
		{"PrefixedBeatsSuffixed", "ch", 3030, "CLOTHING_CH_3030"},
		{"CustomParams", "ha", 3117, "clothing_r21_crown"},
		{"CustomParamsFirstWins", "ha", 3118, "clothing_r21_crown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := idx.Lookup(tt.code, tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.classname, rec.Classname)
		})
	}

	rec, ok := idx.Lookup("lg", 9999)
	assert.False(t, ok)
	assert.Nil(t, rec)

	var empty *Index
	_, ok = empty.Lookup("ha", 1001)
	assert.False(t, ok)
}

func TestIsClothing(t *testing.T) {
	assert.True(t, IsClothing("clothing_r_crown"))
	assert.True(t, IsClothing("hr_100"))
	assert.False(t, IsClothing("xx_100"))
	assert.False(t, IsClothing("chair_basic"))
}
