package imaging

import (
	"testing"

	"wardrobe-manager/feature/wardrobe/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_URLFor(t *testing.T) {
	g := NewGenerator("")
	const suffix = "&direction=2&head_direction=2&size=l&img_format=png"

	tests := []struct {
		name      string
		code      string
		id        int
		gender    models.Gender
		primary   string
		secondary string
		want      string
	}{
		{"ShirtDefaultPair", "ch", 210, models.GenderMale, "", "", DefaultBaseURL + "?figure=ch-210-66-61&gender=M" + suffix},
		{"ShirtPrimaryOnly", "ch", 210, models.GenderMale, "92", "", DefaultBaseURL + "?figure=ch-210-66-61&gender=M" + suffix},
		{"ShirtExplicitPair", "ch", 210, models.GenderFemale, "92", "100", DefaultBaseURL + "?figure=ch-210-92-100&gender=F" + suffix},
		{"SingleColor", "lg", 270, models.GenderMale, "82", "", DefaultBaseURL + "?figure=lg-270-82&gender=M" + suffix},
		{"TwoColors", "cc", 3007, models.GenderMale, "82", "1408", DefaultBaseURL + "?figure=cc-3007-82-1408&gender=M" + suffix},
		{"NotColorable", "sh", 290, models.GenderUnisex, "", "", DefaultBaseURL + "?figure=sh-290&gender=M" + suffix},
		{"HeadOnly", "ha", 1001, models.GenderMale, "1", "", DefaultBaseURL + "?figure=ha-1001-1&gender=M" + suffix + "&headonly=1"},
		{"FaceHeadOnly", "hd", 180, models.GenderFemale, "1", "", DefaultBaseURL + "?figure=hd-180-1&gender=F" + suffix + "&headonly=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.URLFor(tt.code, tt.id, tt.gender, tt.primary, tt.secondary))
		})
	}
}

func TestGenerator_CustomBase(t *testing.T) {
	g := NewGenerator("https://imaging.example/avatar?")
	assert.Equal(t,
		"https://imaging.example/avatar?figure=wa-2001&gender=M&direction=2&head_direction=2&size=l&img_format=png",
		g.URLFor("wa", 2001, models.GenderMale, "", ""))
}
