package color

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestForBusiness_Deterministic(t *testing.T) {
	first := ForBusiness("Corner Cafe")
	second := ForBusiness("Corner Cafe")
	assert.Equal(t, first, second)
}

func TestForBusiness_WellFormedHex(t *testing.T) {
	for _, name := range []string{"Corner Cafe", "Atelier Verde", "", "日本料理 さくら"} {
		assert.Regexp(t, hexColorRe, ForBusiness(name))
	}
}

func TestForBusiness_DistinctNamesDiffer(t *testing.T) {
	assert.NotEqual(t, ForBusiness("Corner Cafe"), ForBusiness("Atelier Verde"))
}
