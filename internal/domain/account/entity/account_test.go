package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ref  string
		want Kind
	}{
		{"https://vk.com/club123", KindCommunity},
		{"https://vk.com/public75962000", KindCommunity},
		{"club1", KindCommunity},
		{"public", KindCommunity},
		{"vk.com/club5", KindCommunity},
		{"https://m.vk.com/public9", KindCommunity},
		{"https://vk.com/id17001690", KindPersonal},
		{"https://vk.com/Club123", KindPersonal},
		{"https://vk.com/publ1c", KindPersonal},
		{"https://vk.com/clu", KindPersonal},
		{"id1", KindPersonal},
		{"", KindPersonal},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ref))
		})
	}
}

func TestRawID(t *testing.T) {
	tests := []struct {
		ref  string
		want int64
	}{
		{"https://vk.com/id17001690", 17001690},
		{"https://vk.com/club123", 123},
		{"a1b2c3", 123},
		{"007", 7},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := RawID(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRawID_NoDigits(t *testing.T) {
	for _, ref := range []string{"", "https://vk.com/durov", "club"} {
		_, err := RawID(ref)
		assert.True(t, errors.Is(err, ErrConversion), "ref %q: %v", ref, err)
	}
}

func TestRawID_Overflow(t *testing.T) {
	_, err := RawID("id99999999999999999999")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestParse_SignConvention(t *testing.T) {
	community, err := Parse("https://vk.com/club18483909")
	require.NoError(t, err)
	assert.Equal(t, KindCommunity, community.Kind)
	assert.Equal(t, int64(18483909), community.RawID)
	assert.Equal(t, int64(-18483909), community.OwnerID())
	assert.LessOrEqual(t, community.OwnerID(), int64(0))

	personal, err := Parse("https://vk.com/id17001690")
	require.NoError(t, err)
	assert.Equal(t, KindPersonal, personal.Kind)
	assert.Equal(t, int64(17001690), personal.OwnerID())
	assert.GreaterOrEqual(t, personal.OwnerID(), int64(0))
}

func TestParse_Error(t *testing.T) {
	_, err := Parse("https://vk.com/public_name")
	assert.ErrorIs(t, err, ErrConversion)
}
