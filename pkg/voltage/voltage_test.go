package voltage

import (
	"testing"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelText(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{HVoltH, "330KV"},
		{HVoltL, "132KV"},
		{MVoltH, "33KV"},
		{MVoltL, "11KV"},
		{LVolt, "0.415KV"},
	}

	for _, tt := range tests {
		got, err := LevelText(tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestLevelTextUnknown(t *testing.T) {
	for _, l := range []Level{0, 6, 255} {
		_, err := LevelText(l)
		assert.ErrorIs(t, err, check.ErrUnknownValue, "level %d", l)
		assert.Equal(t, "UNKNOWN", l.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"33KV", MVoltH, false},
		{"  33kv ", MVoltH, false},
		{"0.415 KV", LVolt, false},
		{"330KV", HVoltH, false},
		{"33", 0, true},
		{"", 0, true},
		{"66KV", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, check.ErrUnknownText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelDigit(t *testing.T) {
	assert.Equal(t, byte('3'), MVoltH.Digit())
	assert.Equal(t, byte('1'), MVoltL.Digit())
	assert.Equal(t, byte('0'), LVolt.Digit())
	assert.Equal(t, byte(0), Level(9).Digit())
}

func TestRatioTextRoundTrip(t *testing.T) {
	for _, r := range Ratios() {
		text, err := RatioText(r)
		require.NoError(t, err)

		back, err := ParseRatio(text)
		require.NoError(t, err)
		assert.Equal(t, r, back, "ratio %s", text)
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, l := range Levels() {
		back, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, back)
	}
}

func TestParseRatioNormalizes(t *testing.T) {
	r, err := ParseRatio(" 33 / 0.415kv ")
	require.NoError(t, err)
	assert.Equal(t, MVoltHLVolt, r)

	_, err = ParseRatio("33/11")
	assert.ErrorIs(t, err, check.ErrUnknownText)

	_, err = RatioText(Ratio(0))
	assert.ErrorIs(t, err, check.ErrUnknownValue)
}

func TestRatioSides(t *testing.T) {
	tests := []struct {
		ratio Ratio
		high  Level
		low   Level
	}{
		{HVoltHHVoltL, HVoltH, HVoltL},
		{HVoltLMVoltH, HVoltL, MVoltH},
		{HVoltLMVoltL, HVoltL, MVoltL},
		{MVoltHMVoltL, MVoltH, MVoltL},
		{MVoltHLVolt, MVoltH, LVolt},
		{MVoltLLVolt, MVoltL, LVolt},
	}

	for _, tt := range tests {
		t.Run(tt.ratio.String(), func(t *testing.T) {
			high, err := tt.ratio.High()
			require.NoError(t, err)
			low, err := tt.ratio.Low()
			require.NoError(t, err)
			assert.Equal(t, tt.high, high)
			assert.Equal(t, tt.low, low)
		})
	}

	_, err := Ratio(42).High()
	assert.ErrorIs(t, err, check.ErrUnknownValue)
}

func TestRatioGroups(t *testing.T) {
	assert.Equal(t, GroupTransmission, HVoltHHVoltL.Group())
	assert.Equal(t, GroupTransmission, HVoltLMVoltH.Group())
	assert.Equal(t, GroupNone, HVoltLMVoltL.Group())
	assert.Equal(t, GroupInjection, MVoltHMVoltL.Group())
	assert.Equal(t, GroupDistribution, MVoltHLVolt.Group())
	assert.Equal(t, GroupDistribution, MVoltLLVolt.Group())

	// groups are disjoint
	seen := map[Ratio]Group{}
	for _, g := range []Group{GroupTransmission, GroupInjection, GroupDistribution} {
		for _, r := range g.Ratios() {
			_, dup := seen[r]
			assert.False(t, dup, "ratio %s in more than one group", r)
			seen[r] = g
		}
	}
}

func TestGroupRatiosIsCopy(t *testing.T) {
	rs := GroupTransmission.Ratios()
	rs[0] = MVoltLLVolt
	assert.Equal(t, HVoltHHVoltL, GroupTransmission.Ratios()[0])
}

func TestRatioIsPower(t *testing.T) {
	power := map[Ratio]bool{HVoltLMVoltH: true, HVoltLMVoltL: true, MVoltHMVoltL: true}
	for _, r := range Ratios() {
		assert.Equal(t, power[r], r.IsPower(), "ratio %s", r)
	}
}
