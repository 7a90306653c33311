package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmlgo/qheart/internal/domain"
)

func TestEncode(t *testing.T) {
	r := domain.Record{
		Age:            54,
		Sex:            domain.SexMale,
		ChestPainType:  domain.ChestPainATA,
		RestingBP:      130,
		Cholesterol:    220,
		FastingBS:      true,
		RestingECG:     domain.ECGST,
		MaxHR:          150,
		ExerciseAngina: false,
		Oldpeak:        1.5,
		STSlope:        domain.SlopeFlat,
	}

	v := Encode(r)
	require.Len(t, v, len(FeatureNames))

	assert.Equal(t, 54.0, v[0])
	assert.Equal(t, 1.0, v[1])  // M
	assert.Equal(t, 1.0, v[2])  // ATA
	assert.Equal(t, 130.0, v[3])
	assert.Equal(t, 220.0, v[4])
	assert.Equal(t, 1.0, v[5])  // fasting blood sugar flag
	assert.Equal(t, 2.0, v[6])  // ST
	assert.Equal(t, 150.0, v[7])
	assert.Equal(t, 0.0, v[8])  // no exercise angina
	assert.Equal(t, 1.5, v[9])
	assert.Equal(t, 1.0, v[10]) // Flat
}

func TestCategoricalCodesRoundTrip(t *testing.T) {
	for _, sex := range []domain.Sex{domain.SexFemale, domain.SexMale} {
		got, ok := DecodeSex(sexCodes[sex])
		require.True(t, ok)
		assert.Equal(t, sex, got)
	}

	for _, cp := range []domain.ChestPainType{
		domain.ChestPainASY, domain.ChestPainATA, domain.ChestPainNAP, domain.ChestPainTA,
	} {
		got, ok := DecodeChestPain(chestPainCodes[cp])
		require.True(t, ok)
		assert.Equal(t, cp, got)
	}

	for _, ecg := range []domain.RestingECG{domain.ECGLVH, domain.ECGNormal, domain.ECGST} {
		got, ok := DecodeRestingECG(ecgCodes[ecg])
		require.True(t, ok)
		assert.Equal(t, ecg, got)
	}

	for _, slope := range []domain.STSlope{domain.SlopeDown, domain.SlopeFlat, domain.SlopeUp} {
		got, ok := DecodeSTSlope(slopeCodes[slope])
		require.True(t, ok)
		assert.Equal(t, slope, got)
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	_, ok := DecodeSex(9)
	assert.False(t, ok)

	_, ok = DecodeSTSlope(-1)
	assert.False(t, ok)
}
