package dataset

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmlgo/qheart/internal/domain"
)

const validHeader = "Age,Sex,ChestPainType,RestingBP,Cholesterol,FastingBS,RestingECG,MaxHR,ExerciseAngina,Oldpeak,ST_Slope,HeartDisease"

func TestParse(t *testing.T) {
	csv := validHeader + "\n" +
		"40,M,ATA,140,289,0,Normal,172,N,0.0,Up,0\n" +
		"49,F,NAP,160,180,0,Normal,156,N,1.0,Flat,1\n"

	ds, err := Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	first := ds.Records[0]
	assert.Equal(t, 40, first.Age)
	assert.Equal(t, domain.SexMale, first.Sex)
	assert.Equal(t, domain.ChestPainATA, first.ChestPainType)
	assert.Equal(t, 289, first.Cholesterol)
	assert.False(t, first.FastingBS)
	assert.Equal(t, domain.ECGNormal, first.RestingECG)
	assert.Equal(t, 172, first.MaxHR)
	assert.False(t, first.ExerciseAngina)
	assert.Equal(t, 0.0, first.Oldpeak)
	assert.Equal(t, domain.SlopeUp, first.STSlope)
	assert.False(t, first.HeartDisease)

	assert.True(t, ds.Records[1].HeartDisease)
	assert.Equal(t, []int{0, 1}, ds.Labels())
}

func TestParseHeaderOrderEnforced(t *testing.T) {
	// Sex and Age swapped.
	csv := "Sex,Age,ChestPainType,RestingBP,Cholesterol,FastingBS,RestingECG,MaxHR,ExerciseAngina,Oldpeak,ST_Slope,HeartDisease\n" +
		"M,40,ATA,140,289,0,Normal,172,N,0.0,Up,0\n"

	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Age", schemaErr.Column)
}

func TestParseInvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		row        string
		wantColumn string
	}{
		{"bad age", "forty,M,ATA,140,289,0,Normal,172,N,0.0,Up,0", "Age"},
		{"bad sex", "40,X,ATA,140,289,0,Normal,172,N,0.0,Up,0", "Sex"},
		{"bad chest pain", "40,M,MILD,140,289,0,Normal,172,N,0.0,Up,0", "ChestPainType"},
		{"bad fasting flag", "40,M,ATA,140,289,2,Normal,172,N,0.0,Up,0", "FastingBS"},
		{"bad ecg", "40,M,ATA,140,289,0,Irregular,172,N,0.0,Up,0", "RestingECG"},
		{"bad angina", "40,M,ATA,140,289,0,Normal,172,yes,0.0,Up,0", "ExerciseAngina"},
		{"bad oldpeak", "40,M,ATA,140,289,0,Normal,172,N,low,Up,0", "Oldpeak"},
		{"bad slope", "40,M,ATA,140,289,0,Normal,172,N,0.0,Steep,0", "ST_Slope"},
		{"bad label", "40,M,ATA,140,289,0,Normal,172,N,0.0,Up,maybe", "HeartDisease"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(validHeader + "\n" + tt.row + "\n"))
			require.Error(t, err)

			var schemaErr *domain.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantColumn, schemaErr.Column)
			assert.Equal(t, 1, schemaErr.Row)
		})
	}
}

func TestParseWrongArity(t *testing.T) {
	csv := validHeader + "\n40,M,ATA,140\n"

	_, err := Parse(strings.NewReader(csv))
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestParseEmptyDataset(t *testing.T) {
	_, err := Parse(strings.NewReader(validHeader + "\n"))
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
}

func TestParseMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestNewSource(t *testing.T) {
	_, isFile := NewSource("data/heart.csv").(*FileSource)
	assert.True(t, isFile)

	_, isS3 := NewSource("s3://bucket/heart.csv").(*S3Source)
	assert.True(t, isS3)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/heart.csv"
	csv := validHeader + "\n40,M,ATA,140,289,0,Normal,172,N,0.0,Up,0\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

	ds, err := Load(context.Background(), NewSource(path))
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), NewSource("/nonexistent/heart.csv"))
	assert.Error(t, err)
}

func TestSplitS3URI(t *testing.T) {
	bucket, key, err := splitS3URI("s3://datasets/heart/heart.csv")
	require.NoError(t, err)
	assert.Equal(t, "datasets", bucket)
	assert.Equal(t, "heart/heart.csv", key)

	_, _, err = splitS3URI("s3://bucket-only")
	assert.Error(t, err)
}
