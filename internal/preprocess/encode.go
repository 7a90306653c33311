// Package preprocess turns validated records into the two numeric
// representations the evaluators consume: a standardized matrix for the
// classical SVM and a bounded min-max matrix for the quantum feature maps.
// All statistics (medians, means, ranges) are fit on training rows only and
// reapplied unchanged to test rows.
package preprocess

import "github.com/qmlgo/qheart/internal/domain"

// FeatureNames lists the 11 encoded input features in column order
var FeatureNames = []string{
	"Age", "Sex", "ChestPainType", "RestingBP", "Cholesterol", "FastingBS",
	"RestingECG", "MaxHR", "ExerciseAngina", "Oldpeak", "ST_Slope",
}

// CholesterolColumn is the index of the cholesterol feature in the encoded
// vector, where the 0-as-missing sentinel lives.
const CholesterolColumn = 4

// Fixed categorical codes. These are part of the preprocessing contract:
// they are never relearned from data, so repeated runs encode identically.
var (
	sexCodes = map[domain.Sex]float64{
		domain.SexFemale: 0,
		domain.SexMale:   1,
	}
	chestPainCodes = map[domain.ChestPainType]float64{
		domain.ChestPainASY: 0,
		domain.ChestPainATA: 1,
		domain.ChestPainNAP: 2,
		domain.ChestPainTA:  3,
	}
	ecgCodes = map[domain.RestingECG]float64{
		domain.ECGLVH:    0,
		domain.ECGNormal: 1,
		domain.ECGST:     2,
	}
	slopeCodes = map[domain.STSlope]float64{
		domain.SlopeDown: 0,
		domain.SlopeFlat: 1,
		domain.SlopeUp:   2,
	}
)

// Encode maps a record's 11 inputs to a numeric feature vector using the
// fixed categorical codes.
func Encode(r domain.Record) []float64 {
	v := make([]float64, len(FeatureNames))
	v[0] = float64(r.Age)
	v[1] = sexCodes[r.Sex]
	v[2] = chestPainCodes[r.ChestPainType]
	v[3] = float64(r.RestingBP)
	v[4] = float64(r.Cholesterol)
	if r.FastingBS {
		v[5] = 1
	}
	v[6] = ecgCodes[r.RestingECG]
	v[7] = float64(r.MaxHR)
	if r.ExerciseAngina {
		v[8] = 1
	}
	v[9] = r.Oldpeak
	v[10] = slopeCodes[r.STSlope]
	return v
}

// Features encodes every record in the dataset
func Features(ds *domain.Dataset) [][]float64 {
	X := make([][]float64, len(ds.Records))
	for i, r := range ds.Records {
		X[i] = Encode(r)
	}
	return X
}

// DecodeSex inverts the sex code
func DecodeSex(code float64) (domain.Sex, bool) {
	for k, v := range sexCodes {
		if v == code {
			return k, true
		}
	}
	return "", false
}

// DecodeChestPain inverts the chest pain code
func DecodeChestPain(code float64) (domain.ChestPainType, bool) {
	for k, v := range chestPainCodes {
		if v == code {
			return k, true
		}
	}
	return "", false
}

// DecodeRestingECG inverts the resting ECG code
func DecodeRestingECG(code float64) (domain.RestingECG, bool) {
	for k, v := range ecgCodes {
		if v == code {
			return k, true
		}
	}
	return "", false
}

// DecodeSTSlope inverts the ST slope code
func DecodeSTSlope(code float64) (domain.STSlope, bool) {
	for k, v := range slopeCodes {
		if v == code {
			return k, true
		}
	}
	return "", false
}
