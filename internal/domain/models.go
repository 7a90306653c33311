// Package domain provides core domain models and types.
package domain

// Sex represents the patient sex category
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ChestPainType represents the chest pain category
type ChestPainType string

const (
	// ChestPainTA is typical angina
	ChestPainTA ChestPainType = "TA"
	// ChestPainATA is atypical angina
	ChestPainATA ChestPainType = "ATA"
	// ChestPainNAP is non-anginal pain
	ChestPainNAP ChestPainType = "NAP"
	// ChestPainASY is asymptomatic
	ChestPainASY ChestPainType = "ASY"
)

// RestingECG represents the resting electrocardiogram result category
type RestingECG string

const (
	ECGNormal RestingECG = "Normal"
	// ECGST means ST-T wave abnormality
	ECGST RestingECG = "ST"
	// ECGLVH means probable or definite left ventricular hypertrophy
	ECGLVH RestingECG = "LVH"
)

// STSlope represents the slope of the peak exercise ST segment
type STSlope string

const (
	SlopeUp   STSlope = "Up"
	SlopeFlat STSlope = "Flat"
	SlopeDown STSlope = "Down"
)

// Record is one patient sample from the heart-disease dataset.
// Cholesterol uses 0 as a missing-value sentinel (corrected by the
// preprocessor via train-set median imputation).
type Record struct {
	Age            int
	Sex            Sex
	ChestPainType  ChestPainType
	RestingBP      int
	Cholesterol    int
	FastingBS      bool
	RestingECG     RestingECG
	MaxHR          int
	ExerciseAngina bool
	Oldpeak        float64
	STSlope        STSlope
	HeartDisease   bool // label
}

// Dataset is an ordered sequence of records sharing the 12-column schema.
// Immutable after load except for the preprocessor's documented in-place
// corrections.
type Dataset struct {
	Records []Record
}

// Len returns the number of records
func (d *Dataset) Len() int { return len(d.Records) }

// Labels returns the label column as 0/1 integers
func (d *Dataset) Labels() []int {
	labels := make([]int, len(d.Records))
	for i, r := range d.Records {
		if r.HeartDisease {
			labels[i] = 1
		}
	}
	return labels
}

// Split holds seeded train/test partitions of a feature matrix.
// Rows are feature vectors, labels are 0/1.
type Split struct {
	XTrain [][]float64
	XTest  [][]float64
	YTrain []int
	YTest  []int
}

// EvaluationResult is the outcome of one trained model on the test split.
// Created once per trained model, consumed by the reporter, never mutated.
type EvaluationResult struct {
	Model     string  `json:"model"`   // "svm" or "qsvm"
	Variant   string  `json:"variant"` // kernel or encoding identifier
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}
