// Package dataset loads the heart-disease CSV and validates it against the
// fixed 12-column schema. Column names and categorical vocabularies are part
// of the input contract; any deviation is a schema error.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/qmlgo/qheart/internal/domain"
)

// Columns is the required header, in order.
var Columns = []string{
	"Age", "Sex", "ChestPainType", "RestingBP", "Cholesterol", "FastingBS",
	"RestingECG", "MaxHR", "ExerciseAngina", "Oldpeak", "ST_Slope", "HeartDisease",
}

// Parse reads CSV rows from r into a Dataset. The first row must be the
// exact header above; every categorical value must belong to its fixed
// vocabulary. No side effects beyond reading.
func Parse(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewSchemaError("header", "missing or unreadable header row", 0, err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, domain.NewSchemaError(name, fmt.Sprintf("expected column %q at position %d, got %q", name, i, header[i]), 0, nil)
		}
	}

	ds := &domain.Dataset{}
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewSchemaError("row", fmt.Sprintf("row %d unreadable", row), row, err)
		}

		rec, err := parseRecord(fields, row)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, domain.NewSchemaError("rows", "dataset contains no data rows", 0, nil)
	}

	return ds, nil
}

func parseRecord(fields []string, row int) (domain.Record, error) {
	var rec domain.Record
	var err error

	if rec.Age, err = parseInt(fields[0], "Age", row); err != nil {
		return rec, err
	}
	if rec.Sex, err = parseSex(fields[1], row); err != nil {
		return rec, err
	}
	if rec.ChestPainType, err = parseChestPain(fields[2], row); err != nil {
		return rec, err
	}
	if rec.RestingBP, err = parseInt(fields[3], "RestingBP", row); err != nil {
		return rec, err
	}
	if rec.Cholesterol, err = parseInt(fields[4], "Cholesterol", row); err != nil {
		return rec, err
	}
	if rec.FastingBS, err = parseBool(fields[5], "FastingBS", row); err != nil {
		return rec, err
	}
	if rec.RestingECG, err = parseRestingECG(fields[6], row); err != nil {
		return rec, err
	}
	if rec.MaxHR, err = parseInt(fields[7], "MaxHR", row); err != nil {
		return rec, err
	}
	if rec.ExerciseAngina, err = parseYesNo(fields[8], "ExerciseAngina", row); err != nil {
		return rec, err
	}
	if rec.Oldpeak, err = parseFloat(fields[9], "Oldpeak", row); err != nil {
		return rec, err
	}
	if rec.STSlope, err = parseSTSlope(fields[10], row); err != nil {
		return rec, err
	}
	if rec.HeartDisease, err = parseBool(fields[11], "HeartDisease", row); err != nil {
		return rec, err
	}

	return rec, nil
}

func parseInt(s, column string, row int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, domain.NewSchemaError(column, s, row, err)
	}
	return v, nil
}

func parseFloat(s, column string, row int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domain.NewSchemaError(column, s, row, err)
	}
	return v, nil
}

func parseBool(s, column string, row int) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, domain.NewSchemaError(column, s, row, nil)
}

func parseYesNo(s, column string, row int) (bool, error) {
	switch s {
	case "N":
		return false, nil
	case "Y":
		return true, nil
	}
	return false, domain.NewSchemaError(column, s, row, nil)
}

func parseSex(s string, row int) (domain.Sex, error) {
	switch domain.Sex(s) {
	case domain.SexMale, domain.SexFemale:
		return domain.Sex(s), nil
	}
	return "", domain.NewSchemaError("Sex", s, row, nil)
}

func parseChestPain(s string, row int) (domain.ChestPainType, error) {
	switch domain.ChestPainType(s) {
	case domain.ChestPainTA, domain.ChestPainATA, domain.ChestPainNAP, domain.ChestPainASY:
		return domain.ChestPainType(s), nil
	}
	return "", domain.NewSchemaError("ChestPainType", s, row, nil)
}

func parseRestingECG(s string, row int) (domain.RestingECG, error) {
	switch domain.RestingECG(s) {
	case domain.ECGNormal, domain.ECGST, domain.ECGLVH:
		return domain.RestingECG(s), nil
	}
	return "", domain.NewSchemaError("RestingECG", s, row, nil)
}

func parseSTSlope(s string, row int) (domain.STSlope, error) {
	switch domain.STSlope(s) {
	case domain.SlopeUp, domain.SlopeFlat, domain.SlopeDown:
		return domain.STSlope(s), nil
	}
	return "", domain.NewSchemaError("ST_Slope", s, row, nil)
}
