package evaluation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qmlgo/qheart/internal/config"
	"github.com/qmlgo/qheart/internal/domain"
	"github.com/qmlgo/qheart/internal/quantum"
	"github.com/qmlgo/qheart/internal/results"
	"github.com/qmlgo/qheart/internal/svm"
)

// QuantumEvaluator builds a quantum kernel per requested encoding and fits
// a precomputed-kernel SVM on it. Inputs arrive min-max scaled into the
// rotation-angle range; the amplitude variant additionally L2-normalizes
// each vector before encoding.
type QuantumEvaluator struct {
	cfg config.ExperimentConfig
	log zerolog.Logger
}

// NewQuantumEvaluator creates a quantum evaluator
func NewQuantumEvaluator(cfg config.ExperimentConfig, log zerolog.Logger) *QuantumEvaluator {
	return &QuantumEvaluator{
		cfg: cfg,
		log: log.With().Str("component", "quantum").Logger(),
	}
}

// Evaluate runs every requested encoding. Kernel-computation failures
// (qubit budget, normalization) surface as ConfigurationErrors and abort
// the run.
func (e *QuantumEvaluator) Evaluate(split *domain.Split) ([]domain.EvaluationResult, []results.TrainedModel, error) {
	var evals []domain.EvaluationResult
	var models []results.TrainedModel

	features := 0
	if len(split.XTrain) > 0 {
		features = len(split.XTrain[0])
	}

	for _, name := range e.cfg.Encodings() {
		fm, err := quantum.NewFeatureMap(name, features, e.cfg.MaxQubits)
		if err != nil {
			return nil, nil, err
		}

		xTrain, xTest, err := e.encoderInputs(name, split)
		if err != nil {
			return nil, nil, err
		}

		estimator, err := quantum.NewKernelEstimator(fm, e.cfg.Shots, e.cfg.Seed)
		if err != nil {
			return nil, nil, err
		}

		e.log.Info().
			Str("encoding", name).
			Int("qubits", fm.NumQubits(features)).
			Int("shots", e.cfg.Shots).
			Int("train_rows", len(xTrain)).
			Msg("Estimating quantum kernel matrix")

		gram, err := estimator.Gram(xTrain)
		if err != nil {
			return nil, nil, fmt.Errorf("estimating %s train kernel: %w", name, err)
		}

		clf := svm.NewGramClassifier(e.cfg.C, e.cfg.Seed)
		if err := clf.Fit(gram, split.YTrain); err != nil {
			return nil, nil, fmt.Errorf("training %s encoding: %w", name, err)
		}

		cross, err := estimator.Cross(xTest, xTrain)
		if err != nil {
			return nil, nil, fmt.Errorf("estimating %s test kernel: %w", name, err)
		}

		pred := clf.PredictBatch(cross)
		result := score("qsvm", name, split.YTest, pred)
		evals = append(evals, result)

		alpha, b := clf.Snapshot()
		models = append(models, results.TrainedModel{
			Model:   "qsvm",
			Variant: name,
			Alpha:   alpha,
			Bias:    b,
		})

		e.log.Info().
			Str("encoding", name).
			Float64("accuracy", result.Accuracy).
			Msg("Quantum encoding evaluated")
	}

	return evals, models, nil
}

// encoderInputs applies the variant-specific preprocessing sub-step: the
// amplitude encoding needs L2-normalized vectors, the others take the
// angle-scaled rows as-is.
func (e *QuantumEvaluator) encoderInputs(name string, split *domain.Split) (xTrain, xTest [][]float64, err error) {
	if name != config.EncodingAmplitude {
		return split.XTrain, split.XTest, nil
	}

	normalize := func(X [][]float64) ([][]float64, error) {
		out := make([][]float64, len(X))
		for i, row := range X {
			normalized, err := quantum.Normalize(row)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	}

	if xTrain, err = normalize(split.XTrain); err != nil {
		return nil, nil, err
	}
	if xTest, err = normalize(split.XTest); err != nil {
		return nil, nil, err
	}
	return xTrain, xTest, nil
}
