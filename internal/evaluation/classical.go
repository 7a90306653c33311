// Package evaluation runs the classical and quantum evaluators over the
// preprocessed splits and aggregates their results.
package evaluation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qmlgo/qheart/internal/config"
	"github.com/qmlgo/qheart/internal/domain"
	"github.com/qmlgo/qheart/internal/results"
	"github.com/qmlgo/qheart/internal/svm"
	"github.com/qmlgo/qheart/pkg/formulas"
)

// ClassicalEvaluator fits one SVM per requested kernel on the standardized
// split and scores it on the held-out rows.
type ClassicalEvaluator struct {
	cfg config.ExperimentConfig
	log zerolog.Logger
}

// NewClassicalEvaluator creates a classical evaluator
func NewClassicalEvaluator(cfg config.ExperimentConfig, log zerolog.Logger) *ClassicalEvaluator {
	return &ClassicalEvaluator{
		cfg: cfg,
		log: log.With().Str("component", "classical").Logger(),
	}
}

// Evaluate trains and scores every requested kernel variant. A fit failure
// is fatal and returned, never skipped.
func (e *ClassicalEvaluator) Evaluate(split *domain.Split) ([]domain.EvaluationResult, []results.TrainedModel, error) {
	var evals []domain.EvaluationResult
	var models []results.TrainedModel

	for _, name := range e.cfg.Kernels() {
		kernel, err := e.buildKernel(name, split.XTrain)
		if err != nil {
			return nil, nil, err
		}

		clf := svm.NewClassifier(kernel, e.cfg.C, e.cfg.Seed)
		if err := clf.Fit(split.XTrain, split.YTrain); err != nil {
			return nil, nil, fmt.Errorf("training %s kernel: %w", name, err)
		}

		pred := clf.PredictBatch(split.XTest)
		result := score("svm", name, split.YTest, pred)
		evals = append(evals, result)

		alpha, b := clf.Snapshot()
		models = append(models, results.TrainedModel{
			Model:   "svm",
			Variant: name,
			Alpha:   alpha,
			Bias:    b,
		})

		e.log.Info().
			Str("kernel", name).
			Float64("accuracy", result.Accuracy).
			Int("support_vectors", clf.SupportVectorCount()).
			Msg("Classical kernel evaluated")
	}

	return evals, models, nil
}

func (e *ClassicalEvaluator) buildKernel(name string, XTrain [][]float64) (svm.Kernel, error) {
	switch name {
	case config.KernelLinear:
		return svm.LinearKernel{}, nil
	case config.KernelRBF:
		gamma := e.cfg.Gamma
		if gamma == 0 {
			gamma = svm.ScaleGamma(XTrain)
			e.log.Debug().Float64("gamma", gamma).Msg("Using scale heuristic for RBF gamma")
		}
		return svm.RBFKernel{Gamma: gamma}, nil
	}
	return nil, domain.NewConfigurationError("kernel", name, "unknown kernel")
}

// score computes the full metric set for one variant
func score(model, variant string, yTrue, yPred []int) domain.EvaluationResult {
	precision, recall, f1 := formulas.PrecisionRecallF1(yTrue, yPred)
	return domain.EvaluationResult{
		Model:     model,
		Variant:   variant,
		Accuracy:  formulas.Accuracy(yTrue, yPred),
		Precision: precision,
		Recall:    recall,
		F1:        f1,
	}
}
