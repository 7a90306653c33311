package svm

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Classifier is a soft-margin SVM over an explicit kernel function
type Classifier struct {
	Kernel Kernel
	C      float64
	Seed   int64

	x     [][]float64 // training rows referenced by nonzero alphas
	y     []float64   // ±1 labels
	alpha []float64
	b     float64
}

// NewClassifier creates an untrained classifier
func NewClassifier(kernel Kernel, c float64, seed int64) *Classifier {
	return &Classifier{Kernel: kernel, C: c, Seed: seed}
}

// Fit trains on 0/1-labelled rows. Returns a FitError for degenerate
// training data or solver non-convergence.
func (c *Classifier) Fit(X [][]float64, y []int) error {
	signed, err := signedLabels(y)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(c.Seed))
	sol, err := solveSMO(Gram(c.Kernel, X), signed, c.C, rng)
	if err != nil {
		return err
	}

	c.x = X
	c.y = signed
	c.alpha = sol.alpha
	c.b = sol.b
	return nil
}

// Decision returns the signed distance-like score for one vector
func (c *Classifier) Decision(x []float64) float64 {
	sum := c.b
	for i := range c.x {
		if c.alpha[i] != 0 {
			sum += c.alpha[i] * c.y[i] * c.Kernel.Eval(c.x[i], x)
		}
	}
	return sum
}

// Predict returns the 0/1 label for one vector
func (c *Classifier) Predict(x []float64) int {
	if c.Decision(x) >= 0 {
		return 1
	}
	return 0
}

// PredictBatch classifies every row of X
func (c *Classifier) PredictBatch(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		out[i] = c.Predict(row)
	}
	return out
}

// SupportVectorCount reports how many training rows carry nonzero alpha
func (c *Classifier) SupportVectorCount() int {
	count := 0
	for _, a := range c.alpha {
		if a != 0 {
			count++
		}
	}
	return count
}

// Snapshot exposes the trained dual solution for persistence
func (c *Classifier) Snapshot() (alpha []float64, b float64) {
	return c.alpha, c.b
}

// GramClassifier is a soft-margin SVM over a precomputed kernel matrix.
// The caller is responsible for evaluating kernel rows against the training
// set at predict time; this is how the quantum kernel plugs in without the
// solver knowing anything about circuits.
type GramClassifier struct {
	C    float64
	Seed int64

	y     []float64
	alpha []float64
	b     float64
}

// NewGramClassifier creates an untrained precomputed-kernel classifier
func NewGramClassifier(c float64, seed int64) *GramClassifier {
	return &GramClassifier{C: c, Seed: seed}
}

// Fit trains on a precomputed train-vs-train kernel matrix and 0/1 labels
func (g *GramClassifier) Fit(K mat.Symmetric, y []int) error {
	signed, err := signedLabels(y)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(g.Seed))
	sol, err := solveSMO(K, signed, g.C, rng)
	if err != nil {
		return err
	}

	g.y = signed
	g.alpha = sol.alpha
	g.b = sol.b
	return nil
}

// Decision scores one test point given its kernel row against the full
// training set (k[i] = K(test, train_i)).
func (g *GramClassifier) Decision(k []float64) float64 {
	sum := g.b
	for i := range g.y {
		if g.alpha[i] != 0 {
			sum += g.alpha[i] * g.y[i] * k[i]
		}
	}
	return sum
}

// Predict returns the 0/1 label for one kernel row
func (g *GramClassifier) Predict(k []float64) int {
	if g.Decision(k) >= 0 {
		return 1
	}
	return 0
}

// PredictBatch classifies every row of the test-vs-train kernel matrix
func (g *GramClassifier) PredictBatch(K *mat.Dense) []int {
	rows, _ := K.Dims()
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		out[i] = g.Predict(mat.Row(nil, i, K))
	}
	return out
}

// Snapshot exposes the trained dual solution for persistence
func (g *GramClassifier) Snapshot() (alpha []float64, b float64) {
	return g.alpha, g.b
}
