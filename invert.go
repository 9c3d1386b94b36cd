package freehand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// singularEpsilon is both the determinant magnitude below which a matrix is
// treated as singular and the cutoff below which singular values are
// discarded by the pseudo-inverse.
const singularEpsilon = 1e-10

// SolveMethod describes how the normal equations of a least-squares fit were
// solved.
type SolveMethod int

const (
	// SolveNone means no system was solved, because the run had zero length.
	SolveNone SolveMethod = iota
	// SolveInverse means the normal-equations matrix was inverted exactly.
	SolveInverse
	// SolvePseudoInverse means the matrix was singular or couldn't be
	// inverted, and its Moore–Penrose pseudo-inverse was used instead.
	SolvePseudoInverse
	// SolvePassthrough means neither inverse could be computed and the
	// matrix was used as is. The fitted curve is of poor quality.
	SolvePassthrough
)

func (m SolveMethod) String() string {
	switch m {
	case SolveNone:
		return "none"
	case SolveInverse:
		return "inverse"
	case SolvePseudoInverse:
		return "pseudo-inverse"
	case SolvePassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("SolveMethod(%d)", int(m))
	}
}

var (
	errNearlySingular = errors.New("matrix is nearly singular")
	errSVDFailed      = errors.New("singular value decomposition failed")
)

// inversion is the outcome of inverting a matrix with the fallback chain.
type inversion struct {
	matrix *mat.Dense
	method SolveMethod
}

type inverter struct {
	method SolveMethod
	invert func(a mat.Matrix) (*mat.Dense, error)
}

// inverters is the fallback chain, tried in order. The last entry never
// fails.
var inverters = []inverter{
	{SolveInverse, exactInverse},
	{SolvePseudoInverse, pseudoInverse},
	{SolvePassthrough, passthrough},
}

// invert inverts a using the first strategy in chain that succeeds.
func invert(a mat.Matrix, chain []inverter) inversion {
	for _, inv := range chain {
		m, err := inv.invert(a)
		if err == nil {
			return inversion{matrix: m, method: inv.method}
		}
		level := slog.LevelWarn
		if errors.Is(err, errNearlySingular) {
			level = slog.LevelDebug
		}
		Logger().Log(context.Background(), level, "matrix inversion failed, falling back",
			"method", inv.method.String(),
			"err", err)
	}
	// Only reachable with a chain that lacks a terminal strategy.
	m, _ := passthrough(a)
	return inversion{matrix: m, method: SolvePassthrough}
}

func exactInverse(a mat.Matrix) (*mat.Dense, error) {
	if det := mat.Det(a); math.Abs(det) < singularEpsilon {
		return nil, fmt.Errorf("%w: determinant %g", errNearlySingular, det)
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, err
	}
	return &inv, nil
}

// pseudoInverse computes the Moore–Penrose pseudo-inverse V·Σ⁺·Uᵀ from the
// thin singular value decomposition of a. Singular values below
// singularEpsilon are treated as zero.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, errSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	rows, _ := v.Dims()
	for j, s := range values {
		f := 0.0
		if s >= singularEpsilon {
			f = 1 / s
		}
		for i := range rows {
			v.Set(i, j, v.At(i, j)*f)
		}
	}

	var inv mat.Dense
	inv.Mul(&v, u.T())
	for _, x := range inv.RawMatrix().Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite result", errSVDFailed)
		}
	}
	return &inv, nil
}

func passthrough(a mat.Matrix) (*mat.Dense, error) {
	return mat.DenseCopyOf(a), nil
}
