package blockdag

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

const tol = 1e-10

// GetRisk estimates the probability that a settled block is overturned by
// a chain of blocks an attacker keeps hidden.
//
// N: the dimension of the race model, just pick a value much greater than 1.
// alpha: the share of the block creation power the attacker controls.
// lambda: blocks per second.
// delay: the upper bound on the recent delay diameter in the network.
// waitingTime: how long the caller has already waited, in seconds.
// antiPast: the least number of blocks that reference the block to confirm,
// ideally about waitingTime * lambda.
func GetRisk(N int, alpha float64, lambda float64, delay float64, waitingTime uint, antiPast int) float64 {
	if N < 3 || antiPast <= 0 {
		return 0
	}
	delta := alpha * lambda * delay

	// The race between the attacker and the honest creators forms a
	// Markov chain over the lead of the attacker, capped at N.
	data := make([]float64, N*N)
	for i := 1; i < N-1; i++ {
		data[i*N+i-1] = 1 - alpha
		data[i*N+i+1] = alpha
	}
	data[(N-1)*N+N-2] = 1 - alpha
	data[(N-1)*N+N-1] = alpha

	pois := distuv.Poisson{Lambda: delta}
	data[0] = (1 - alpha) * math.Exp(-delta)
	data[1] = math.Exp(-delta) * (alpha + delta)
	for i := 2; i < N-1; i++ {
		data[i] = pois.Prob(float64(i))
	}
	data[N-1] = 1 - pois.CDF(float64(N-2))

	trans := mat.NewDense(N, N, data)

	var eig mat.Eigen
	if ok := eig.Factorize(trans, mat.EigenLeft); !ok {
		log.Error("Eigendecomposition failed")
	}

	// The stationary distribution of the lead is the left eigenvector
	// at eigenvalue one.
	values := eig.Values(nil)
	idx := -1
	for i := range values {
		if !floats.EqualWithinAbs(real(values[i]), 1, tol) {
			continue
		}
		if !floats.EqualWithinAbs(imag(values[i]), 0, tol) {
			continue
		}
		idx = i
		break
	}
	if idx == -1 {
		log.Error("eigen vector failed")
		return 0
	}
	vectors := mat.NewCDense(N, N, nil)
	eig.LeftVectorsTo(vectors)
	rows, _ := vectors.Dims()
	weights := make([]float64, 0, rows)
	total := 0.0
	for i := 0; i < rows; i++ {
		w := real(vectors.At(i, idx))
		weights = append(weights, w)
		total += w
	}
	floats.Scale(1/total, weights)

	// Weigh the chance of every pre-mined lead with the chance that the
	// attacker still catches up after the waiting time has passed.
	a := (float64(waitingTime) + 2*delay) * alpha * lambda
	race := distuv.Poisson{Lambda: a}
	q := alpha / (1 - alpha)
	risk := 0.0
	for i := 0; i < N; i++ {
		gap := antiPast - i - 1
		cut := gap
		if cut < 0 {
			cut = 0
		}
		sum := 0.0
		for j := 0; j <= cut; j++ {
			sum += race.Prob(float64(j)) * math.Pow(q, math.Max(float64(gap-j), 0))
		}
		sum += 1 - race.CDF(float64(cut))
		risk += weights[i] * sum
	}
	return risk
}
