package stats

import (
	"math"
	"math/bits"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of xs, or 0 when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// Median returns the middle value of xs, averaging the two middle
// values for an even number of samples, or 0 when xs is empty. xs
// does not need to be sorted.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	sorted := sortedCopy(xs)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mode returns every value that occurs with the highest frequency, in
// ascending order. Values are compared for exact equality.
func Mode(xs []float64) []float64 {
	if len(xs) == 0 {
		return []float64{}
	}

	counts := map[float64]int{}
	best := 0
	for _, x := range xs {
		counts[x]++
		if counts[x] > best {
			best = counts[x]
		}
	}

	modes := []float64{}
	for x, c := range counts { // nosemgrep: range-over-map
		if c == best {
			modes = append(modes, x)
		}
	}

	slices.Sort(modes)
	return modes
}

// StandardDeviation returns the population standard deviation of xs,
// or 0 when there are fewer than two samples.
func StandardDeviation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.PopStdDev(xs, nil)
}

// NPr returns the number of ordered arrangements of r items out of n.
// Counts that do not fit in an int64 saturate at math.MaxInt64.
func NPr(n, r int64) int64 {
	if r < 0 || r > n {
		return 0
	}

	var res int64 = 1
	for i := int64(0); i < r; i++ {
		hi, lo := bits.Mul64(uint64(res), uint64(n-i))
		if hi != 0 || lo > math.MaxInt64 {
			return math.MaxInt64
		}
		res = int64(lo)
	}
	return res
}

// NCr returns the number of unordered selections of r items out of n.
// The running product is divided at every step, which is exact since
// res*(n-i+1) is always a multiple of i. The product is kept in 128
// bits, counts that do not fit in an int64 saturate at math.MaxInt64.
func NCr(n, r int64) int64 {
	if r < 0 || r > n {
		return 0
	}
	if r == 0 || r == n {
		return 1
	}
	if r > n-r {
		r = n - r
	}

	var res int64 = 1
	for i := int64(1); i <= r; i++ {
		hi, lo := bits.Mul64(uint64(res), uint64(n-i+1))
		if hi >= uint64(i) {
			return math.MaxInt64
		}

		q, _ := bits.Div64(hi, lo, uint64(i))
		if q > math.MaxInt64 {
			return math.MaxInt64
		}
		res = int64(q)
	}
	return res
}

// BinomialProbability returns the probability of exactly k successes
// in n independent trials with success probability p.
func BinomialProbability(n, k int64, p float64) float64 {
	if p < 0 || p > 1 || k < 0 || k > n {
		return 0
	}
	return float64(NCr(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// Finite reports whether v is neither infinite nor NaN.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sortedCopy(xs []float64) []float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return sorted
}
