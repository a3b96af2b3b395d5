package services

import (
	"delivery-estimate-service/internal/domain"
	"math/bits"
)

// MaxPoolSize is the widest pool a uint64 subset mask can enumerate.
// The search visits 2^n - 1 subsets, so each extra package doubles the work;
// pools in the low twenties already take millions of candidate checks.
const MaxPoolSize = 63

type candidate struct {
	mask    uint64
	count   int
	weight  float64
	maxDist float64
}

// better reports whether c beats best: more packages, then more weight,
// then a closer farthest package. Full ties keep best.
func (c candidate) better(best candidate) bool {
	if best.count == 0 {
		return true
	}
	if c.count != best.count {
		return c.count > best.count
	}
	if c.weight != best.weight {
		return c.weight > best.weight
	}
	return c.maxDist < best.maxDist
}

// SelectShipment picks the subset of pending packages to load onto one vehicle.
//
// Every non-empty subset whose total weight fits within capacity is a candidate;
// the winner has the most packages, then the greatest total weight, then the
// smallest maximum distance. Among complete ties the subset with the lowest
// bitmask (earliest packages in slice order) is kept, so results are deterministic.
//
// The search is exhaustive and runs in O(n * 2^n); nothing bounds it below the
// mask width, so callers own the cost of large pools. len(pending) must not
// exceed MaxPoolSize. pending is never modified. The result holds
// ascending indices into pending and is nil when no package fits.
func SelectShipment(pending []domain.Package, capacity float64) []int {
	n := len(pending)
	if n == 0 || n > MaxPoolSize {
		return nil
	}

	var best candidate
	total := uint64(1) << n

	for mask := uint64(1); mask < total; mask++ {
		count := bits.OnesCount64(mask)
		// A smaller subset can never win once a larger feasible one is known.
		if count < best.count {
			continue
		}

		c := candidate{mask: mask, count: count}
		fits := true
		for rest := mask; rest != 0; rest &= rest - 1 {
			p := pending[bits.TrailingZeros64(rest)]
			c.weight += p.Weight
			if c.weight > capacity {
				fits = false
				break
			}
			if p.Distance > c.maxDist {
				c.maxDist = p.Distance
			}
		}

		if fits && c.better(best) {
			best = c
		}
	}

	if best.count == 0 {
		return nil
	}

	idx := make([]int, 0, best.count)
	for rest := best.mask; rest != 0; rest &= rest - 1 {
		idx = append(idx, bits.TrailingZeros64(rest))
	}
	return idx
}
