package barcode

// Cluster is one run of merged angles: the seed angle that opened it and the
// number of angles folded into it.
type Cluster struct {
	Seed  int
	Count int
}

// Estimator scores how strongly a set of line angles agrees on a single
// orientation.
type Estimator struct {
	// BatchSize is the largest degree difference from a cluster's seed that
	// still merges an angle into the cluster.
	BatchSize int

	// HighThreshold and LowThreshold set the divisor of the score: a cluster
	// of HighThreshold-LowThreshold angles scores 100.
	HighThreshold int
	LowThreshold  int
}

// Clusters folds sorted angles into clusters in one forward sweep.
//
// Each angle within BatchSize of the current seed is rewritten to the seed
// and counted against it; any other angle becomes the new seed. The sweep is
// order dependent and only meaningful for ascending input. Clusters are
// returned in ascending seed order.
func (e Estimator) Clusters(sorted []int) []Cluster {
	if len(sorted) == 0 {
		return nil
	}

	var clusters []Cluster
	last := sorted[0]
	for _, angle := range sorted {
		if angle-last <= e.BatchSize {
			angle = last
		}
		last = angle

		if n := len(clusters); n > 0 && clusters[n-1].Seed == angle {
			clusters[n-1].Count++
			continue
		}
		clusters = append(clusters, Cluster{Seed: angle, Count: 1})
	}
	return clusters
}

// Estimate returns the barcode probability (0-100) of a sorted angle list
// and the dominant angle, the seed of the largest cluster. Ties go to the
// lowest seed. An empty list scores (0, 0).
//
//	probability = largest*100 / (HighThreshold-LowThreshold)
//
// using integer division, clamped to [0,100].
func (e Estimator) Estimate(sorted []int) (probability, dominant int) {
	highest := 0
	for _, c := range e.Clusters(sorted) {
		if c.Count > highest {
			highest = c.Count
			dominant = c.Seed
		}
	}
	if highest == 0 {
		return 0, 0
	}

	divisor := e.HighThreshold - e.LowThreshold
	if divisor <= 0 {
		return 100, dominant
	}
	return clampPercent(highest * 100 / divisor), dominant
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
