// Package barcode decides which tiles of a large image look like barcodes.
//
// A barcode seen through an edge detector is a dense set of parallel straight
// edges. The Analyzer walks the image with an overlapping sliding window;
// for every tile it detects edges, finds straight lines, and feeds the
// sorted line angles to two small statistics:
//
//   - Median, the tile's representative angle, used to rotate rendered
//     output upright.
//   - Estimator.Estimate, which folds the angles into clusters and scores
//     the largest one on a 0-100 scale.
//
// Tiles scoring strictly above Config.DecisionThreshold are accepted and
// handed to a Renderer.
//
// # Clustering
//
// Clustering is a single forward sweep over ascending angles. Each angle
// within BatchSize degrees of the current seed joins the seed's cluster;
// any other angle opens a new cluster. The sweep is deliberately simple and
// order dependent. The score is
//
//	largest cluster * 100 / (HighThreshold - LowThreshold)
//
// clamped to [0,100]; with the defaults 25 agreeing lines score 100.
//
// # Concurrency
//
// Tiles are independent. Scan runs up to Config.Workers of them at once on
// freshly extracted buffers and returns accepted verdicts in window order,
// so results and output names do not depend on scheduling.
package barcode
