// Package detection provides straight-line detection on binary edge maps.
//
// Lines are found with the standard Hough line transform. Every edge pixel
// votes for each line through it, parameterised in normal form by an integer
// angle in [0,180) degrees and a signed radius rounded to the nearest pixel.
// Accumulator cells reaching the vote threshold that are maxima of their
// suppression window become lines.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// An angle of 0 is a vertical line (x = R) and 90 is a horizontal line
// (y = R).
//
// # Performance Considerations
//
// Voting is O(edge pixels × 180). Suppression is O(cells over threshold ×
// (2r+1)²). For the default tile size this is dominated by voting.
package detection
