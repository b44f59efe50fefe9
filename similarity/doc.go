// SPDX-License-Identifier: MIT

// Package similarity computes the N×N legislator similarity matrix from a
// votes.Matrix under one of four deliberately different metrics.
//
// Methods and their missing-data policy:
//
//	cosine              missing → 0, cosine over the whole zero-filled ballot space;
//	                    a legislator with no vote scores 0 everywhere, diagonal included.
//	correlation         Pearson over ballots where both legislators voted;
//	                    < 2 such ballots or zero variance → 0; diagonal 1.
//	jaccard             equal votes on common ballots / ballots where either voted;
//	                    common < MinCommonVotes → 0; diagonal 1.
//	agreement_weighted  equal votes / common ballots;
//	                    common < MinCommonVotes → 0; diagonal 1.
//
// Only the upper triangle is computed; each value is mirrored, so the result is
// symmetric by construction. Rows are split across workers, and every cell is
// computed by exactly one goroutine with a fixed summation order, so the output
// does not depend on WithWorkers.
//
// Complexity: O(L²·B) time, O(L²) memory.
package similarity
