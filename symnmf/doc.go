// Package symnmf factors a symmetric non-negative similarity matrix W (n×n)
// into a non-negative H (n×k) with W ≈ H·Hᵀ.
//
// 🚀 What is symNMF?
//
//	Symmetric NMF treats each row of H as the soft cluster membership of a
//	point. Taking the arg-max of each row gives a hard clustering that often
//	beats K-means on non-convex shapes, because W encodes the local graph.
//
// ✨ Key features:
//   - InitH draws H0 uniformly from [0, 2·sqrt(mean(W)/k)), keeping ‖H0·H0ᵀ‖
//     commensurate with ‖W‖.
//   - Solve runs the damped multiplicative update
//     H ← H ⊙ ((1−β) + β·(W·H) / (H·Hᵀ·H)); β = 1 is the plain rule, the
//     default β = ½ is the classic damped variant.
//   - Cells whose denominator falls below a safety floor are left unchanged.
//   - The monotone guard (on by default) halves β for a step that would raise
//     ‖W − H·Hᵀ‖_F, so the recorded residual trace never increases.
//   - Stops after MaxIter iterations or once ‖H_new − H_old‖_F² < Epsilon.
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(1234))
//	h0, _ := symnmf.InitH(w, k, rng)
//	res, err := symnmf.Solve(w, h0, k, symnmf.WithMaxIter(300))
//
//	// or in one call, seeding from the options:
//	res, err = symnmf.Run(w, k, symnmf.WithSeed(1234))
//
// Performance:
//
//   - Time:   O(n²·k) per iteration (W·H and the guard's H·Hᵀ dominate)
//   - Memory: O(n² + n·k)
package symnmf
