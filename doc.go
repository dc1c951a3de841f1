// Package smaa implements Subpixel Morphological Antialiasing on the CPU.
//
// SMAA removes jagged edges from an already rendered image in three passes:
//
//  1. Edge detection flags pixels whose color differs sharply from their
//     left or top neighbor.
//  2. The blending weight pass follows each flagged edge to both of its ends,
//     classifies the shape of the line and reads, from a precomputed area
//     table, how much of each pixel the ideal antialiased line would cover.
//  3. Neighborhood blending mixes every pixel with the neighbor across the
//     edge according to those weights.
//
// The passes read and write pixbuf buffers and emulate GPU texture fetches
// with bilinear sampling, so results match the reference shaders.
//
// # Quick Start
//
//	area, err := tables.ReadArea(f) // 160x560 RG8 area table
//	if err != nil {
//	    return err
//	}
//	aa, err := smaa.New(area, tables.GenerateSearch())
//	if err != nil {
//	    return err
//	}
//	defer aa.Close()
//
//	out := aa.ApplyImage(img)
//
// # Concurrency
//
// Each pass is split into row bands executed on a shared worker pool. A pass
// only starts after the previous one finished, and results do not depend on
// the number of workers.
package smaa
