// Package rsr implements Rectangular Symmetry Reduction for package grid.
//
// What:
//
//   - Reduce scans the grid column by column, top to bottom, and grows a
//     square from every still-unclassified free cell used as top-left anchor.
//   - Growth stops at the first wall, endpoint or already classified cell in
//     the newly added column or row, or at the grid edge.
//   - Squares of side ≥ MinSide (default 4) are kept: their perimeter is
//     marked border and their interior skippable. Smaller squares are
//     discarded and their cells stay free.
//
// Squares never overlap. Once classified, grid.Neighbors turns every
// border-to-interior edge into a single jump to the opposite border whose
// cost is the number of cells crossed, so searches cross open areas in one
// expansion.
//
// Complexity:
//
//   - Reduce: O(W×H×S) worst case, S = largest square side found.
//
// Reduce has no error outcomes: leaving the grid while growing is the normal
// stopping condition.
package rsr
