// Package grid provides the rectangular maze model shared by every solver:
// cell types, start/goal markers, bounds and walkability queries, and the
// small vector algebra used by continuous-position navigation.
//
// What:
//
//   - Grid wraps a rectangular [][]CellType with designated Start and Goal.
//   - Cells are one of Empty, Wall, Start, Goal; Wall cells are impassable.
//   - Walkability and 4-neighbor queries use a fixed, deterministic
//     offset order so every traversal built on them is reproducible.
//   - Point is a discrete coordinate; Vec is a continuous position used by
//     gradient descent (fractional coordinates, bilinear sampling).
//
// Why:
//
//   - One immutable-by-convention grid value feeds the potential field
//     builder, the descent navigator, and the ring-search fallback alike.
//   - Maze generators and editors construct the grid; solvers only read it.
//
// Complexity:
//
//   - New / FromRunes: O(W×H) time and memory (deep copy + marker scan).
//   - InBounds / Walkable / vector ops: O(1).
//
// Errors:
//
//   - ErrTooSmall: either dimension is below 3.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart / ErrNoGoal: a marker is absent.
//   - ErrDuplicateStart / ErrDuplicateGoal: a marker appears more than once.
//   - ErrBadRune: FromRunes met a rune outside its alphabet.
package grid
