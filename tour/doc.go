// Package tour implements a guided walk through core Go language features.
// A Runner executes eleven self-contained sections in a fixed order, each
// printing a short illustration to the configured writer:
//   - Values and pointers: reading a string through a pointer leaves the owner usable.
//   - Generics and interfaces: a generic coordinate pair and an area-computing shape.
//   - Enums and switch: a closed set of message kinds dispatched exhaustively.
//   - Error handling: a best-effort file read whose expected failure is printed, not fatal.
//   - Map and filter: two independent derivations from one slice literal.
//   - Goroutines and channels: a single task that suspends on a timer and signals done.
//   - Mutex and WaitGroup: five workers incrementing a shared counter without lost updates.
//   - Pointers and the heap: single-owner allocations and a shared reference.
//   - Maps: a two-entry map iterated in whatever order Go picks.
//   - Formatted printing: a fixed-prefix print helper standing in for a text macro.
//   - Command-line arguments: echoing whatever followed the program name.
//
// Sections never feed each other; no state outlives the section that made
// it. The Runner runs them all in order, or one at a time by title for the
// interactive browser in cmd/gotour.
package tour
