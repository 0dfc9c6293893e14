// Package staticcell provides process-wide values that are written exactly once and then
// read with no runtime check.
//
// A value lives in a package-level Cell. A type implementing Static binds itself to that
// one cell. Init writes the value and returns an Inited proof; the proof is zero-sized,
// copied freely, and its Get method costs one call to Holder plus a load.
//
// # Example Usage
//
//	type Config struct{ Workers int }
//
//	var configCell staticcell.Cell[Config]
//
//	func (Config) Holder() staticcell.Ptr[Config] { return configCell.Ptr() }
//
//	func main() {
//		cfg := staticcell.Init[Config](Config{Workers: 4})
//		go run(cfg) // the go statement orders the write before the read
//	}
//
//	func run(cfg staticcell.Inited[Config, Config]) {
//		fmt.Println(cfg.Get().Workers)
//	}
//
// # Contract
//
// Nothing is checked in the default build. The caller guarantees:
//   - Init runs at most once per Static implementation, for the life of the process
//   - Init happens-before every Get, through program order or a real synchronization
//     edge (go statement, channel, sync.Once, WaitGroup)
//   - every Static implementation returns the handle of exactly one Cell, and no Cell
//     backs two implementations
//   - T is safe for concurrent reads once written
//
// Breaking any of these is undefined behaviour: stale or torn reads, data races, a value
// silently overwritten. There is no error to handle.
//
// # Debug Builds
//
// Building with -tags staticcell_debug adds a per-cell atomic state. Init panics if the
// cell was already written and Get panics if it was not. The tag is meant for tests and
// development; release builds carry no guard.
//
// # Trade-offs vs sync.Once
//
// sync.OnceValue checks an atomic flag on every call and makes the first caller pay for
// initialization. An Inited proof has no flag to check: Get inlines at the call site, and
// what remains is the call to Holder through the generic dictionary and a load of the
// returned address. In exchange the ordering argument moves from the runtime to the code
// that calls Init.
package staticcell
