package heuristic

// Options gates the three optional refinements of spec.md §4.7, each
// individually toggleable, mirroring the #if CONFIG_HEURISTIC_CACHE_*
// structure of HeuristicCache.h translated to boolean fields (SPEC_FULL.md
// §4.7) and the teacher's functional-option convention
// (dijkstra/types.go's Option/With* pair).
type Options struct {
	// CacheOptimization marks any cell a reachability analysis proves
	// unreachable under every property as permanently OutOfBounds on the
	// lattice, so future move checks skip it.
	CacheOptimization bool
	// DistanceLimitation refuses to consider a neighbor coordinate during
	// MoveOffset construction whose static-distance exceeds the non-static
	// module count.
	DistanceLimitation bool
	// HelpLimitation switches MoveOffset construction from FreeSpaceCheck to
	// FreeSpaceCheckWithHelp, with a borrow budget of the non-static module
	// count minus one. The same budget applies to every goal position; how
	// many modules can actually reach each goal is not computed.
	HelpLimitation bool
}

// Option is a functional option over Options.
type Option func(*Options)

// WithCacheOptimization enables the cache-optimization refinement.
func WithCacheOptimization() Option { return func(o *Options) { o.CacheOptimization = true } }

// WithDistanceLimitation enables the distance-limitation refinement.
func WithDistanceLimitation() Option { return func(o *Options) { o.DistanceLimitation = true } }

// WithHelpLimitation enables the help-limitation refinement.
func WithHelpLimitation() Option { return func(o *Options) { o.HelpLimitation = true } }

// DefaultOptions returns every refinement disabled.
func DefaultOptions() Options { return Options{} }
