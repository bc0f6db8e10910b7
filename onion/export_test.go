package onion

// Export private layout helpers for white-box tests: the flatten order is
// a documented contract between Factorize and BuildB, so tests pin it.
var (
	FlattenLowerTo = flattenLowerTo
	UnflattenLower = unflattenLower
)
