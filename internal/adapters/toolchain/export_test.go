package toolchain

// NewResolverWithLookPath creates a Resolver with a stubbed search path.
func NewResolverWithLookPath(fn func(string) (string, error)) *Resolver {
	return &Resolver{lookPath: fn}
}
