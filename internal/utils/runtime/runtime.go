package runtime

// Must panics on err. Reserved for startup wiring that cannot sensibly
// continue, e.g. binding config flags.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
