package lifecycle

// Instance is an owned resource that must be released exactly once.
type Instance interface {
	Release()
	String() string
}
