package settings

const (
	Name = "netparams"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"
