package constant

// Values of runtime.GOOS this client distinguishes.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
