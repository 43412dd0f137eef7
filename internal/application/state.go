package application

// FormState is the lifecycle state of the swap form data. Loading transitions
// exactly once, to either Ready or Failed; Failed is terminal.
type FormState string

const (
	StateLoading FormState = "loading"
	StateReady   FormState = "ready"
	StateFailed  FormState = "failed"
)
