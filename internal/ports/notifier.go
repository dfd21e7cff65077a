package ports

// Notifier surfaces run lifecycle to the user: one start notification and
// one final success or error notification per run, no per-item noise.
type Notifier interface {
	Start(title, message string)
	Success(title, message string)
	Error(title, message string)
}

// Progress reports per-item advancement for long runs. Implementations must
// tolerate concurrent Advance calls.
type Progress interface {
	Begin(total int)
	Advance(label string)
	End(label string)
}
