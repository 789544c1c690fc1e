package headparams

type AuditPolicy int

const (
	AuditOff AuditPolicy = iota // silent fallback only
	AuditLog                    // log every unresolved token at warn level
)
