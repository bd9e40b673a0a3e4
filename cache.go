package config

// ProgramCache stores compiled expression programs keyed by expression
// strings. Evaluators consult it before compiling.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
