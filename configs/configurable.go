package configs

// Configurable marks typed values that may be set from config files.
// ConfigExpr names the config field the value is read from.
type Configurable interface {
	ConfigExpr() string
}
