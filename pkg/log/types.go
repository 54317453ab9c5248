package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development or production
	Encoding     string // console or json
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey struct{}

// requestIDKey is the context key under which the HTTP middleware stores the request ID.
var requestIDKey = ctxKey{}
