package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names whose values never reach a
// log line.
var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"x-api-key",
	"sec-websocket-key",
}

// IsSensitiveHeader reports whether the named HTTP header carries a
// credential.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// Three base64url segments of at least 10 characters; shorter dotted
	// strings such as versions are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// redactor returns the ReplaceAttr hook shared by every handler New builds.
// Fields are matched by name for credentials and payout details, and by
// pattern for tokens that slip into free-form values.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+10)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("accountNo"),
		masq.WithFieldName("account_number"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
