package analyze

import (
	"regexp"
	"strings"

	"github.com/vburojevic/stacksift/internal/domain"
)

// Precompiled once; NormalizeMessage runs on every displayed cluster label.
var (
	hexAddrRegex = regexp.MustCompile(`0x[0-9a-fA-F]+`)
	uuidRegex    = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	numberRegex  = regexp.MustCompile(`\d+`)
)

// NormalizeMessage removes variable parts so similar messages display under
// one label: hex addresses, UUIDs, and numbers become placeholders. Applied
// only at the display layer; clustering similarity sees raw messages.
func NormalizeMessage(msg string) string {
	msg = hexAddrRegex.ReplaceAllString(msg, "<addr>")
	msg = uuidRegex.ReplaceAllString(msg, "<uuid>")
	msg = numberRegex.ReplaceAllString(msg, "<n>")

	if len(msg) > domain.MaxMessageLength {
		msg = msg[:domain.MaxMessageLength] + "..."
	}

	return strings.TrimSpace(msg)
}
