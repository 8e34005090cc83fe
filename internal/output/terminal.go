package output

import (
	"fmt"
	"io"

	"github.com/lorenzotomasdiez/contrarian/internal/debate"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Colorize wraps s with an ANSI color code and reset.
func Colorize(color, s string) string { return color + s + ansiReset }

// Bold wraps s with ANSI bold and reset.
func Bold(s string) string { return ansiBold + s + ansiReset }

// PrintReply writes a formatted bot reply.
func PrintReply(w io.Writer, turn int, reply string) {
	fmt.Fprintf(w, "%s %s\n\n",
		Colorize(ansiYellow, fmt.Sprintf("[turn %d]", turn)),
		reply,
	)
}

// PrintLock writes the locked attributes banner shown once, after the
// first exchange of a session.
func PrintLock(w io.Writer, lock debate.Lock) {
	topic := string(lock.Topic)
	if lock.Comparator() {
		topic = fmt.Sprintf("%s vs %s", lock.Pair.SideA, lock.Pair.SideB)
	}
	fmt.Fprintf(w, "%s locale=%s topic=%s stance=%s\n\n",
		Colorize(ansiBold+ansiCyan, "=== locked ==="),
		Colorize(ansiGreen, string(lock.Locale)),
		Colorize(ansiGreen, topic),
		Colorize(ansiGreen, string(lock.Stance)),
	)
}

// PrintPrompt writes the interactive input prompt.
func PrintPrompt(w io.Writer) {
	fmt.Fprint(w, Bold("you> "))
}
