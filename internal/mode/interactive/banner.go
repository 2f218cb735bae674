// ABOUTME: Startup banner: name, working directory, active recognizer and a few example requests
// ABOUTME: Printed once before the first prompt

package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/scriptterm/pkg/tui/width"
)

type bannerHint struct{ say, does string }

var bannerHints = []bannerHint{
	{"list python scripts", "see what is there"},
	{"run backup.sh", "execute a script"},
	{"help", "all commands"},
	{"exit", "leave (or ctrl+c / ctrl+d)"},
}

func printBanner(out io.Writer, p palette, cwd, strategy string) {
	var b strings.Builder
	b.WriteString(p.paint("accent", "scriptterm") + " " + p.paint("dim", "natural-language script terminal") + "\n")
	b.WriteString("  " + p.paint("info", cwd) + "\n")
	b.WriteString("  " + p.paint("dim", "recognizer: "+strategy) + "\n\n")

	const pad = 22
	for _, h := range bannerHints {
		fmt.Fprintf(&b, "  %s%s\n", width.PadRight(h.say, pad), p.paint("dim", h.does))
	}
	fmt.Fprintln(out, b.String())
}
