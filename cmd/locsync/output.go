package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/loopcontext/locsync"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

func printSummary(w io.Writer, s *locsync.Summary, dryRun bool) {
	if s == nil {
		return
	}
	for _, f := range s.Files {
		switch {
		case f.Err != nil:
			failColor.Fprintf(w, "%s: failed: %v\n", f.Path, f.Err)
		case f.Written:
			warnColor.Fprintf(w, "%s: added %d keys\n", f.Path, len(f.Added))
		case f.Changed():
			warnColor.Fprintf(w, "%s: missing %d keys: %s\n", f.Path, len(f.Added), strings.Join(f.Added, ", "))
		default:
			okColor.Fprintf(w, "%s: up to date\n", f.Path)
		}
	}
	verb := "added"
	if dryRun {
		verb = "missing"
	}
	fmt.Fprintf(w, "%d keys, %d of %d files changed, %d entries %s\n",
		s.Keys, len(s.Changed()), len(s.Files), s.Added(), verb)
}

func printStatus(w io.Writer, keys int, statuses []locsync.FileStatus) {
	for _, st := range statuses {
		c := okColor
		if !st.Complete() {
			c = warnColor
		}
		c.Fprintf(w, "%s (%s): %d entries, %d missing, %d untranslated, %d invalid, %d stale\n",
			st.Path, st.Language, st.Entries, len(st.Missing), len(st.Untranslated), len(st.Invalid), len(st.Stale))
		printKeyList(w, "missing", st.Missing)
		printKeyList(w, "untranslated", st.Untranslated)
		printKeyList(w, "invalid", st.Invalid)
		printKeyList(w, "stale", st.Stale)
	}
	fmt.Fprintf(w, "%d keys checked against %d files\n", keys, len(statuses))
}

func printKeyList(w io.Writer, label string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", label, strings.Join(keys, ", "))
}
