package ll

import (
	"fmt"
	"html"
	"io"
)

// TablesAsText writes FIRST- and FOLLOW-sets of an analysed grammar, one set
// per line:
//
//    FIRST(S) = {a,b}
//    ...
//    FOLLOW(S) = {$}
//
func TablesAsText(ga *LLAnalysis, w io.Writer) error {
	if ga == nil {
		return fmt.Errorf("no grammar analysis to export")
	}
	if _, err := io.WriteString(w, ga.first.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, ga.follow.String())
	return err
}

// TablesAsHTML exports FIRST- and FOLLOW-sets of an analysed grammar in
// HTML-format. Every non-terminal gets a table row.
func TablesAsHTML(ga *LLAnalysis, w io.Writer) error {
	if ga == nil {
		return fmt.Errorf("no grammar analysis to export")
	}
	ew := &errWriter{w: w}
	ew.write("<html><body>\n")
	ew.write(fmt.Sprintf("<h3>%s</h3><p>\n", html.EscapeString(ga.g.Name)))
	ew.write("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.write("<tr bgcolor=#cccccc><td></td><td>FIRST</td><td>FOLLOW</td></tr>\n")
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		ew.write(fmt.Sprintf("<tr><td>%s</td>", html.EscapeString(N.Name)))
		ew.write(fmt.Sprintf("<td>%s</td>", html.EscapeString(symbolSetString(ga.First(N)))))
		ew.write(fmt.Sprintf("<td>%s</td>", html.EscapeString(symbolSetString(ga.Follow(N)))))
		ew.write("</tr>\n")
		return nil
	})
	ew.write("</table></body></html>\n")
	return ew.err
}

// errWriter remembers the first write error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
