package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
)

// printer writes either JSON or an aligned table depending on --json.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(c *cli.Context) *printer {
	return &printer{w: c.App.Writer, json: c.Bool("json")}
}

// table prints rows under a header, or v as JSON when --json is set.
func (p *printer) table(v any, header string, rows func(w io.Writer)) error {
	if p.json {
		return p.printJSON(v)
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

// line prints a one-line message, or v as JSON when --json is set.
func (p *printer) line(v any, format string, args ...any) error {
	if p.json {
		return p.printJSON(v)
	}
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func (p *printer) printJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func pageFooter[T any](w io.Writer, page *kickoffsdk.Page[T]) {
	fmt.Fprintf(w, "\npage %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
}

func userName(u *kickoffsdk.User) string {
	if u == nil {
		return "-"
	}
	return u.FullName
}

func teamName(t *kickoffsdk.Team, id int64) string {
	if t != nil {
		return t.Name
	}
	if id == 0 {
		return "-"
	}
	return fmt.Sprintf("#%d", id)
}
