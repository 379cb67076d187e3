package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/engine/pipeline"
	"go.trai.ch/snap/internal/ui/output"
	"go.trai.ch/snap/internal/ui/style"
)

const shortHashLen = 12

type palette struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newPalette(w io.Writer, plain bool) palette {
	r := output.Renderer(w, plain)
	return palette{
		title:   r.NewStyle().Inherit(style.Title),
		muted:   r.NewStyle().Inherit(style.Muted),
		success: r.NewStyle().Inherit(style.Success),
		failure: r.NewStyle().Inherit(style.Failure),
	}
}

func writeReport(w io.Writer, plain bool, r *pipeline.Report) {
	p := newPalette(w, plain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range r.Steps {
		icon := p.success.Render(style.Check)
		if s.Err != nil {
			icon = p.failure.Render(style.Cross)
		}
		_, _ = fmt.Fprintf(tw, "%s %s\t%s\n", icon, s.Name, p.muted.Render(s.Path))
	}
	_ = tw.Flush()

	parts := []string{
		fmt.Sprintf("%.6fs", r.Elapsed),
		"commit " + shortHash(r.Commit),
	}
	if r.Index != nil {
		parts = append(parts, fmt.Sprintf("%d files", len(r.Index.Files)))
	}
	if r.ExitCode != nil {
		parts = append(parts, fmt.Sprintf("exit %d", *r.ExitCode))
	}
	if r.Published != "" {
		parts = append(parts, "published "+shortHash(r.Published))
	}

	status := p.success.Render("snapshot recorded")
	if len(r.Failed()) > 0 {
		status = p.failure.Render(fmt.Sprintf("%d of %d steps failed", len(r.Failed()), len(r.Steps)))
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", status, p.muted.Render("("+strings.Join(parts, ", ")+")"))
}

func writeIndexSummary(w io.Writer, plain bool, idx *domain.WorkspaceIndex, path string) {
	p := newPalette(w, plain)
	_, _ = fmt.Fprintf(w, "%s indexed %d files into %s %s\n",
		p.success.Render(style.Check),
		len(idx.Files),
		path,
		p.muted.Render("(commit "+shortHash(idx.LastCommit)+")"),
	)
}

func writeHistory(w io.Writer, plain bool, records []domain.ExecutionRecord) {
	p := newPalette(w, plain)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, p.title.Render("TIMESTAMP")+"\t"+
		p.title.Render("SECONDS")+"\t"+
		p.title.Render("COMMIT")+"\t"+
		p.title.Render("COMMAND"))
	for _, rec := range records {
		command := rec.Command
		if rec.ExitCode != nil {
			command = fmt.Sprintf("%s (exit %d)", command, *rec.ExitCode)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%.6f\t%s\t%s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.ExecutionTimeSeconds,
			shortHash(rec.CommitHash),
			command,
		)
	}
	_ = tw.Flush()
}

func shortHash(h string) string {
	if len(h) > shortHashLen {
		return h[:shortHashLen]
	}
	return h
}
