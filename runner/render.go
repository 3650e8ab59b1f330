package runner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/ghodss/yaml"

	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/model"
)

type templateData struct {
	model.Commit
	Branch   string
	Baseline string
}

func newTemplate(cfg config.Config) (*template.Template, error) {
	if cfg.Format != config.FormatTemplate {
		return nil, nil
	}
	t, err := template.New("commit").Parse(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("runner: invalid template: %w", err)
	}
	return t, nil
}

// Write renders rep to w in the configured format.
func (r *Runner) Write(w io.Writer, rep *Report) error {
	switch r.cfg.Format {
	case config.FormatJSON:
		return writeJSON(w, rep)
	case config.FormatYAML:
		return writeYAML(w, rep)
	case config.FormatTemplate:
		return r.writeTemplate(w, rep)
	default:
		return r.writeText(w, rep)
	}
}

func (r *Runner) writeText(w io.Writer, rep *Report) error {
	idColor := color.New(color.FgYellow)
	dateColor := color.New(color.FgCyan)
	if r.cfg.UseColor() {
		idColor.EnableColor()
		dateColor.EnableColor()
	} else {
		idColor.DisableColor()
		dateColor.DisableColor()
	}

	bw := bufio.NewWriter(w)
	for _, c := range rep.Commits {
		bw.WriteString(idColor.Sprint(c.ID))
		bw.WriteString(" ")
		bw.WriteString(dateColor.Sprint(c.Date))
		bw.WriteString(" ")
		bw.WriteString(c.Summary)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func (r *Runner) writeTemplate(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	for _, c := range rep.Commits {
		b := &strings.Builder{}
		data := templateData{Commit: c, Branch: rep.Branch, Baseline: rep.Baseline}
		if err := r.tmpl.Execute(b, data); err != nil {
			return err
		}
		bw.WriteString(b.String())
		if !strings.HasSuffix(b.String(), "\n") {
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

func writeJSON(w io.Writer, rep *Report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeYAML(w io.Writer, rep *Report) error {
	b, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
