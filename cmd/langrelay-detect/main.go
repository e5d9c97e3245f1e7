// Command langrelay-detect runs the language identifier over text from args or stdin
//
//	langrelay-detect "Der Hund ist müde"
//	cat lines.txt | langrelay-detect -json -compare
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"langrelay/internal/core/langid"
	"langrelay/internal/core/normalize"
	"langrelay/internal/platform/logger"
)

type options struct {
	segment bool
	def     string
	asJSON  bool
	compare bool
}

// line is one output record
type line struct {
	Text       string       `json:"text"`
	Lang       string       `json:"lang"`
	Confidence string       `json:"confidence"`
	Method     string       `json:"method,omitempty"`
	Runs       []langid.Run `json:"runs,omitempty"`
	Reference  string       `json:"reference,omitempty"`
	Agree      *bool        `json:"agree,omitempty"`
}

func main() {
	logger.Init(logger.FromEnv())
	if err := run(os.Args[1:], os.Stdin, os.Stdout, newLingua); err != nil {
		logger.Get().Error().Err(err).Msg("langrelay-detect failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, ref func() reference) error {
	fs := flag.NewFlagSet("langrelay-detect", flag.ContinueOnError)
	var o options
	fs.BoolVar(&o.segment, "segment", false, "split into sentences and report runs plus the mixed summary")
	fs.StringVar(&o.def, "default", "", "language reported when nothing matches")
	fs.BoolVar(&o.asJSON, "json", false, "emit one JSON object per line")
	fs.BoolVar(&o.compare, "compare", false, "also run lingua-go and report agreement")
	if err := fs.Parse(args); err != nil {
		return err
	}

	det := langid.New(langid.WithDefault(o.def))
	var r reference
	if o.compare {
		r = ref()
	}

	var agreed, total int
	emit := func(text string) error {
		text = normalize.Clean(text)
		if text == "" {
			return nil
		}
		out := detect(det, text, o.segment)
		if r != nil {
			code, ok := r.Detect(text)
			if !ok {
				code = langid.Unknown
			}
			same := code == out.Lang
			out.Reference, out.Agree = code, &same
			total++
			if same {
				agreed++
			}
		}
		return write(stdout, out, o.asJSON)
	}

	if fs.NArg() > 0 {
		if err := emit(strings.Join(fs.Args(), " ")); err != nil {
			return err
		}
	} else {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 64*1024), 1<<20)
		for sc.Scan() {
			if err := emit(sc.Text()); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	if r != nil && total > 0 && !o.asJSON {
		_, err := fmt.Fprintf(stdout, "agreement %d/%d (%.1f%%)\n", agreed, total, 100*float64(agreed)/float64(total))
		return err
	}
	return nil
}

func detect(det *langid.Detector, text string, segment bool) line {
	if !segment {
		res := det.Detect(text)
		return line{Text: text, Lang: res.Lang, Confidence: string(res.Confidence), Method: string(res.Method)}
	}
	runs := det.Segment(text)
	sum := langid.Summarize(runs)
	return line{Text: text, Lang: sum.Lang, Confidence: string(sum.Confidence), Runs: runs}
}

func write(w io.Writer, l line, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(l)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%s", l.Lang, l.Confidence)
	if l.Agree != nil {
		mark := "="
		if !*l.Agree {
			mark = "!"
		}
		fmt.Fprintf(&b, "\t%s%s", mark, l.Reference)
	}
	fmt.Fprintf(&b, "\t%s\n", l.Text)
	for _, run := range l.Runs {
		fmt.Fprintf(&b, "  %s\t%s\t%s\n", run.Lang, run.Confidence, run.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
