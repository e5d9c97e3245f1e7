package langid

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Run is a contiguous span of text sharing one detected language
// Start and End are byte offsets into the input
type Run struct {
	Text       string     `json:"text"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Lang       string     `json:"lang"`
	Confidence Confidence `json:"confidence"`
}

// Segment runs the default Detector over sentence segments
func Segment(text string) []Run { return std.Segment(text) }

// Segment splits text on ". ", "! ", "? " and line breaks, detects every segment on its own,
// then coalesces adjacent segments with the same language into one run
func (d *Detector) Segment(text string) []Run {
	text = strings.ToValidUTF8(text, "")
	var runs []Run
	for _, sp := range sentences(text) {
		seg := text[sp[0]:sp[1]]
		res := d.Detect(seg)
		if n := len(runs); n > 0 && runs[n-1].Lang == res.Lang {
			last := &runs[n-1]
			last.End = sp[1]
			last.Text = text[last.Start:last.End]
			last.Confidence = Weaker(last.Confidence, res.Confidence)
			continue
		}
		runs = append(runs, Run{
			Text:       seg,
			Start:      sp[0],
			End:        sp[1],
			Lang:       res.Lang,
			Confidence: res.Confidence,
		})
	}
	return runs
}

// Summarize folds runs into one result
// several resolved languages give Mixed, unknown runs are ignored when anything resolved
func Summarize(runs []Run) Result {
	var (
		lang string
		conf = High
		seen bool
	)
	for _, r := range runs {
		if r.Lang == Unknown || r.Lang == "" {
			continue
		}
		conf = Weaker(conf, r.Confidence)
		switch {
		case !seen:
			lang, seen = r.Lang, true
		case lang != r.Lang:
			lang = Mixed
		}
	}
	if !seen {
		return Result{Lang: Unknown, Confidence: Low}
	}
	return Result{Lang: lang, Confidence: conf}
}

// sentences returns trimmed [start,end) byte spans; blank segments are dropped
func sentences(text string) [][2]int {
	var (
		out   [][2]int
		start int
	)
	emit := func(end int) {
		s, e := start, end
		for s < e {
			r, size := utf8.DecodeRuneInString(text[s:])
			if !unicode.IsSpace(r) {
				break
			}
			s += size
		}
		for e > s {
			r, size := utf8.DecodeLastRuneInString(text[:e])
			if !unicode.IsSpace(r) {
				break
			}
			e -= size
		}
		if e > s {
			out = append(out, [2]int{s, e})
		}
	}

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\n':
			emit(i)
			start = i + 1
		case '.', '!', '?':
			if i+1 < len(text) && text[i+1] == ' ' {
				emit(i + 1)
				start = i + 1
			}
		}
	}
	emit(len(text))
	return out
}
