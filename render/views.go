package render

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/tutils/lcgviz/lcg"
)

// Formula is the recurrence written out for p.
func Formula(p lcg.Params) string {
	return fmt.Sprintf("X(n+1) = (%d·X(n) + %d) mod %d", p.A, p.C, p.M)
}

// SequenceCaption joins at most limit values with arrows.
func SequenceCaption(seq []uint64, limit int) string {
	var sb strings.Builder
	for i, x := range seq {
		if i == limit {
			sb.WriteString(" → ...")
			break
		}
		if i > 0 {
			sb.WriteString(" → ")
		}
		fmt.Fprint(&sb, x)
	}
	return sb.String()
}

// Caption describes what happens during ph of step s.
func Caption(p lcg.Params, s lcg.Step, ph lcg.Phase) string {
	var c string
	switch ph {
	case lcg.PhaseStart:
		c = fmt.Sprintf("Step 1: Start with X_n = %d", s.X)
	case lcg.PhaseMultiply:
		c = fmt.Sprintf("Step 2: Multiply by %d → (%d × %d) = %d", p.A, p.A, s.X, s.Product)
	case lcg.PhaseAdd:
		c = fmt.Sprintf("Step 3: Add %d → %d + %d = %d", p.C, s.Product, p.C, s.Sum)
	case lcg.PhaseModulo:
		c = fmt.Sprintf("Step 4: Modulo %d → %d mod %d = %d", p.M, s.Sum, p.M, s.Next)
	default:
		return ""
	}
	if s.Overflow && (ph == lcg.PhaseMultiply || ph == lcg.PhaseAdd || ph == lcg.PhaseModulo) {
		c += " (intermediate truncated to 64 bits)"
	}
	return c
}

// BarScale is the largest value the 1D view must show: max(a*m + c, 20).
func BarScale(p lcg.Params) uint64 {
	hi, lo := bits.Mul64(p.A, p.M)
	lo, carry := bits.Add64(lo, p.C, 0)
	if hi != 0 || carry != 0 {
		return ^uint64(0)
	}
	if lo < 20 {
		return 20
	}
	return lo
}

var phaseColors = [lcg.PhaseCount]color{colorBlue, colorYellow, colorGreen, colorMagenta}

// Summary writes the formula and the headline metrics.
func (r *Renderer) Summary(p lcg.Params, st lcg.Stats) error {
	return r.printf("%s\n%s seed %d\nSequence Length %d   Period %d   Coverage %.1f%%\n",
		r.paint(colorBold, "Linear Congruential Generator"),
		Formula(p), p.Seed,
		st.Length, st.Period, st.Coverage*100)
}

// Sequence writes the one-line sequence caption.
func (r *Renderer) Sequence(seq []uint64) error {
	return r.printf("Sequence: %s\n", SequenceCaption(seq, r.opts.captionLimit))
}

// Quality writes the coverage verdict and the short cycle warning.
func (r *Renderer) Quality(p lcg.Params, st lcg.Stats) error {
	var line string
	switch st.Quality {
	case lcg.QualityFull:
		line = r.paint(colorGreen, fmt.Sprintf("✓ Full period! Generates all %d possible values.", p.M))
	case lcg.QualityGood:
		line = r.paint(colorCyan, fmt.Sprintf("Good coverage: %d/%d unique values", st.DistinctCount, p.M))
	default:
		line = r.paint(colorYellow, fmt.Sprintf("Limited coverage: %d/%d unique values", st.DistinctCount, p.M))
	}
	if err := r.printf("%s\n", line); err != nil {
		return err
	}
	if st.ShortCycle {
		return r.printf("%s\n", r.paint(colorYellow, "⚠ Short cycle detected - poor parameter choice"))
	}
	return nil
}

// Checks writes one pass/fail line per check.
func (r *Renderer) Checks(checks []lcg.Check) error {
	for _, c := range checks {
		var line string
		if c.Passed {
			line = r.paint(colorGreen, "✓ "+c.Name)
		} else {
			line = r.paint(colorRed, "✗ "+c.Name)
		}
		if err := r.printf("  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// HullDobell writes the full-theorem conditions and the verdict.
func (r *Renderer) HullDobell(hd lcg.HullDobellReport) error {
	if err := r.Checks(hd.Conditions); err != nil {
		return err
	}
	if hd.FullPeriod {
		return r.printf("  %s\n", r.paint(colorGreen, "Hull–Dobell: full period guaranteed"))
	}
	return r.printf("  %s\n", r.paint(colorRed, "Hull–Dobell: full period not guaranteed"))
}

// Bar writes the 1D view of value during ph, scaled to BarScale(p).
func (r *Renderer) Bar(p lcg.Params, value uint64, ph lcg.Phase) error {
	width := r.opts.width - 2
	if width < 1 {
		width = 1
	}
	scale := BarScale(p)
	filled := int(float64(value) / float64(scale) * float64(width))
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}

	c := colorBlue
	if ph >= 0 && ph < lcg.PhaseCount {
		c = phaseColors[ph]
	}
	bar := r.paint(c, strings.Repeat("█", filled)) + strings.Repeat(" ", width-filled)
	return r.printf("|%s|\n", bar)
}

// Step writes the caption and bar of one phase.
func (r *Renderer) Step(p lcg.Params, s lcg.Step, ph lcg.Phase) error {
	if err := r.printf("%s\n", Caption(p, s, ph)); err != nil {
		return err
	}
	return r.Bar(p, s.Value(ph), ph)
}

// Scatter writes the spectral view of pairs over an m×m grid scaled to the
// renderer size. The most recent pair is highlighted.
func (r *Renderer) Scatter(m uint64, pairs []lcg.Pair) error {
	cols := r.opts.width - 8
	rows := r.opts.height - 3
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	if m < uint64(cols) {
		cols = int(m)
	}
	if m < uint64(rows) {
		rows = int(m)
	}
	if cols < 1 || rows < 1 {
		return nil
	}

	cell := func(v uint64, n int) int {
		hi, lo := bits.Mul64(v, uint64(n))
		q, _ := bits.Div64(hi, lo, m)
		return int(q)
	}

	marks := make([][]rune, rows)
	for i := range marks {
		marks[i] = []rune(strings.Repeat("·", cols))
	}
	for i, pr := range pairs {
		if pr.X >= m || pr.Y >= m {
			continue
		}
		x := cell(pr.X, cols)
		y := rows - 1 - cell(pr.Y, rows)
		if i == len(pairs)-1 {
			marks[y][x] = '◆'
		} else {
			marks[y][x] = '■'
		}
	}

	if err := r.printf("%6s ┌%s\n", "X(n+1)", strings.Repeat("─", cols)); err != nil {
		return err
	}
	for i, row := range marks {
		label := ""
		switch i {
		case 0:
			label = fmt.Sprint(m - 1)
		case rows - 1:
			label = "0"
		}
		line := string(row)
		line = strings.ReplaceAll(line, "■", r.paint(colorRed, "■"))
		line = strings.ReplaceAll(line, "◆", r.paint(colorMagenta, "◆"))
		if err := r.printf("%6s │%s\n", label, line); err != nil {
			return err
		}
	}
	return r.printf("%6s └%s\n%8s0%*d  X(n)\n", "", strings.Repeat("─", cols), "", cols-1, m-1)
}

// Clear moves the cursor home and clears the screen. It writes nothing when colour is off.
func (r *Renderer) Clear() error {
	if !r.colored {
		return nil
	}
	return r.printf("\033[H\033[2J")
}

// Progress writes the "step i/n" header of an animation frame.
func (r *Renderer) Progress(p lcg.Params, step, total int) error {
	return r.printf("%s   %s\n", Formula(p), r.paint(colorBold, fmt.Sprintf("step %d/%d", step, total)))
}
