package report

import (
	"fmt"
	"strings"
)

// BandTable renders the healthy-band summary as a LaTeX table.
func BandTable(st BandStats) string {
	var sb strings.Builder
	sb.WriteString("% Auto-generated from data/healthy_band_scan.csv\n")
	sb.WriteString("\\begin{table}[t]\n")
	sb.WriteString("  \\centering\n")
	sb.WriteString("  \\begin{tabular}{l c}\n")
	sb.WriteString("    \\hline\\hline\n")
	sb.WriteString("    Quantity & Value \\\\\n")
	sb.WriteString("    \\hline\n")
	fmt.Fprintf(&sb, "    Total grid points & %d \\\\\n", st.Total)
	fmt.Fprintf(&sb, "    Stable points ($Z_t>0$, $Z_s>0$) & %d \\\\\n", st.Stable)
	fmt.Fprintf(&sb, "    Fraction stable & %.3f \\\\\n", st.FracStable)
	sb.WriteString("    \\hline\\hline\n")
	sb.WriteString("  \\end{tabular}\n")
	sb.WriteString("  \\caption{Summary of the healthy-band scan in the\n")
	sb.WriteString("  $(P'(X_0),P''(X_0))$ plane.}\n")
	sb.WriteString("  \\label{tab:healthy_band_stats}\n")
	sb.WriteString("\\end{table}\n")
	return sb.String()
}

// F2Table renders the spin-2 sample summary as a LaTeX table.
func F2Table(st F2Stats) string {
	var sb strings.Builder
	sb.WriteString("% Auto-generated from data/spin2_F2_samples.csv\n")
	sb.WriteString("\\begin{table}[t]\n")
	sb.WriteString("  \\centering\n")
	sb.WriteString("  \\begin{tabular}{l c}\n")
	sb.WriteString("    \\hline\\hline\n")
	sb.WriteString("    Quantity & Value \\\\\n")
	sb.WriteString("    \\hline\n")
	fmt.Fprintf(&sb, "    Total samples & %d \\\\\n", st.Total)
	fmt.Fprintf(&sb, "    $F_2>0$ & %d \\\\\n", st.NPos)
	fmt.Fprintf(&sb, "    $F_2<0$ & %d \\\\\n", st.NNeg)
	fmt.Fprintf(&sb, "    $F_2\\approx 0$ & %d \\\\\n", st.NZero)
	fmt.Fprintf(&sb, "    $\\min F_2$ & %.6g \\\\\n", st.Min)
	fmt.Fprintf(&sb, "    $\\max F_2$ & %.6g \\\\\n", st.Max)
	sb.WriteString("    \\hline\\hline\n")
	sb.WriteString("  \\end{tabular}\n")
	sb.WriteString("  \\caption{Summary of the spin--2 projector contraction samples\n")
	sb.WriteString("  $F_2(q,k)$ used to illustrate the sign and magnitude of the\n")
	sb.WriteString("  spin--2 coefficient in the healthy band.}\n")
	sb.WriteString("  \\label{tab:spin2_F2_stats}\n")
	sb.WriteString("\\end{table}\n")
	return sb.String()
}
