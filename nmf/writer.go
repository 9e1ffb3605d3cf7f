package nmf

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/gridglue/gridglueerr"
)

// WriteFile emits m to path in NMF format.
func WriteFile(m *Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := Write(m, w); err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	if err := w.Flush(); err != nil {
		return gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	return nil
}

// Write emits m to w in the canonical NMF format: a header comment
// block, the block count, one dimension line per block, then one
// fixed-column line per connectivity/boundary entry. Parsing the
// output of Write reproduces a model equivalent to m up to whitespace.
func Write(m *Model, w io.Writer) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
		defer bw.Flush()
	}

	fmt.Fprintln(bw, "# ======================== Neutral Map File generated by gridglue ==========================")
	fmt.Fprintln(bw, "# ============================================================================================")
	fmt.Fprintln(bw, "# Block#    IDIM    JDIM    KDIM")
	fmt.Fprintln(bw, "# --------------------------------------------------------------------------------------------")

	fmt.Fprintf(bw, "%8d\n", len(m.Blocks))
	for _, b := range m.Blocks {
		fmt.Fprintf(bw, "%8d%8d%8d%8d\n", b.ID, b.NI, b.NJ, b.NK)
	}

	fmt.Fprintln(bw, "# ============================================================================================")
	fmt.Fprintln(bw, "# Type           B1    F1       S1    E1       S2    E2       B2    F2       S1    E1       S2    E2      Swap")
	fmt.Fprintln(bw, "# --------------------------------------------------------------------------------------------")

	for _, e := range m.Entries {
		fmt.Fprintf(bw, "%-13s", e.BC.String())
		writeRange(bw, e.Side1)
		if e.Kind == DoubleSideKind {
			writeRange(bw, e.Side2)
			swap := "FALSE"
			if e.Swap {
				swap = "TRUE"
			}
			fmt.Fprintf(bw, "%10s", swap)
		}
		fmt.Fprintln(bw)
	}
	return nil
}

func writeRange(bw *bufio.Writer, r SideRange) {
	fmt.Fprintf(bw, "%6d%6d%9d%6d%9d%6d", r.Block, r.Face, r.S1, r.E1, r.S2, r.E2)
}
