package nmf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/gridglue/gridglueerr"
)

// ParseFile reads and parses an NMF file from disk.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gridglueerr.Wrap(gridglueerr.IOError, path, err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads an NMF file from r. name is used only to annotate error
// context (typically the source file path).
func Parse(r io.Reader, name string) (*Model, error) {
	p := &parser{sc: bufio.NewScanner(r), name: name}
	p.sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return p.parse()
}

type parser struct {
	sc      *bufio.Scanner
	name    string
	lineNo  int
	pending string
	hasNext bool
}

func (p *parser) context() string {
	return fmt.Sprintf("%s:%d", p.name, p.lineNo)
}

// nextSignificantLine returns the next line that is neither blank nor a
// '#' comment, or ok=false at end of file.
func (p *parser) nextSignificantLine() (string, bool) {
	if p.hasNext {
		p.hasNext = false
		return p.pending, true
	}
	for p.sc.Scan() {
		p.lineNo++
		line := strings.TrimSpace(p.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}

func (p *parser) parse() (*Model, error) {
	m := &Model{}

	header, ok := p.nextSignificantLine()
	if !ok {
		return nil, gridglueerr.New(gridglueerr.MalformedHeader, p.name+": empty file, expected block count")
	}
	fields := strings.Fields(header)
	if len(fields) != 1 {
		return nil, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: expected a single integer block count, got %q", p.context(), header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return nil, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: invalid block count %q", p.context(), header)
	}

	seen := make(map[int]bool, n)
	m.Blocks = make([]BlockDim, 0, n)
	for i := 0; i < n; i++ {
		line, ok := p.nextSignificantLine()
		if !ok {
			return nil, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: expected %d block dimension lines, found %d", p.context(), n, i)
		}
		bd, err := p.parseBlockDim(line)
		if err != nil {
			return nil, err
		}
		if bd.ID < 1 || bd.ID > n {
			return nil, gridglueerr.Newf(gridglueerr.BlockCountMismatch, "%s: block id %d out of range [1,%d]", p.context(), bd.ID, n)
		}
		if seen[bd.ID] {
			return nil, gridglueerr.Newf(gridglueerr.BlockCountMismatch, "%s: duplicate block id %d", p.context(), bd.ID)
		}
		seen[bd.ID] = true
		m.Blocks = append(m.Blocks, bd)
	}
	if len(seen) != n {
		return nil, gridglueerr.Newf(gridglueerr.BlockCountMismatch, "%s: block ids do not form the set 1..%d", p.context(), n)
	}

	for {
		line, ok := p.nextSignificantLine()
		if !ok {
			break
		}
		entry, err := p.parseEntry(line, m)
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, entry)
	}

	return m, nil
}

func (p *parser) parseBlockDim(line string) (BlockDim, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return BlockDim{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: expected 4 integers \"idx iMax jMax kMax\", got %q", p.context(), line)
	}
	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return BlockDim{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: non-integer field %q", p.context(), f)
		}
		vals[i] = v
	}
	bd := BlockDim{ID: vals[0], NI: vals[1], NJ: vals[2], NK: vals[3]}
	if bd.NI < 2 || bd.NJ < 2 || bd.NK < 2 {
		return BlockDim{}, gridglueerr.Newf(gridglueerr.DimensionTooSmall, "%s: block %d has dimension < 2 (%d %d %d)", p.context(), bd.ID, bd.NI, bd.NJ, bd.NK)
	}
	return bd, nil
}

func (p *parser) parseEntry(line string, m *Model) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Entry{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: empty entry line", p.context())
	}
	bc, ok := parseBCKeyword(fields[0])
	if !ok {
		return Entry{}, gridglueerr.Newf(gridglueerr.UnknownBC, "%s: unrecognized boundary-condition keyword %q", p.context(), fields[0])
	}

	if bc.IsDoubleSided() {
		// ONE_TO_ONE B1 F1 S1a E1a S2a E2a B2 F2 S1b E1b S2b E2b TRUE|FALSE
		if len(fields) != 14 {
			return Entry{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: ONE_TO_ONE expects 12 integers and a swap token, got %d fields", p.context(), len(fields)-1)
		}
		ints, err := p.parseInts(fields[1:13])
		if err != nil {
			return Entry{}, err
		}
		swapTok := strings.ToUpper(fields[13])
		var swap bool
		switch swapTok {
		case "TRUE":
			swap = true
		case "FALSE":
			swap = false
		default:
			return Entry{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: swap token must be TRUE or FALSE, got %q", p.context(), fields[13])
		}
		e := Entry{
			Kind:  DoubleSideKind,
			BC:    bc,
			Side1: SideRange{Block: ints[0], Face: ints[1], S1: ints[2], E1: ints[3], S2: ints[4], E2: ints[5]},
			Side2: SideRange{Block: ints[6], Face: ints[7], S1: ints[8], E1: ints[9], S2: ints[10], E2: ints[11]},
			Swap:  swap,
		}
		if err := p.validateRange(e.Side1, m); err != nil {
			return Entry{}, err
		}
		if err := p.validateRange(e.Side2, m); err != nil {
			return Entry{}, err
		}
		if e.Side1.FaceCount() != e.Side2.FaceCount() {
			return Entry{}, gridglueerr.Newf(gridglueerr.AreaMismatch, "%s: interface areas differ (%d vs %d quad cells)", p.context(), e.Side1.FaceCount(), e.Side2.FaceCount())
		}
		return e, nil
	}

	if len(fields) != 7 {
		return Entry{}, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: %s expects 6 integers, got %d fields", p.context(), bc, len(fields)-1)
	}
	ints, err := p.parseInts(fields[1:7])
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		Kind:  SingleSideKind,
		BC:    bc,
		Side1: SideRange{Block: ints[0], Face: ints[1], S1: ints[2], E1: ints[3], S2: ints[4], E2: ints[5]},
	}
	if err := p.validateRange(e.Side1, m); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (p *parser) parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, gridglueerr.Newf(gridglueerr.MalformedHeader, "%s: non-integer field %q", p.context(), f)
		}
		out[i] = v
	}
	return out, nil
}

// validateRange checks a SideRange's block/face exist and that the
// rectangle lies fully inside the host block's surface.
func (p *parser) validateRange(r SideRange, m *Model) error {
	bd, ok := m.BlockByID(r.Block)
	if !ok {
		return gridglueerr.Newf(gridglueerr.RangeOutOfBounds, "%s: references unknown block %d", p.context(), r.Block)
	}
	if r.Face < 1 || r.Face > 6 {
		return gridglueerr.Newf(gridglueerr.RangeOutOfBounds, "%s: face %d out of range [1,6]", p.context(), r.Face)
	}
	primDim, secDim := faceAxesDims(bd, r.Face)
	lo1, hi1 := minmax(r.S1, r.E1)
	lo2, hi2 := minmax(r.S2, r.E2)
	if lo1 < 1 || hi1 > primDim || lo2 < 1 || hi2 > secDim {
		return gridglueerr.Newf(gridglueerr.RangeOutOfBounds, "%s: block %d face %d range [%d,%d]x[%d,%d] exceeds surface extent [1,%d]x[1,%d]",
			p.context(), r.Block, r.Face, r.S1, r.E1, r.S2, r.E2, primDim, secDim)
	}
	return nil
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

// faceAxesDims returns the (primary, secondary) node counts of the given
// 1-based face of a block with the stated dimensions, per the §4.3
// convention: faces 1/2 use (J,K); 3/4 use (I,K); 5/6 use (I,J).
func faceAxesDims(bd BlockDim, face int) (prim, sec int) {
	switch face {
	case 1, 2:
		return bd.NJ, bd.NK
	case 3, 4:
		return bd.NI, bd.NK
	case 5, 6:
		return bd.NI, bd.NJ
	default:
		return 0, 0
	}
}
