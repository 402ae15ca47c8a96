package table

import (
	"fmt"
	"testing"
)

func numberedTable(t *testing.T, rows int) *Table {
	t.Helper()
	raw := &RawData{Headers: []string{"id"}}
	for i := 1; i <= rows; i++ {
		raw.Rows = append(raw.Rows, map[string]string{"id": fmt.Sprintf("%d", i)})
	}
	return mustTable(t, raw)
}

func ids(tbl *Table) []float64 {
	col, _ := tbl.Column("id")
	return col.Floats
}

func TestSample_OversizeIsIdentity(t *testing.T) {
	tbl := numberedTable(t, 10)

	for _, method := range []SampleMethod{SampleHead, SampleRandom} {
		sample := tbl.Sample(10, method)
		if sample != tbl {
			t.Errorf("%s: n == rows should return the table itself", method)
		}
		sample = tbl.Sample(500, method)
		if sample != tbl {
			t.Errorf("%s: n > rows should return the table itself", method)
		}
	}
}

func TestSample_HeadIsDeterministicAndOrdered(t *testing.T) {
	tbl := numberedTable(t, 10)

	first := tbl.Sample(4, SampleHead)
	second := tbl.Sample(4, SampleHead)

	if first.RowCount() != 4 {
		t.Fatalf("expected 4 rows, got %d", first.RowCount())
	}
	for i, want := range []float64{1, 2, 3, 4} {
		if ids(first)[i] != want {
			t.Errorf("row %d: expected id %v, got %v", i, want, ids(first)[i])
		}
		if ids(second)[i] != ids(first)[i] {
			t.Errorf("head sampling is not idempotent at row %d", i)
		}
	}
}

func TestSample_RandomIsDeterministicForFixedSeed(t *testing.T) {
	tbl := numberedTable(t, 100)

	first := tbl.Sample(30, SampleRandom)
	second := tbl.Sample(30, SampleRandom)

	if first.RowCount() != 30 {
		t.Fatalf("expected 30 rows, got %d", first.RowCount())
	}
	for i := range ids(first) {
		if ids(first)[i] != ids(second)[i] {
			t.Fatalf("random sampling diverged at row %d: %v vs %v", i, ids(first)[i], ids(second)[i])
		}
	}
}

func TestSample_RandomDrawsWithoutReplacement(t *testing.T) {
	tbl := numberedTable(t, 100)

	sample := tbl.Sample(50, SampleRandom)
	seen := make(map[float64]bool)
	for _, id := range ids(sample) {
		if seen[id] {
			t.Fatalf("row %v drawn twice", id)
		}
		seen[id] = true
		if id < 1 || id > 100 {
			t.Fatalf("row %v outside source table", id)
		}
	}
}

func TestSample_RandomDiffersFromHead(t *testing.T) {
	tbl := numberedTable(t, 100)

	head := tbl.Sample(50, SampleHead)
	random := tbl.Sample(50, SampleRandom)

	same := true
	for i := range ids(head) {
		if ids(head)[i] != ids(random)[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("seeded random draw reproduced the head sample exactly")
	}
}

func TestSample_SeedChangesDraw(t *testing.T) {
	tbl := numberedTable(t, 100)

	a := tbl.SampleSeeded(50, SampleRandom, 42)
	b := tbl.SampleSeeded(50, SampleRandom, 43)

	same := true
	for i := range ids(a) {
		if ids(a)[i] != ids(b)[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical draws")
	}
}

func TestClampSampleN(t *testing.T) {
	cases := []struct {
		requested, floor, rows, want int
	}{
		{5000, 100, 10000, 5000},
		{50, 100, 10000, 100},   // below floor
		{20000, 100, 10000, 10000}, // above rows
		{500, 100, 80, 80},      // tiny table: floor collapses to rows
		{0, 100, 80, 80},
		{-3, 100, 10000, 100},
	}
	for _, tc := range cases {
		got := ClampSampleN(tc.requested, tc.floor, tc.rows)
		if got != tc.want {
			t.Errorf("ClampSampleN(%d, %d, %d) = %d, want %d",
				tc.requested, tc.floor, tc.rows, got, tc.want)
		}
	}
}
