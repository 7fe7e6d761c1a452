// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aggregate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/ingest"
)

// run ingests files through a fresh registry holding subs.
func run(t *testing.T, sources []ingest.Source, subs ...*ingest.Subscriber) {
	t.Helper()
	reg := ingest.NewRegistry()
	for _, s := range subs {
		reg.Register(s)
	}
	require.NoError(t, ingest.NewDriver(reg).ParseFiles(context.Background(), sources))
}

func src(name, data string, groups ...int) ingest.Source {
	return ingest.Source{File: ingest.Bytes(name, []byte(data)), Groups: groups}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{" 1.5 ", 1.5, true},
		{"-3e2", -300, true},
		{"12ms", 0.012, true},
		{"2m", 120, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in, nil)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, tt.in)
	}
}

func TestParseValueCustom(t *testing.T) {
	onOff := func(s string) (float64, error) {
		switch s {
		case "on":
			return 1, nil
		case "off":
			return 0, nil
		}
		return 0, errors.New("not on or off")
	}
	v, err := ParseValue("on", []ValueParser{onOff})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = ParseValue("12", []ValueParser{onOff})
	assert.Error(t, err)

	v, ok := Column{Index: 0, Parsers: []ValueParser{onOff}}.Value([]string{"off"})
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestColumnValue(t *testing.T) {
	row := []string{"a", "7"}
	v, ok := Col(1).Value(row)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = Col(0).Value(row)
	assert.False(t, ok)
	_, ok = Col(2).Value(row)
	assert.False(t, ok)
	_, ok = Col(-1).Value(row)
	assert.False(t, ok)
}

func TestHistogram(t *testing.T) {
	h := NewHistogram(4, 8)
	for _, v := range []float64{0, 1, 2, 3.9, 7.99, 8, -1, 8.5, math.NaN()} {
		h.Add(v)
	}
	assert.Equal(t, []int{2, 2, 0, 2}, h.Counts())
	assert.Equal(t, 3, h.Dropped)
	assert.Equal(t, 2, h.MaxCount())
	assert.Equal(t, 6, h.Total())
	assert.Equal(t, 4, h.NumBins())

	counts := h.Counts()
	counts[0] = 100
	assert.Equal(t, 2, h.Counts()[0], "Counts aliases internal state")
}

func TestHistogramZeroMax(t *testing.T) {
	h := NewHistogram(3, 0)
	h.Add(0)
	h.Add(1)
	assert.Equal(t, []int{1, 0, 0}, h.Counts())
	assert.Equal(t, 1, h.Dropped)

	empty := NewHistogram(0, 10)
	empty.Add(1)
	assert.Empty(t, empty.Counts())
	assert.Equal(t, 1, empty.Dropped)
}

func TestHistogramSubscriber(t *testing.T) {
	h := NewHistogram(2, 10)
	run(t, []ingest.Source{
		src("a.csv", "x,1\ny,6\nz,bad\n"),
		src("b.csv", "w,9\nshort\n"),
	}, h.Subscriber(Col(1)))

	assert.Equal(t, []int{1, 2}, h.Counts())
	assert.Equal(t, 2, h.Skipped)
}

func TestSkipHeader(t *testing.T) {
	h := NewHistogram(2, 10)
	started := 0
	s := h.Subscriber(Col(0))
	s.OnFileStart = func(context.Context, *ingest.File, []int) error {
		started++
		return nil
	}
	run(t, []ingest.Source{
		src("a.csv", "latency\n1\n2\n"),
		src("b.csv", "latency\n9\n"),
	}, SkipHeader(s))

	assert.Equal(t, []int{2, 1}, h.Counts())
	assert.Zero(t, h.Skipped)
	assert.Equal(t, 2, started)
}

func TestBins(t *testing.T) {
	b := NewBins(2, 10)
	run(t, []ingest.Source{
		src("a.csv", "1,4\n2,6\n7,10\n11,1\nx,1\n"),
	}, b.Subscriber(Col(0), Col(1)))

	assert.Equal(t, []float64{10, 10}, b.Sums)
	assert.Equal(t, []int{2, 1}, b.Counts)
	assert.Equal(t, 1, b.Dropped)
	assert.Equal(t, 1, b.Skipped)
	assert.Equal(t, 10.0, b.MaxMean())
	assert.Equal(t, []float64{5, 10}, chart.BinMeans(b.Sums, b.Counts))
}

func TestBinsEmpty(t *testing.T) {
	b := NewBins(3, 1)
	assert.Zero(t, b.MaxMean())
	assert.Equal(t, 3, b.NumBins())
	assert.Empty(t, NewBins(-1, 1).Sums)
}

func TestScatter(t *testing.T) {
	s := NewScatter("size", "latency")
	run(t, []ingest.Source{
		src("a.csv", "3,0.5\n1,2\nbad,1\n"),
	}, s.Subscriber(Col(0), Col(1)))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, []chart.DataPoint{
		{"size": 3, "latency": 0.5},
		{"size": 1, "latency": 2},
	}, s.Points())
	x, y := s.Max()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 2.0, y)

	tab := s.Table()
	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, []float64{3, 1}, tab.Column("size"))
	pts, err := chart.PointsFromTable(tab, "size", "latency")
	require.NoError(t, err)
	assert.Equal(t, s.Points(), pts)
}

func TestScatterMaxIgnoresInf(t *testing.T) {
	s := NewScatter("x", "y")
	s.Add(math.Inf(1), -1)
	s.Add(2, math.Inf(1))
	x, y := s.Max()
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 0.0, y)
}

func TestGrouped(t *testing.T) {
	g := NewGrouped(2, 10)
	run(t, []ingest.Source{
		src("a.csv", "1\n6\n", 3),
		src("b.csv", "2\n", 1, 3),
		src("c.csv", "9\nbad\n"),
	}, g.Subscriber(Col(0)))

	assert.Equal(t, []int{3, 1, DefaultGroup}, g.Groups)
	assert.Equal(t, []int{2, 1}, g.Histogram(3).Counts())
	assert.Equal(t, []int{1, 0}, g.Histogram(1).Counts())
	assert.Equal(t, []int{0, 1}, g.Histogram(DefaultGroup).Counts())
	assert.Equal(t, 2, g.MaxCount())
	assert.Equal(t, 1, g.Skipped)
}

func TestSummary(t *testing.T) {
	var s Summary
	run(t, []ingest.Source{
		src("a.csv", "4\n1\n3\n2\nx\n"),
	}, s.Subscriber(Col(0)))

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.Skipped)
	min, max := s.Bounds()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 4.0, max)
	assert.Equal(t, 2.5, s.Mean())
	assert.InDelta(t, 2.5, s.Median(), 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3), s.StdDev(), 1e-9)
	assert.Contains(t, s.String(), "n=4 min=1 max=4 mean=2.5")
}

func TestSummaryEmpty(t *testing.T) {
	var s Summary
	assert.True(t, math.IsNaN(s.Median()))
	assert.Equal(t, "n=0", s.String())
}

func TestMaxFromTail(t *testing.T) {
	f := ingest.Bytes("a.csv", []byte("t,v\n1,a\n5,b\n12,c\n\n"))
	v, err := MaxFromTail(f, Col(0), nil)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	_, err = MaxFromTail(f, Col(1), nil)
	assert.ErrorContains(t, err, "a.csv")

	_, err = MaxFromTail(ingest.Bytes("e.csv", nil), Col(0), nil)
	assert.ErrorContains(t, err, "empty")
}

func TestTailMax(t *testing.T) {
	tm := &TailMax{Col: Col(0)}
	h := NewHistogram(2, 100)
	run(t, []ingest.Source{
		src("a.csv", "1\n30\n"),
		src("b.csv", "2\n70\n"),
		src("c.csv", "x\n"),
		src("d.csv", "3\n50\n"),
	}, tm.Subscriber(), h.Subscriber(Col(0)))

	assert.True(t, tm.Found)
	assert.Equal(t, 70.0, tm.Max)
	assert.Equal(t, 6, h.Total())
}
