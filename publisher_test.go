// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glass

import "testing"

func TestPublisher_Dedup(t *testing.T) {
	var p publisher

	p.publishBlur(2)
	p.publishBlur(2)
	p.publishFilter(FilterNone)
	p.publishFilter(FilterNone)
	if got := p.take(); len(got) != 2 {
		t.Fatalf("writes = %v, want 2", got)
	}
	if got := p.take(); len(got) != 0 {
		t.Fatalf("take() after drain = %v, want empty", got)
	}

	p.publishBlur(2)
	p.publishBlur(2.5)
	p.publishFilter(`url("x#a")`)
	got := p.take()
	want := []property{{PropertyBlur, "2.5px"}, {PropertyFilter, `url("x#a")`}}
	if len(got) != len(want) {
		t.Fatalf("writes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("write %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPublisher_BlurFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0px"},
		{2, "2px"},
		{0.75, "0.75px"},
		{12.125, "12.125px"},
	}
	for _, tt := range tests {
		var p publisher
		p.publishBlur(tt.in)
		got := p.take()
		if len(got) != 1 || got[0].value != tt.want {
			t.Errorf("publishBlur(%v) wrote %v, want %q", tt.in, got, tt.want)
		}
	}
}
