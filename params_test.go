package main

import "testing"

func TestParseRange(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    string
		want  ParamRange
		valid bool
	}{
		{name: "single", in: "8", want: ParamRange{8, 8}, valid: true},
		{name: "single_negative", in: "-5", want: ParamRange{-5, -5}, valid: true},
		{name: "single_padded", in: "  42\n", want: ParamRange{42, 42}, valid: true},
		{name: "range", in: "0-10", want: ParamRange{0, 10}, valid: true},
		{name: "range_spaces", in: "3 - 7", want: ParamRange{3, 7}, valid: true},
		{name: "range_degenerate", in: "4-4", want: ParamRange{4, 4}, valid: true},
		{name: "inverted", in: "10-0", valid: false},
		{name: "text", in: "abc", valid: false},
		{name: "empty", in: "", valid: false},
		{name: "three_parts", in: "1-2-3", valid: false},
		{name: "trailing_junk", in: "5x", valid: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.in)
			if tc.valid {
				if err != nil {
					t.Fatalf("ParseRange(%q): unexpected error %v", tc.in, err)
				}
				if got != tc.want {
					t.Fatalf("ParseRange(%q) = %+v, want %+v", tc.in, got, tc.want)
				}
			} else if err == nil {
				t.Fatalf("ParseRange(%q) = %+v, want error", tc.in, got)
			}
		})
	}
}

func TestEnumerateTriplesOrderAndCount(t *testing.T) {
	triples := EnumerateTriples(ParamRange{0, 1}, ParamRange{2, 3}, ParamRange{5, 6})

	want := []Triple{
		{0, 2, 5}, {0, 2, 6}, {0, 3, 5}, {0, 3, 6},
		{1, 2, 5}, {1, 2, 6}, {1, 3, 5}, {1, 3, 6},
	}
	if len(triples) != len(want) {
		t.Fatalf("got %d triples, want %d", len(triples), len(want))
	}
	for i := range want {
		if triples[i] != want[i] {
			t.Errorf("triples[%d] = %v, want %v (nested k -> a -> b order)", i, triples[i], want[i])
		}
	}
}

func TestEnumerateTriplesSingleton(t *testing.T) {
	triples := EnumerateTriples(ParamRange{2, 2}, ParamRange{5, 5}, ParamRange{5, 5})
	if len(triples) != 1 || triples[0] != (Triple{2, 5, 5}) {
		t.Fatalf("got %v, want exactly [{2 5 5}]", triples)
	}
	if got := triples[0].String(); got != "2_5_5" {
		t.Fatalf("Triple.String() = %q, want \"2_5_5\"", got)
	}
}
