package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestPrompterRangesRecoversFromBadInput(t *testing.T) {
	in := "garbage\n10-0\n0-10\n-3\n1-2\n"
	var out bytes.Buffer
	p := &Prompter{In: bufio.NewReader(strings.NewReader(in)), Out: &out}

	times, aRange, bRange, err := p.Ranges()
	if err != nil {
		t.Fatalf("Ranges: %v", err)
	}
	if times != (ParamRange{0, 10}) {
		t.Errorf("times = %+v, want {0 10} after two rejected attempts", times)
	}
	if aRange != (ParamRange{-3, -3}) {
		t.Errorf("a = %+v, want {-3 -3}", aRange)
	}
	if bRange != (ParamRange{1, 2}) {
		t.Errorf("b = %+v, want {1 2}", bRange)
	}
	if !strings.Contains(out.String(), "bad format") {
		t.Errorf("rejected input must be answered with a format hint, got %q", out.String())
	}
}

func TestPrompterRejectsNegativeIterations(t *testing.T) {
	in := "-4\n6\n"
	var out bytes.Buffer
	p := &Prompter{In: bufio.NewReader(strings.NewReader(in)), Out: &out}

	r, err := p.promptRange("k: ", false)
	if err != nil {
		t.Fatalf("promptRange: %v", err)
	}
	if r != (ParamRange{6, 6}) {
		t.Fatalf("got %+v, want {6 6} after the negative count was rejected", r)
	}
	if !strings.Contains(out.String(), "non-negative") {
		t.Errorf("missing rejection message in %q", out.String())
	}
}

func TestPrompterExhaustedInput(t *testing.T) {
	p := &Prompter{In: bufio.NewReader(strings.NewReader("")), Out: &bytes.Buffer{}}
	if _, err := p.promptRange("k: ", true); err == nil {
		t.Fatalf("want error when input ends before a valid range")
	}
}

func TestCleanPathInput(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"  /tmp/a.png \n", "/tmp/a.png"},
		{`"/tmp/with space.png"`, "/tmp/with space.png"},
		{"'/tmp/q.png'", "/tmp/q.png"},
		{`C:\Users\me\img.png`, "C:/Users/me/img.png"},
		{"plain.png", "plain.png"},
	} {
		if got := CleanPathInput(tc.in); got != tc.want {
			t.Errorf("CleanPathInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
