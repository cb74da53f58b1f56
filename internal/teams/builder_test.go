package teams

import (
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/Iron-Ham/hrkit/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "P" + strconv.Itoa(i+1)
	}
	return out
}

func TestBuild_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		size      int
		wantSizes []int
	}{
		{"even split", 6, 3, []int{3, 3}},
		{"remainder in last team", 7, 3, []int{3, 3, 1}},
		{"pairs", 5, 2, []int{2, 2, 1}},
		{"size equals list", 4, 4, []int{4}},
		{"size above list clamps", 3, 10, []int{3}},
		{"two names", 2, 2, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := names(tt.n)
			p, err := Build(input, tt.size, newRand())
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			var sizes []int
			for i, team := range p {
				if team.ID != i+1 {
					t.Errorf("team %d has ID %d", i, team.ID)
				}
				sizes = append(sizes, len(team.Members))
			}
			if diff := cmp.Diff(tt.wantSizes, sizes); diff != "" {
				t.Errorf("team sizes mismatch (-want +got):\n%s", diff)
			}

			got := p.Members()
			slices.Sort(got)
			want := slices.Clone(input)
			slices.Sort(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("partition is not a permutation of the input (-want +got):\n%s", diff)
			}
			if p.Len() != tt.n {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.n)
			}
			if TeamCount(tt.n, tt.size) != len(p) {
				t.Errorf("TeamCount(%d, %d) = %d, want %d", tt.n, tt.size, TeamCount(tt.n, tt.size), len(p))
			}
		})
	}
}

func TestBuild_KeepsDuplicates(t *testing.T) {
	input := []string{"A", "A", "B", "C"}
	p, err := Build(input, 2, newRand())
	if err != nil {
		t.Fatal(err)
	}
	got := p.Members()
	slices.Sort(got)
	if diff := cmp.Diff([]string{"A", "A", "B", "C"}, got); diff != "" {
		t.Errorf("duplicates must be kept (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyList(t *testing.T) {
	p, err := Build(nil, 3, newRand())
	if err != nil {
		t.Fatalf("Build(nil) error = %v", err)
	}
	if len(p) != 0 {
		t.Errorf("Build(nil) = %v, want empty partition", p)
	}
}

func TestBuild_InvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		_, err := Build(names(4), size, newRand())
		if !errors.Is(err, errors.ErrInvalidTeamSize) {
			t.Errorf("Build(size=%d) error = %v, want ErrInvalidTeamSize", size, err)
		}
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Build(size=%d) error should be a validation error", size)
		}
	}
}

func TestBuild_DoesNotModifyInput(t *testing.T) {
	input := names(8)
	orig := slices.Clone(input)
	if _, err := Build(input, 3, newRand()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig, input); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, _ := Build(names(10), 3, rand.New(rand.NewSource(7)))
	b, _ := Build(names(10), 3, rand.New(rand.NewSource(7)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different partitions (-a +b):\n%s", diff)
	}
}

// Every name should land in the first slot about equally often.
func TestBuild_Uniform(t *testing.T) {
	input := []string{"A", "B", "C", "D"}
	rng := newRand()
	counts := make(map[string]int)
	const runs = 8000

	for i := 0; i < runs; i++ {
		p, err := Build(input, 2, rng)
		if err != nil {
			t.Fatal(err)
		}
		counts[p[0].Members[0]]++
	}

	expected := runs / len(input)
	for _, name := range input {
		if got := counts[name]; got < expected*8/10 || got > expected*12/10 {
			t.Errorf("%s first %d times, want about %d", name, got, expected)
		}
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		size, n, want int
	}{
		{3, 10, 3},
		{1, 10, 2},
		{12, 10, 10},
		{5, 0, 2},
		{5, 1, 2},
		{2, 2, 2},
	}

	for _, tt := range tests {
		if got := ClampSize(tt.size, tt.n); got != tt.want {
			t.Errorf("ClampSize(%d, %d) = %d, want %d", tt.size, tt.n, got, tt.want)
		}
	}
}

func TestTeamCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 3, 0},
		{7, 3, 3},
		{6, 3, 2},
		{3, 10, 1},
		{5, 1, 0},
	}

	for _, tt := range tests {
		if got := TeamCount(tt.n, tt.size); got != tt.want {
			t.Errorf("TeamCount(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	p := Partition{
		{ID: 1, Members: []string{"Alice", "Bob"}},
		{ID: 2, Members: []string{"Carol"}},
	}

	var sb strings.Builder
	RenderTable(&sb, p)
	out := sb.String()

	for _, want := range []string{"GROUP ID", "MEMBER NAME", "Alice", "Bob", "Carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
