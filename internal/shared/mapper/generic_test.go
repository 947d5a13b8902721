package mapper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type testRecord struct {
	ID    int
	Value int
}

type testView struct {
	Label string
}

// =============================================================================
// MapSlice Tests
// =============================================================================

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{
			name:  "nil input returns nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "empty slice returns empty slice",
			input: []int{},
			want:  []string{},
		},
		{
			name:  "maps all elements in order",
			input: []int{1, 2, 3},
			want:  []string{"num_1", "num_2", "num_3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, func(i int) string { return fmt.Sprintf("num_%d", i) })

			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// =============================================================================
// MapSliceWithError Tests
// =============================================================================

func TestMapSliceWithError(t *testing.T) {
	tests := []struct {
		name        string
		input       []int
		mapFunc     func(int) (string, error)
		want        []string
		wantErr     bool
		errContains string
	}{
		{
			name:    "nil input returns nil",
			input:   nil,
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("%d", i), nil },
			want:    nil,
		},
		{
			name:    "successful mapping",
			input:   []int{1, 2, 3},
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("num_%d", i), nil },
			want:    []string{"num_1", "num_2", "num_3"},
		},
		{
			name:  "middle element returns error",
			input: []int{1, 2, 3, 4, 5},
			mapFunc: func(i int) (string, error) {
				if i == 3 {
					return "", errors.New("error at element 3")
				}
				return fmt.Sprintf("num_%d", i), nil
			},
			wantErr:     true,
			errContains: "error at element 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, tt.mapFunc)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				if got != nil {
					t.Errorf("expected nil result on error, got %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// =============================================================================
// MapSlicePtrWithID Tests
// =============================================================================

func TestMapSlicePtrWithID(t *testing.T) {
	mapFunc := func(r *testRecord) (*testView, error) {
		if r.Value < 0 {
			return nil, errors.New("negative value")
		}
		if r.Value == 0 {
			return nil, nil
		}
		return &testView{Label: fmt.Sprintf("v%d", r.Value)}, nil
	}
	getID := func(r *testRecord) int { return r.ID }

	t.Run("skips nil inputs and nil outputs", func(t *testing.T) {
		input := []*testRecord{
			{ID: 1, Value: 1},
			nil,
			{ID: 2, Value: 0},
			{ID: 3, Value: 3},
		}

		got, err := MapSlicePtrWithID(input, mapFunc, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 results, got %d", len(got))
		}
		if got[0].Label != "v1" || got[1].Label != "v3" {
			t.Errorf("unexpected results: %v, %v", got[0], got[1])
		}
	})

	t.Run("error includes item ID", func(t *testing.T) {
		input := []*testRecord{{ID: 42, Value: -1}}

		_, err := MapSlicePtrWithID(input, mapFunc, getID)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "42") {
			t.Errorf("error %q does not mention the item ID", err.Error())
		}
	})

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID(nil, mapFunc, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
