package util

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{
			name: "single value",
			spec: "5",
			want: []int{5},
		},
		{
			name: "simple range",
			spec: "1-5",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "comma separated",
			spec: "1,3,5",
			want: []int{1, 3, 5},
		},
		{
			name: "mixed",
			spec: "2-10,20,55-60",
			want: []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 55, 56, 57, 58, 59, 60},
		},
		{
			name: "with spaces",
			spec: "1 - 3, 5",
			want: []int{1, 2, 3, 5},
		},
		{
			name: "overlapping ranges deduplicated",
			spec: "1-3,2-4",
			want: []int{1, 2, 3, 4},
		},
		{
			name: "unsorted input sorted",
			spec: "20,5,10-12",
			want: []int{5, 10, 11, 12, 20},
		},
		{
			name: "none sentinel yields empty",
			spec: "none",
			want: nil,
		},
		{
			name: "none stops parsing, keeps prior tokens",
			spec: "1-3,none,7-9",
			want: []int{1, 2, 3},
		},
		{
			name: "empty string",
			spec: "",
			want: nil,
		},
		{
			name:    "start greater than end",
			spec:    "5-1",
			wantErr: true,
		},
		{
			name:    "not a number",
			spec:    "abc",
			wantErr: true,
		},
		{
			name:    "bad token among good ones",
			spec:    "1,2,x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandRange(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrBadFormat) {
					t.Errorf("ExpandRange(%q) error %v does not wrap ErrBadFormat", tt.spec, err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandRange(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestExpandRangeAscending(t *testing.T) {
	got, err := ExpandRange("40,1-3,2,9")
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("result not strictly ascending: %v", got)
		}
	}
}

func TestCompactRange(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name:   "empty",
			values: nil,
			want:   "",
		},
		{
			name:   "single",
			values: []int{5},
			want:   "5",
		},
		{
			name:   "contiguous",
			values: []int{1, 2, 3},
			want:   "1-3",
		},
		{
			name:   "mixed",
			values: []int{1, 2, 3, 5, 7, 8, 9},
			want:   "1-3,5,7-9",
		},
		{
			name:   "unsorted with duplicates",
			values: []int{9, 7, 8, 8, 1},
			want:   "1,7-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactRange(tt.values); got != tt.want {
				t.Errorf("CompactRange(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestCompactRangeRoundTrip(t *testing.T) {
	spec := "2-10,20,55-60"
	vlans, err := ExpandRange(spec)
	if err != nil {
		t.Fatal(err)
	}
	if got := CompactRange(vlans); got != spec {
		t.Errorf("round trip of %q = %q", spec, got)
	}
}

func TestExpandVLANRange(t *testing.T) {
	if _, err := ExpandVLANRange("100-4095"); err == nil {
		t.Error("expected error for VLAN ID above 4094")
	}
	if _, err := ExpandVLANRange("0-5"); err == nil {
		t.Error("expected error for VLAN ID 0")
	}
	got, err := ExpandVLANRange("100-102")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{100, 101, 102}) {
		t.Errorf("ExpandVLANRange = %v", got)
	}
}
