package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTail(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), FileName)

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("2024/06/01 12:00:%02d save document: attempt %d", i, i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"partial", 3, all[7:]},
		{"exact", 10, all},
		{"more than exists", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(logPath, tt.n)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "none.log"), 5)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Tail() = %v, want no lines", got)
	}
}
