package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// Tail returns at most n lines from the end of the log file at path. A
// missing file has no lines.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	// ring holds the last n lines; next is where the following line goes
	ring := make([]string, 0, n)
	next := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[next] = scanner.Text()
		next = (next + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	return append(ring[next:], ring[:next]...), nil
}
