package logtail

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded line of the JSON log.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Message string
	Fields  map[string]string
	Raw     string
}

// reserved keys are emitted by the JSON encoder itself.
var reserved = map[string]struct{}{
	"ts": {}, "level": {}, "logger": {}, "msg": {}, "caller": {}, "stacktrace": {},
}

// Parse decodes a JSON log line. Lines that are not JSON objects come back
// with only Raw and Message set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Message: strings.TrimSpace(line)}
	trimmed := bytes.TrimSpace([]byte(line))
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entry
	}
	var payload map[string]any
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return entry
	}

	entry.Time = stringValue(payload["ts"])
	entry.Level = strings.ToLower(stringValue(payload["level"]))
	entry.Logger = stringValue(payload["logger"])
	entry.Message = stringValue(payload["msg"])
	for key, value := range payload {
		if _, skip := reserved[key]; skip {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]string)
		}
		entry.Fields[key] = stringValue(value)
	}
	return entry
}

// Tail reads and parses the last maxLines entries of the log at path.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Format renders an entry on a single line: clock, level, logger, message
// and fields sorted by key.
func (e Entry) Format() string {
	if e.Level == "" && e.Time == "" {
		return e.Message
	}
	var b strings.Builder
	if clock := shortTime(e.Time); clock != "" {
		b.WriteString(clock)
		b.WriteByte(' ')
	}
	b.WriteString(fmt.Sprintf("%-5s", strings.ToUpper(e.Level)))
	if e.Logger != "" {
		b.WriteString(" [")
		b.WriteString(e.Logger)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(e.Fields[key])
	}
	return b.String()
}

// shortTime keeps the HH:MM:SS part of an ISO8601 timestamp.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		buf, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(buf)
	}
}
