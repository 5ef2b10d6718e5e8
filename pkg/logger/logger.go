package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

type LogLevel string

const (
	DEBUG LogLevel = "DEBUG"
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

var levelRank = map[LogLevel]int{DEBUG: 0, INFO: 1, WARN: 2, ERROR: 3}

type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	json    bool
	out     io.Writer
	context map[string]string
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init configures the process-wide logger. A nil out discards output,
// which keeps tests quiet.
func Init(level LogLevel, jsonFormat bool, out io.Writer) {
	if out == nil {
		out = io.Discard
	}
	if _, ok := levelRank[level]; !ok {
		level = INFO
	}
	defaultLogger = &Logger{
		level:   level,
		json:    jsonFormat,
		out:     out,
		context: map[string]string{},
	}
}

func GetLogger() *Logger {
	once.Do(func() {
		if defaultLogger == nil {
			Init(INFO, false, os.Stdout)
		}
	})
	return defaultLogger
}

// WithContext returns a logger that stamps every record with the given pair.
func (l *Logger) WithContext(key, value string) *Logger {
	ctx := make(map[string]string, len(l.context)+1)
	for k, v := range l.context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Logger{level: l.level, json: l.json, out: l.out, context: ctx}
}

func (l *Logger) Debug(event string, kv ...string) { l.log(DEBUG, event, kv...) }
func (l *Logger) Info(event string, kv ...string)  { l.log(INFO, event, kv...) }
func (l *Logger) Warn(event string, kv ...string)  { l.log(WARN, event, kv...) }
func (l *Logger) Error(event string, kv ...string) { l.log(ERROR, event, kv...) }

func (l *Logger) log(level LogLevel, event string, kv ...string) {
	if levelRank[level] < levelRank[l.level] {
		return
	}

	fields := map[string]string{}
	for k, v := range l.context {
		fields[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().UTC().Format(time.RFC3339)
	if l.json {
		record := map[string]string{"ts": ts, "level": string(level), "event": event}
		for k, v := range fields {
			record[k] = v
		}
		b, err := json.Marshal(record)
		if err != nil {
			return
		}
		fmt.Fprintln(l.out, string(b))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", ts, level, event)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%s", k, fields[k])
	}
	fmt.Fprintln(l.out, sb.String())
}
