package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextOutputMergesContextAndPairs(t *testing.T) {
	var buf bytes.Buffer
	Init(DEBUG, false, &buf)
	log := GetLogger().WithContext("component", "api")

	log.Info("request_handled", "component", "api_v2", "status", "200")

	line := strings.TrimSpace(buf.String())
	if strings.Count(line, "component=") != 1 {
		t.Errorf("context key should appear exactly once, got %q", line)
	}
	if !strings.Contains(line, "component=api_v2") {
		t.Errorf("record pair should win over the context value, got %q", line)
	}
	if !strings.Contains(line, "status=200") {
		t.Errorf("missing record pair in %q", line)
	}
}

func TestJSONOutputIncludesContext(t *testing.T) {
	var buf bytes.Buffer
	Init(INFO, true, &buf)
	log := GetLogger().WithContext("component", "worker")

	log.Info("job_done", "id", "7")

	var record map[string]string
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record["event"] != "job_done" || record["component"] != "worker" || record["id"] != "7" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(WARN, false, &buf)
	log := GetLogger()

	log.Info("suppressed_event")
	log.Warn("kept_event")

	out := buf.String()
	if strings.Contains(out, "suppressed_event") {
		t.Error("INFO records should be filtered at WARN level")
	}
	if !strings.Contains(out, "kept_event") {
		t.Error("WARN records should pass at WARN level")
	}
}
