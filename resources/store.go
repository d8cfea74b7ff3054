// Package resources provides the string-resource catalog: a lookup table
// from message IDs to format strings, with optional YAML overrides so
// deployments can reword diagnostics without a rebuild.
package resources

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Message IDs used by the front-end
const (
	MsgStdinInitFailed     = "stdin.init.failed"
	MsgStdinShutdownFailed = "stdin.shutdown.failed"
	MsgStdinReadFailed     = "stdin.read.failed"
	MsgStdinPollFailed     = "stdin.poll.failed"
	MsgLogInitFailed       = "log.init.failed"
	MsgResourcesInitFailed = "resources.init.failed"
	MsgCmdUnknown          = "cmd.unknown"
)

var defaults = map[string]string{
	MsgStdinInitFailed:     "Unable to initialize the stdin handler: %s",
	MsgStdinShutdownFailed: "Unable to shut down the stdin handler cleanly: %s",
	MsgStdinReadFailed:     "Reading from stdin failed: %s",
	MsgStdinPollFailed:     "Polling stdin for input failed: %s",
	MsgLogInitFailed:       "The log facility failed to start: %s",
	MsgResourcesInitFailed: "The resource catalog failed to load: %s",
	MsgCmdUnknown:          "Unknown command: %s. Type 'help' for available commands.",
}

// Store is the message catalog. The zero value is not usable; create
// one with NewStore.
type Store struct {
	overrides map[string]string
	path      string
	mu        sync.RWMutex
}

// NewStore creates a catalog serving the built-in messages. If path is
// non-empty, Load will merge overrides from that YAML file.
func NewStore(path string) *Store {
	return &Store{
		overrides: make(map[string]string),
		path:      path,
	}
}

// Load reads the override file if one is configured. A missing or
// unparsable file is an error; no override file configured is not.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read resource catalog: %w", err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse resource catalog: %w", err)
	}

	s.overrides = overrides
	return nil
}

// Unload drops any loaded overrides, reverting to the built-in messages
func (s *Store) Unload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]string)
	return nil
}

// Lookup returns the format string for id and whether it is known
func (s *Store) Lookup(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if msg, ok := s.overrides[id]; ok {
		return msg, true
	}
	msg, ok := defaults[id]
	return msg, ok
}

// Format renders the message for id with the given arguments. An
// unknown id falls back to the raw id so diagnostics degrade instead
// of disappearing.
func (s *Store) Format(id string, v ...interface{}) string {
	msg, ok := s.Lookup(id)
	if !ok {
		msg = id
	}
	if len(v) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, v...)
}
