package snapshot

import (
	"encoding/json"
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateEnv is the environment variable that rewrites every snapshot instead of comparing it
const UpdateEnv = "UPDATE_SNAPSHOTS"

var callCount = make(map[string]int)

// Validate compares obj, as indented JSON, with testdata/<test name>-<n>.json
// n counts the calls within the same test. A missing snapshot file is written
// and the comparison passes.
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	call := callCount[name]
	callCount[name] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) != "" {
		write(t, filename, objJSON)
		return
	} else if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s, run with %s=1 to update", filename, UpdateEnv)
	}
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatal(err)
	}
}
