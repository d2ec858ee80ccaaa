package words2num

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
	Input  string `json:"input"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

const goldenPath = "data/golden/words2num.json"

// evaluateGolden returns the value string or error message for tc.
func evaluateGolden(tc goldenCase) (value, errMsg string) {
	v, err := Evaluate(tc.Input, tc.Locale)
	if err != nil {
		return "", err.Error()
	}
	return v.String(), ""
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			value, errMsg := evaluateGolden(tc)
			if errMsg != tc.Error {
				t.Errorf("Evaluate(%q, %q) error = %q, want %q", tc.Input, tc.Locale, errMsg, tc.Error)
			}
			if value != tc.Value {
				t.Errorf("Evaluate(%q, %q) = %q, want %q", tc.Input, tc.Locale, value, tc.Value)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.Value, tc.Error = evaluateGolden(*tc)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/words2num.json")
}
