package manifest

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestDefault(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	wantSources := []string{
		"src/ddk_ffi.ts",
		"src/ddk_ffi-ffi.ts",
		"src/NativeDdkRn.ts",
		"src/index.tsx",
		"cpp/ddk_ffi.hpp",
		"cpp/ddk_ffi.cpp",
		"cpp/bennyblader-ddk-rn.cpp",
		"cpp/bennyblader-ddk-rn.h",
	}
	if !reflect.DeepEqual(m.Sources, wantSources) {
		t.Errorf("Sources = %v, want %v", m.Sources, wantSources)
	}

	wantIOS := []string{"ios/DdkRn.xcframework/Info.plist"}
	if !reflect.DeepEqual(m.Artifacts.IOS, wantIOS) {
		t.Errorf("IOS = %v, want %v", m.Artifacts.IOS, wantIOS)
	}

	wantAndroid := []string{
		"android/src/main/arm64-v8a/libddk_ffi.a",
		"android/src/main/armeabi-v7a/libddk_ffi.a",
		"android/src/main/x86/libddk_ffi.a",
		"android/src/main/x86_64/libddk_ffi.a",
	}
	if !reflect.DeepEqual(m.Artifacts.Android, wantAndroid) {
		t.Errorf("Android = %v, want %v", m.Artifacts.Android, wantAndroid)
	}
}

func TestParseFile_Valid(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(m.Sources) != 1 || m.Sources[0] != "src/index.tsx" {
		t.Errorf("Sources = %v", m.Sources)
	}
	if len(m.Artifacts.IOS) != 0 {
		t.Errorf("IOS = %v, want empty", m.Artifacts.IOS)
	}
}

func TestParseFile_Invalid(t *testing.T) {
	tests := []struct {
		file      string
		wantField string
		wantMsg   string
	}{
		{"invalid-parent-path.yaml", "sources[0]", "inside the package root"},
		{"invalid-missing-artifacts.yaml", "", "artifacts"},
		{"invalid-empty-sources.yaml", "sources", "at least one file"},
		{"invalid-duplicate.yaml", "sources", "same file twice"},
		{"invalid-unknown-key.yaml", "artifacts", "web"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := ParseFile(testPath(tt.file))
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidError, got %T: %v", err, err)
			}
			if !hasIssue(invalid.Issues, tt.wantField, tt.wantMsg) {
				t.Errorf("no issue at %q mentioning %q in %v", tt.wantField, tt.wantMsg, invalid.Issues)
			}
		})
	}
}

func TestParse_ReportsNestedField(t *testing.T) {
	data := []byte(`sources:
  - src/index.tsx
artifacts:
  ios: []
  android:
    - android/src/main/x86/libddk_ffi.a
    - ../escape.a
`)
	_, err := Parse(data)
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidError, got %v", err)
	}
	if !hasIssue(invalid.Issues, "artifacts.android[1]", "inside the package root") {
		t.Errorf("issues = %v", invalid.Issues)
	}
	if !strings.HasPrefix(err.Error(), "invalid manifest: artifacts.android[1]: ") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func hasIssue(issues []Issue, field, msg string) bool {
	for _, i := range issues {
		if i.Field == field && strings.Contains(i.Message, msg) {
			return true
		}
	}
	return false
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		loc  []string
		want string
	}{
		{nil, ""},
		{[]string{"sources"}, "sources"},
		{[]string{"sources", "3"}, "sources[3]"},
		{[]string{"artifacts", "android", "1"}, "artifacts.android[1]"},
	}
	for _, tt := range tests {
		if got := fieldName(tt.loc); got != tt.want {
			t.Errorf("fieldName(%v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("sources: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestInvalidError_Message(t *testing.T) {
	single := &InvalidError{Issues: []Issue{{Field: "sources", Message: "must list at least one file"}}}
	if got := single.Error(); got != "invalid manifest: sources: must list at least one file" {
		t.Errorf("Error() = %q", got)
	}

	multi := &InvalidError{Issues: []Issue{{Message: "a"}, {Message: "b"}, {Message: "c"}}}
	if got := multi.Error(); got != "invalid manifest: a (and 2 more issues)" {
		t.Errorf("Error() = %q", got)
	}
}
