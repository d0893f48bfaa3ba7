package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/files.schema.json
var schemaBytes []byte

const schemaName = "files.schema.json"

var printer = message.NewPrinter(language.English)

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
})

// keywordMessages replaces the generic schema wording for keywords whose
// meaning is specific to file lists.
var keywordMessages = map[string]string{
	"not":         "path must stay inside the package root",
	"pattern":     "must be a slash-separated relative path",
	"uniqueItems": "lists the same file twice",
	"minItems":    "must list at least one file",
}

// Issue is one schema violation in a manifest.
type Issue struct {
	// Field locates the offending value, e.g. "sources[3]" or
	// "artifacts.android[1]". Empty for the document itself.
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// InvalidError reports schema violations in a manifest.
type InvalidError struct {
	Issues []Issue
}

func (e *InvalidError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid manifest"
	}
	first := e.Issues[0].String()
	if len(e.Issues) == 1 {
		return "invalid manifest: " + first
	}
	return printer.Sprintf("invalid manifest: %s (and %d more issues)", first, len(e.Issues)-1)
}

// checkSchema validates a decoded YAML document against the embedded schema
// and returns the violations found. The error is reserved for a broken
// schema or an undecodable document.
func checkSchema(doc any) ([]Issue, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so numbers and maps take the shapes the
	// validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting manifest to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("converting manifest to JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}

	var issues []Issue
	seen := make(map[Issue]bool)
	collectIssues(ve, func(i Issue) {
		if !seen[i] {
			seen[i] = true
			issues = append(issues, i)
		}
	})
	if len(issues) == 0 {
		issues = []Issue{{Message: ve.Error()}}
	}
	return issues, nil
}

// collectIssues walks the error tree and reports its leaves. Wrapper
// keywords ($ref, allOf) only ever appear on inner nodes.
func collectIssues(ve *jsonschema.ValidationError, add func(Issue)) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, add)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}
	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 {
		return
	}

	msg, ok := keywordMessages[kw[len(kw)-1]]
	if !ok {
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	add(Issue{Field: fieldName(ve.InstanceLocation), Message: msg})
}

// fieldName renders an instance location as a YAML-style field reference:
// ["artifacts", "android", "1"] becomes "artifacts.android[1]".
func fieldName(loc []string) string {
	var b strings.Builder
	for _, seg := range loc {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
