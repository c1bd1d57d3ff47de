package jsontext

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonlens/jsonlens/internal/jsonpath"
)

const sampleDoc = `{
  // service settings
  "name": "edge-cache",
  "port": 8080,
  "tags": ["fast", "beta"],
  "limits": {
    "rps": 100, /* hand tuned */
    "burst": 250,
  },
}`

func TestApplyPathEditReplacesScalarOnly(t *testing.T) {
	out, err := ApplyPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("port")}, json.Number("9090"))
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(sampleDoc, "8080", "9090", 1), out)
	// comments and trailing commas stay byte-for-byte
	assert.Contains(t, out, "// service settings")
	assert.Contains(t, out, "/* hand tuned */")
	assert.Contains(t, out, "\"burst\": 250,\n")
}

func TestApplyPathEditNestedAndIndexed(t *testing.T) {
	out, err := ApplyPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("rps")}, json.Number("500"))
	require.NoError(t, err)
	assert.Contains(t, out, `"rps": 500, /* hand tuned */`)

	out, err = ApplyPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("tags"), jsonpath.Index(1)}, "stable")
	require.NoError(t, err)
	assert.Contains(t, out, `["fast", "stable"]`)
}

func TestApplyPathEditRoundTrip(t *testing.T) {
	p := jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("burst")}
	out, err := ApplyPathEdit(sampleDoc, p, json.Number("999"))
	require.NoError(t, err)
	got, err := Value([]byte(out), p)
	require.NoError(t, err)
	assert.Equal(t, json.Number("999"), got)
}

func TestApplyPathEditStringValueIsQuoted(t *testing.T) {
	out, err := ApplyPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("name")}, "core")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "core",`)
}

func TestApplyPathEditMissingPathLeavesDocumentUntouched(t *testing.T) {
	p := jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("rps"), jsonpath.Key("gone")}
	out, err := ApplyPathEdit(sampleDoc, p, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	var perr *PatchError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, sampleDoc, out)
}

func TestApplyPathEditMissingFinalKeyFails(t *testing.T) {
	p := jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("ceil")}
	out, err := ApplyPathEdit(sampleDoc, p, json.Number("300"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Equal(t, sampleDoc, out)
}

func TestApplyPathEditRootValue(t *testing.T) {
	out, err := ApplyPathEdit("// header\n42\n", nil, json.Number("7"))
	require.NoError(t, err)
	assert.Equal(t, "// header\n7\n", out)
}

func TestUpsertPathEditInsertsMissingFinalKey(t *testing.T) {
	out, err := UpsertPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("ceil")}, json.Number("300"))
	require.NoError(t, err)
	got, err := Value([]byte(out), jsonpath.Path{jsonpath.Key("limits"), jsonpath.Key("ceil")})
	require.NoError(t, err)
	assert.Equal(t, json.Number("300"), got)
	// existing members keep their bytes
	assert.Contains(t, out, `"rps": 100, /* hand tuned */`)
}

func TestUpsertPathEditReplacesExistingValue(t *testing.T) {
	out, err := UpsertPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("port")}, json.Number("9090"))
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(sampleDoc, "8080", "9090", 1), out)
}

func TestUpsertPathEditAppendsAtArrayLength(t *testing.T) {
	out, err := UpsertPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("tags"), jsonpath.Index(2)}, "lts")
	require.NoError(t, err)
	assert.Contains(t, out, `["fast", "beta", "lts"]`)

	_, err = UpsertPathEdit(sampleDoc, jsonpath.Path{jsonpath.Key("tags"), jsonpath.Index(5)}, "x")
	assert.ErrorIs(t, err, ErrBadIndex)
}

func TestUpsertPathEditMissingParentFails(t *testing.T) {
	p := jsonpath.Path{jsonpath.Key("gone"), jsonpath.Key("deep")}
	out, err := UpsertPathEdit(sampleDoc, p, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Equal(t, sampleDoc, out)
}

func TestUpsertPathEditEmptyDocument(t *testing.T) {
	out, err := UpsertPathEdit("", nil, map[string]any{"a": 1.0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, out)
}

func TestUpsertPathEditInsertIntoEmptyContainer(t *testing.T) {
	out, err := UpsertPathEdit(`{"meta": {}}`, jsonpath.Path{jsonpath.Key("meta"), jsonpath.Key("v")}, json.Number("1"))
	require.NoError(t, err)
	assert.Equal(t, `{"meta": { "v": 1 }}`, out)
}

func TestUpsertPathEditInsertIndentsMultilineObjects(t *testing.T) {
	doc := "{\n  \"a\": 1\n}"
	out, err := UpsertPathEdit(doc, jsonpath.Path{jsonpath.Key("b")}, json.Number("2"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}", out)
}

func TestApplyPathEditEncodesContainersWithTwoSpaceIndent(t *testing.T) {
	doc := "{\n  \"a\": 1\n}"
	out, err := ApplyPathEdit(doc, jsonpath.Path{jsonpath.Key("a")}, map[string]any{"x": 1.0})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"x\": 1\n  }\n}", out)
}

func TestApplyPathEditAgreesWithJSONPatchReplace(t *testing.T) {
	doc := `{"a": {"b": [1, 2, 3]}, "c": "s"}`
	cases := []struct {
		path    jsonpath.Path
		pointer string
		value   any
	}{
		{jsonpath.Path{jsonpath.Key("a"), jsonpath.Key("b"), jsonpath.Index(1)}, "/a/b/1", 42.0},
		{jsonpath.Path{jsonpath.Key("c")}, "/c", "t"},
		{jsonpath.Path{jsonpath.Key("a")}, "/a", map[string]any{"z": true}},
	}
	for _, tc := range cases {
		surgical, err := ApplyPathEdit(doc, tc.path, tc.value)
		require.NoError(t, err, tc.pointer)

		vb, err := json.Marshal(tc.value)
		require.NoError(t, err)
		op := fmt.Sprintf(`[{"op":"replace","path":%q,"value":%s}]`, tc.pointer, vb)
		patch, err := jsonpatch.DecodePatch([]byte(op))
		require.NoError(t, err)
		structural, err := patch.Apply([]byte(doc))
		require.NoError(t, err)

		assert.True(t, jsonpatch.Equal([]byte(surgical), structural),
			"path %s: %s vs %s", tc.pointer, surgical, structural)
	}
}
