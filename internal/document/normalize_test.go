package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyRowsIsEmptyObject(t *testing.T) {
	assert.Equal(t, "{}", Normalize(nil))
	assert.Equal(t, "{}", Normalize([]Row{}))
}

func TestNormalizeSingleKeylessRowIsBareValue(t *testing.T) {
	assert.Equal(t, "5", Normalize([]Row{BareRow(json.Number("5"))}))
	assert.Equal(t, "hello", Normalize([]Row{BareRow("hello")}))
	assert.Equal(t, "true", Normalize([]Row{BareRow(true)}))
	assert.Equal(t, "null", Normalize([]Row{BareRow(nil)}))
}

func TestNormalizeDropsContainerRows(t *testing.T) {
	rows := []Row{
		ScalarRow("a", json.Number("1")),
		ContainerRow("b", KindArray),
	}
	assert.Equal(t, "{\n  \"a\": 1\n}", Normalize(rows))
}

func TestNormalizeKeepsRowOrder(t *testing.T) {
	rows := []Row{
		ScalarRow("z", json.Number("1")),
		ScalarRow("a", "x"),
		ContainerRow("m", KindObject),
		ScalarRow("k", false),
	}
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": \"x\",\n  \"k\": false\n}", Normalize(rows))
}

func TestNormalizeSingleKeylessContainerRowIsEmptyObject(t *testing.T) {
	// An array whose only element is a container must not read as null.
	assert.Equal(t, "{}", Normalize([]Row{{Kind: KindObject}}))
	assert.Equal(t, "{}", Normalize([]Row{{Kind: KindArray}}))
}

func TestNormalizeOnlyContainersIsEmptyObject(t *testing.T) {
	rows := []Row{
		ContainerRow("a", KindArray),
		ContainerRow("b", KindObject),
	}
	assert.Equal(t, "{}", Normalize(rows))
}

func TestNormalizeEscapesKeys(t *testing.T) {
	rows := []Row{
		ScalarRow(`qu"ote`, json.Number("1")),
		ScalarRow("plain", json.Number("2")),
	}
	assert.Equal(t, "{\n  \"qu\\\"ote\": 1,\n  \"plain\": 2\n}", Normalize(rows))
}
