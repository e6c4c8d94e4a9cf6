package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_CodeBlock(t *testing.T) {
	text := "before ```fn main() { println!(\"hi\"); }``` after"
	spans := Detect(text, true)
	found := false
	for _, s := range spans {
		if s.Kind == CodeBlock {
			found = true
			assert.Equal(t, "```fn main() { println!(\"hi\"); }```", text[s.ByteStart:s.ByteEnd])
		}
	}
	assert.True(t, found, "expected a CodeBlock span")
}

func TestDetect_JSONBlock(t *testing.T) {
	spans := Detect(`payload is {"key": "value"} here`, true)
	found := false
	for _, s := range spans {
		if s.Kind == JSONBlock {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDetect_Path(t *testing.T) {
	spans := Detect("see https://example.com/docs/page.html for more, or ./local/file.go", true)
	var kinds int
	for _, s := range spans {
		if s.Kind == Path {
			kinds++
		}
	}
	assert.GreaterOrEqual(t, kinds, 2)
}

func TestDetect_Identifiers(t *testing.T) {
	spans := Detect("the HttpClient reads MAX_RETRY_COUNT from user_config now", true)
	var camel, upper, snake bool
	for _, s := range spans {
		if s.Kind != Identifier {
			continue
		}
		switch text := "the HttpClient reads MAX_RETRY_COUNT from user_config now"[s.ByteStart:s.ByteEnd]; text {
		case "HttpClient":
			camel = true
		case "MAX_RETRY_COUNT":
			upper = true
		case "user_config":
			snake = true
		}
	}
	assert.True(t, camel)
	assert.True(t, upper)
	assert.True(t, snake)
}

func TestDetect_HashOrNumber(t *testing.T) {
	spans := Detect("commit a1b2c3d fixed bug 12345", true)
	var hex, dec bool
	for _, s := range spans {
		if s.Kind != HashOrNumber {
			continue
		}
		text := "commit a1b2c3d fixed bug 12345"[s.ByteStart:s.ByteEnd]
		if text == "a1b2c3d" {
			hex = true
		}
		if text == "12345" {
			dec = true
		}
	}
	assert.True(t, hex)
	assert.True(t, dec)
}

func TestDetect_Disabled(t *testing.T) {
	assert.Nil(t, Detect("anything ```code```", false))
}

func TestOverlaps(t *testing.T) {
	spans := []Span{{ByteStart: 10, ByteEnd: 20, Kind: Bracket}}
	assert.True(t, Overlaps(spans, 15, 25))
	assert.True(t, Overlaps(spans, 5, 11))
	assert.False(t, Overlaps(spans, 20, 30))
	assert.False(t, Overlaps(spans, 0, 10))
}
