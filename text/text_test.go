package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "curly double quotes",
			input: "She said “hello”",
			want:  `She said "hello"`,
		},
		{
			name:  "curly single quotes",
			input: "it’s ‘fine’",
			want:  "it's 'fine'",
		},
		{
			name:  "dashes",
			input: "a—b and c–d",
			want:  "a-b and c-d",
		},
		{
			name:  "non-breaking space",
			input: "a b",
			want:  "a b",
		},
		{
			name:  "control and zero-width characters removed",
			input: "a\x00b​c",
			want:  "abc",
		},
		{
			name:  "whitespace collapsed",
			input: "a\n\n  b\tc  ",
			want:  "a b c",
		},
		{
			name:  "terminal punctuation untouched",
			input: "One. Two! Three?",
			want:  "One. Two! Three?",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello world. This is a test! Are you ready?",
		"plain ascii with   extra   spaces",
		"quotes “here” and a dash—there",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "three sentences",
			input: "Hello world. This is a test! Are you ready?",
			want:  []string{"Hello world.", "This is a test!", "Are you ready?"},
		},
		{
			name:  "no terminal punctuation",
			input: "just some words",
			want:  []string{"just some words"},
		},
		{
			name:  "trailing punctuation without whitespace",
			input: "One. Two.",
			want:  []string{"One.", "Two."},
		},
		{
			name:  "repeated punctuation",
			input: "Wait!! Ok.",
			want:  []string{"Wait!!", "Ok."},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}

func TestChunksGroupsSentences(t *testing.T) {
	chunks, err := Chunks("Hello world. This is a test! Are you ready?", 10, 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello world. This is a test!", "Are you ready?"}, chunks)
}

func TestChunksEmptyInput(t *testing.T) {
	chunks, err := Chunks("", 10, 30)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunksOversizedSentence(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 20)) + "."
	require.Greater(t, len(long), 30)

	chunks, err := Chunks("Short one. "+long, 5, 30)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Short one.", chunks[0])
	// the over-long sentence is its own chunk, never split
	assert.Equal(t, long, chunks[1])
}

func TestChunksFinalBelowMin(t *testing.T) {
	chunks, err := Chunks("Hi. Yo.", 100, 300)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hi. Yo."}, chunks)
}

func TestChunksPreserveEverySentence(t *testing.T) {
	input := Sanitize(`The quick brown fox jumps over the lazy dog. Pack my box
	with five dozen liquor jugs! How vexingly quick daft zebras jump?
	Sphinx of black quartz, judge my vow. The five boxing wizards jump
	quickly.`)

	chunks, err := Chunks(input, 40, 90)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	// reassembling the chunks reproduces the normalized input in order
	assert.Equal(t, input, strings.Join(chunks, " "))

	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 90, "chunk %d above max", i)
		if i < len(chunks)-1 {
			assert.GreaterOrEqual(t, len(chunk), 40, "chunk %d below min", i)
		}
	}
}

func TestChunksBadBounds(t *testing.T) {
	for _, bounds := range [][2]int{{0, 30}, {10, 0}, {-1, 30}, {40, 30}} {
		_, err := Chunks("Some text.", bounds[0], bounds[1])
		assert.ErrorIs(t, err, ErrBadBounds)
	}
}

func TestPrepare(t *testing.T) {
	out, err := Prepare("Hello world. This is a test! Are you ready?", 10, 30)
	require.NoError(t, err)
	assert.Equal(t, "Hello world. This is a test!\nAre you ready?", out)
}

func TestPrepareEmpty(t *testing.T) {
	for _, in := range []string{"", "   \n\t  ", "\x00\x01\x02"} {
		out, err := Prepare(in, 100, 300)
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}
