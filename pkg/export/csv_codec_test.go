package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVCodecRenderParseRoundTrip(t *testing.T) {
	codec := NewCSVCodec()
	dataset := Dataset{
		Headers: []string{"部门", "姓名", "联系电话"},
		Rows: []map[string]string{
			{"部门": "市场部", "姓名": "王芳", "联系电话": "13800000001"},
			{"部门": "财务部", "姓名": "", "联系电话": ""},
		},
	}

	payload, err := codec.Render(dataset)
	require.NoError(t, err)

	parsed, err := codec.Parse(payload)
	require.NoError(t, err)
	assert.Equal(t, dataset.Headers, parsed.Headers)
	require.Len(t, parsed.Rows, 2)
	assert.Equal(t, "王芳", parsed.Rows[0]["姓名"])
	assert.Equal(t, "", parsed.Rows[1]["姓名"])
}

func TestCSVCodecRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVCodec().Render(Dataset{})
	require.Error(t, err)
}

func TestCSVCodecParseShortRecords(t *testing.T) {
	payload := []byte("a,b,c\n1,2\n")
	parsed, err := NewCSVCodec().Parse(payload)
	require.NoError(t, err)
	require.Len(t, parsed.Rows, 1)
	assert.Equal(t, "2", parsed.Rows[0]["b"])
	assert.Equal(t, "", parsed.Rows[0]["c"])
}

func TestCSVCodecParseRejectsGarbage(t *testing.T) {
	_, err := NewCSVCodec().Parse([]byte(`"unterminated`))
	require.Error(t, err)
}

func TestCSVCodecParseEmpty(t *testing.T) {
	_, err := NewCSVCodec().Parse(nil)
	require.Error(t, err)
}
